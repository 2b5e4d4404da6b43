package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const defaultProgressWidth = 30

// Progress is a labelled progress bar.
type Progress struct {
	BaseComponent
	label     string
	value     float64
	max       float64
	slot      PaletteSlot
	width     int
	showValue bool
}

// NewProgress creates a bar for value out of maxValue.
func NewProgress(label string, value, maxValue float64) *Progress {
	return &Progress{
		BaseComponent: NewBaseComponent(),
		label:         label,
		value:         value,
		max:           maxValue,
		slot:          PalettePrimary,
		width:         defaultProgressWidth,
		showValue:     true,
	}
}

// WithSlot picks the fill colour.
func (p *Progress) WithSlot(slot PaletteSlot) *Progress {
	if slot != nil {
		p.slot = slot
	}
	return p
}

// WithWidth sets the bar width.
func (p *Progress) WithWidth(width int) *Progress {
	p.width = width
	return p
}

// WithValueHidden hides the percentage label.
func (p *Progress) WithValueHidden() *Progress {
	p.showValue = false
	return p
}

// Percent returns the filled share in [0, 100]. A non-positive maximum
// yields 0.
func (p *Progress) Percent() float64 {
	return ClampPercent(p.value, p.max)
}

// ClampPercent returns value/max as a percentage clamped to [0, 100].
func ClampPercent(value, maxValue float64) float64 {
	if maxValue <= 0 || math.IsNaN(value) || math.IsNaN(maxValue) {
		return 0
	}
	return math.Min(math.Max(value/maxValue*100, 0), 100)
}

// View renders the bar with the default theme.
func (p *Progress) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the bar.
func (p *Progress) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	width := p.width
	if ctx.Constraints.HasWidth() && ctx.Constraints.MaxWidth < width {
		width = ctx.Constraints.MaxWidth
	}

	bar := progress.New(
		progress.WithSolidFill(string(p.slot(theme.Palette).Base)),
		progress.WithWidth(max(width, 1)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(theme.Palette.Neutral.Base)

	pct := p.Percent()
	header := theme.TextStyle(TypographyBody).Render(p.label)
	if p.showValue {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, " ",
			theme.TextStyle(TypographyCaption).Render(fmt.Sprintf("%.0f%%", pct)))
	}
	style := p.ComputeStyle(theme)
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, header, bar.ViewAs(pct/100)))
}
