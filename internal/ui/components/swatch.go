package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SwatchRow draws colour chips with their names and hex values.
type SwatchRow struct {
	swatches []Swatch
	width    int
}

// NewSwatchRow creates a row of chips.
func NewSwatchRow(swatches ...Swatch) *SwatchRow {
	return &SwatchRow{swatches: swatches, width: 14}
}

// PaletteSwatches lists the semantic slots of theme as swatches.
func PaletteSwatches(theme Theme) []Swatch {
	p := theme.Palette
	named := []struct {
		name string
		set  ColourSet
	}{
		{"Primary", p.Primary},
		{"Secondary", p.Secondary},
		{"Success", p.Success},
		{"Warning", p.Warning},
		{"Danger", p.Danger},
		{"Info", p.Info},
	}
	out := make([]Swatch, len(named))
	for i, n := range named {
		out[i] = Swatch{Name: n.name, Value: n.set.Base, OnValue: n.set.OnBase}
	}
	return out
}

// WithChipWidth sets the width of each chip.
func (s *SwatchRow) WithChipWidth(width int) *SwatchRow {
	s.width = width
	return s
}

// View renders the row with the default theme.
func (s *SwatchRow) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the row, wrapping chips onto new lines when they
// do not fit the width limit.
func (s *SwatchRow) ViewWithContext(ctx RenderContext) string {
	if len(s.swatches) == 0 {
		return ""
	}
	chipWidth := max(s.width, 8)
	perLine := len(s.swatches)
	if ctx.Constraints.HasWidth() {
		perLine = max(ctx.Constraints.MaxWidth/(chipWidth+1), 1)
	}

	caption := ctx.Theme.TextStyle(TypographyCaption)
	var lines []string
	for start := 0; start < len(s.swatches); start += perLine {
		end := min(start+perLine, len(s.swatches))
		chips := make([]string, 0, (end-start)*2)
		for i, sw := range s.swatches[start:end] {
			if i > 0 {
				chips = append(chips, " ")
			}
			block := lipgloss.NewStyle().
				Background(sw.Value).
				Foreground(sw.OnValue).
				Width(chipWidth).
				Align(lipgloss.Center).
				Render(sw.Name)
			label := caption.Width(chipWidth).Align(lipgloss.Center).Render(strings.ToUpper(string(sw.Value)))
			chips = append(chips, lipgloss.JoinVertical(lipgloss.Left, block, label))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, chips...))
	}
	return strings.Join(lines, "\n")
}
