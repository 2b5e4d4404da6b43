package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ThemeVariant selects the visual family of the design system.
type ThemeVariant string

const (
	// ThemeStandard is the flat variant with rounded borders.
	ThemeStandard ThemeVariant = "standard"
	// ThemeAdvanced brightens the accents and uses heavier glowing borders.
	ThemeAdvanced ThemeVariant = "advanced"
)

// ParseThemeVariant converts text to a ThemeVariant.
func ParseThemeVariant(s string) (ThemeVariant, error) {
	switch v := ThemeVariant(s); v {
	case ThemeStandard, ThemeAdvanced:
		return v, nil
	default:
		return "", fmt.Errorf("unknown theme %q", s)
	}
}

// ThemeMode selects light or dark colours.
type ThemeMode string

const (
	ModeDark  ThemeMode = "dark"
	ModeLight ThemeMode = "light"
)

// ParseThemeMode converts text to a ThemeMode.
func ParseThemeMode(s string) (ThemeMode, error) {
	switch m := ThemeMode(s); m {
	case ModeDark, ModeLight:
		return m, nil
	default:
		return "", fmt.Errorf("unknown theme mode %q", s)
	}
}

// ColourSet is a background colour with its readable foreground and a
// quieter tint.
type ColourSet struct {
	Base   lipgloss.Color
	OnBase lipgloss.Color
	Muted  lipgloss.Color
}

// Palette holds the semantic colour slots components draw from.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Raised    ColourSet
	Neutral   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
}

// Swatch is a named brand colour.
type Swatch struct {
	Name    string
	Value   lipgloss.Color
	OnValue lipgloss.Color
}

// BrandSwatches lists the TerraFusion brand colours.
func BrandSwatches() []Swatch {
	return []Swatch{
		{Name: "Dark Blue", Value: "#001529", OnValue: "#ffffff"},
		{Name: "Medium Blue", Value: "#002a4a", OnValue: "#ffffff"},
		{Name: "Light Blue", Value: "#004d7a", OnValue: "#ffffff"},
		{Name: "Primary", Value: "#00e5ff", OnValue: "#001529"},
		{Name: "Secondary", Value: "#00b8d4", OnValue: "#001529"},
	}
}

// PaletteSlot picks one ColourSet from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteRaised    PaletteSlot = func(p Palette) ColourSet { return p.Raised }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
)

// BorderVariant names a border shape.
type BorderVariant int

const (
	BorderVariantRounded BorderVariant = iota
	BorderVariantNormal
	BorderVariantThick
	BorderVariantDouble
	BorderVariantNone
)

// BorderSet maps border variants to lipgloss borders.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// SpacingSize is a spacing token resolved by the theme.
type SpacingSize int

const (
	SpacingNone SpacingSize = iota
	SpacingSmall
	SpacingMedium
	SpacingLarge
)

// TypographyVariant names a text style.
type TypographyVariant int

const (
	TypographyBody TypographyVariant = iota
	TypographyTitle
	TypographyHeading
	TypographySubtitle
	TypographyCaption
	TypographyCode
	TypographyEmphasis
	TypographyMuted
)

// TypographyScale holds one style per TypographyVariant.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Subtitle lipgloss.Style
	Caption  lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// VariantRegistry maps component variants to style strategies. Keys are the
// typed variant constants of each component, so variants of different
// components never collide.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register binds a strategy to variant.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get returns the strategy for variant, or nil.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable set of styling decisions. Build one with NewTheme
// and pass it through RenderContext.
type Theme struct {
	Name       string
	Variant    ThemeVariant
	Mode       ThemeMode
	Palette    Palette
	Borders    BorderSet
	CardBorder BorderVariant
	Typography TypographyScale
	Variants   *VariantRegistry
	spacing    [4]int
}

// DefaultTheme is the standard dark theme.
func DefaultTheme() Theme {
	return NewTheme(ThemeStandard, ModeDark)
}

// NewTheme builds the theme for a variant and mode. Unknown values fall back
// to standard and dark.
func NewTheme(variant ThemeVariant, mode ThemeMode) Theme {
	if variant != ThemeAdvanced {
		variant = ThemeStandard
	}
	if mode != ModeLight {
		mode = ModeDark
	}

	palette := basePalette(mode)
	cardBorder := BorderVariantRounded
	if variant == ThemeAdvanced {
		palette = advancedPalette(palette, mode)
		cardBorder = BorderVariantThick
	}

	theme := Theme{
		Name:    fmt.Sprintf("%s-%s", variant, mode),
		Variant: variant,
		Mode:    mode,
		Palette: palette,
		Borders: BorderSet{
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
		},
		CardBorder: cardBorder,
		Typography: typographyFor(palette, variant),
		spacing:    [4]int{0, 1, 2, 3},
	}

	theme.Variants = NewVariantRegistry()
	registerButtonVariants(theme.Variants)
	registerBadgeVariants(theme.Variants)
	registerAlertVariants(theme.Variants)
	return theme
}

func basePalette(mode ThemeMode) Palette {
	if mode == ModeLight {
		return Palette{
			Primary:   ColourSet{Base: "#0091a7", OnBase: "#ffffff", Muted: "#00b8d4"},
			Secondary: ColourSet{Base: "#004d7a", OnBase: "#ffffff", Muted: "#5A9BD5"},
			Surface:   ColourSet{Base: "#f5f5f5", OnBase: "#001529", Muted: "#004d7a"},
			Raised:    ColourSet{Base: "#ffffff", OnBase: "#001529", Muted: "#e0e0e0"},
			Neutral:   ColourSet{Base: "#e0e0e0", OnBase: "#002a4a", Muted: "#9e9e9e"},
			Success:   ColourSet{Base: "#2E7D32", OnBase: "#ffffff", Muted: "#3DBE82"},
			Warning:   ColourSet{Base: "#b45309", OnBase: "#ffffff", Muted: "#f59e0b"},
			Danger:    ColourSet{Base: "#b91c1c", OnBase: "#ffffff", Muted: "#ef4444"},
			Info:      ColourSet{Base: "#1565C0", OnBase: "#ffffff", Muted: "#5A9BD5"},
		}
	}
	return Palette{
		Primary:   ColourSet{Base: "#00e5ff", OnBase: "#001529", Muted: "#00b8d4"},
		Secondary: ColourSet{Base: "#00b8d4", OnBase: "#001529", Muted: "#0091a7"},
		Surface:   ColourSet{Base: "#001529", OnBase: "#ffffff", Muted: "#80deea"},
		Raised:    ColourSet{Base: "#002a4a", OnBase: "#ffffff", Muted: "#004d7a"},
		Neutral:   ColourSet{Base: "#004d7a", OnBase: "#e0e0e0", Muted: "#003a5a"},
		Success:   ColourSet{Base: "#3DBE82", OnBase: "#001529", Muted: "#2E7D32"},
		Warning:   ColourSet{Base: "#f59e0b", OnBase: "#001529", Muted: "#b45309"},
		Danger:    ColourSet{Base: "#ef4444", OnBase: "#ffffff", Muted: "#b91c1c"},
		Info:      ColourSet{Base: "#5A9BD5", OnBase: "#001529", Muted: "#1565C0"},
	}
}

func advancedPalette(p Palette, mode ThemeMode) Palette {
	if mode == ModeLight {
		p.Primary = ColourSet{Base: "#00b8d4", OnBase: "#001529", Muted: "#0091a7"}
		p.Secondary = ColourSet{Base: "#7c4dff", OnBase: "#ffffff", Muted: "#C080FF"}
		return p
	}
	p.Primary = ColourSet{Base: "#00f2ff", OnBase: "#001529", Muted: "#80fbff"}
	p.Secondary = ColourSet{Base: "#C080FF", OnBase: "#001529", Muted: "#7c4dff"}
	p.Raised.Muted = "#00e5ff"
	return p
}

func typographyFor(p Palette, variant ThemeVariant) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	title := body.Bold(true).Foreground(p.Primary.Base)
	if variant == ThemeAdvanced {
		title = title.Underline(true)
	}

	return TypographyScale{
		Body:     body,
		Title:    title,
		Heading:  body.Bold(true),
		Subtitle: body.Foreground(p.Surface.Muted),
		Caption:  body.Foreground(p.Surface.Muted).Faint(true),
		Code:     body.Foreground(p.Primary.Base).Background(p.Raised.Base).Padding(0, 1),
		Emphasis: body.Bold(true),
		Muted:    body.Faint(true),
	}
}

func registerButtonVariants(registry *VariantRegistry) {
	button := func(slot PaletteSlot) StyleStrategy {
		return NewCompositeStrategy(Background(slot), PaddingX(SpacingMedium))
	}
	registry.Register(ButtonVariantPrimary, button(PalettePrimary))
	registry.Register(ButtonVariantSecondary, button(PaletteSecondary))
	registry.Register(ButtonVariantDanger, button(PaletteDanger))
	registry.Register(ButtonVariantWarning, button(PaletteWarning))
	registry.Register(ButtonVariantOutline, NewCompositeStrategy(
		Foreground(PalettePrimary),
		Border(BorderVariantRounded),
		BorderColour(PalettePrimary),
		PaddingX(SpacingSmall),
	))
	registry.Register(ButtonVariantGhost, NewCompositeStrategy(
		Foreground(PalettePrimary),
		PaddingX(SpacingMedium),
	))
}

func registerBadgeVariants(registry *VariantRegistry) {
	badge := func(slot PaletteSlot) StyleStrategy {
		return NewCompositeStrategy(Background(slot), PaddingX(SpacingSmall))
	}
	registry.Register(BadgeVariantDefault, badge(PaletteNeutral))
	registry.Register(BadgeVariantPrimary, badge(PalettePrimary))
	registry.Register(BadgeVariantSecondary, badge(PaletteSecondary))
	registry.Register(BadgeVariantSuccess, badge(PaletteSuccess))
	registry.Register(BadgeVariantWarning, badge(PaletteWarning))
	registry.Register(BadgeVariantError, badge(PaletteDanger))
	registry.Register(BadgeVariantInfo, badge(PaletteInfo))
	registry.Register(BadgeVariantOutline, NewCompositeStrategy(
		Foreground(PalettePrimary),
		PaddingX(SpacingSmall),
	))
}

func registerAlertVariants(registry *VariantRegistry) {
	alert := func(slot PaletteSlot) StyleStrategy {
		return NewCompositeStrategy(
			Foreground(slot),
			Border(BorderVariantNormal),
			BorderColour(slot),
			PaddingX(SpacingSmall),
		)
	}
	registry.Register(AlertVariantSuccess, alert(PaletteSuccess))
	registry.Register(AlertVariantWarning, alert(PaletteWarning))
	registry.Register(AlertVariantError, alert(PaletteDanger))
	registry.Register(AlertVariantInfo, alert(PaletteInfo))
}

// BorderFor returns the lipgloss border of variant.
func (t Theme) BorderFor(variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return t.Borders.Normal
	case BorderVariantThick:
		return t.Borders.Thick
	case BorderVariantDouble:
		return t.Borders.Double
	case BorderVariantRounded:
		return t.Borders.Rounded
	default:
		return lipgloss.Border{}
	}
}

// Space resolves a spacing token to cells.
func (t Theme) Space(size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(t.spacing) {
		return 0
	}
	return t.spacing[index]
}

// TextStyle returns the typography style of variant.
func (t Theme) TextStyle(variant TypographyVariant) lipgloss.Style {
	typo := t.Typography
	switch variant {
	case TypographyTitle:
		return typo.Title
	case TypographyHeading:
		return typo.Heading
	case TypographySubtitle:
		return typo.Subtitle
	case TypographyCaption:
		return typo.Caption
	case TypographyCode:
		return typo.Code
	case TypographyEmphasis:
		return typo.Emphasis
	case TypographyMuted:
		return typo.Muted
	default:
		return typo.Body
	}
}

// Background paints the slot colour behind matching foreground text.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground colours text with the slot colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// BorderColour colours an existing border with the slot colour.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

// Border draws a border of variant.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(theme.BorderFor(variant))
	}
}

// CardBorder draws the border the theme uses for cards.
func CardBorder() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(theme.BorderFor(theme.CardBorder)).BorderForeground(theme.Palette.Raised.Muted)
	}
}

// Padding pads every side.
func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := theme.Space(size)
		return base.Padding(v/2, v)
	}
}

// PaddingX pads left and right.
func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := theme.Space(size)
		return base.PaddingLeft(v).PaddingRight(v)
	}
}

// MarginY adds blank lines above and below.
func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := theme.Space(size)
		return base.MarginTop(v).MarginBottom(v)
	}
}

// Typography inherits the text style of variant.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(theme.TextStyle(variant))
	}
}

// CardBaseStyle is the bundle shared by Card, StatCard and WidgetCard.
func CardBaseStyle() []StyleFunc {
	return []StyleFunc{
		CardBorder(),
		PaddingX(SpacingSmall),
	}
}
