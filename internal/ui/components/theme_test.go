package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewThemeFallsBackToStandardDark(t *testing.T) {
	t.Parallel()

	theme := NewTheme("neon", "sepia")
	assert.Equal(t, ThemeStandard, theme.Variant)
	assert.Equal(t, ModeDark, theme.Mode)
	assert.Equal(t, "standard-dark", theme.Name)
	assert.Equal(t, DefaultTheme().Palette, theme.Palette)
}

func TestThemeVariantsDiffer(t *testing.T) {
	t.Parallel()

	standard := NewTheme(ThemeStandard, ModeDark)
	advanced := NewTheme(ThemeAdvanced, ModeDark)
	light := NewTheme(ThemeStandard, ModeLight)

	assert.Equal(t, BorderVariantRounded, standard.CardBorder)
	assert.Equal(t, BorderVariantThick, advanced.CardBorder)
	assert.NotEqual(t, standard.Palette.Primary, advanced.Palette.Primary)
	assert.NotEqual(t, standard.Palette.Surface, light.Palette.Surface)
	assert.Equal(t, lipgloss.Color("#00e5ff"), standard.Palette.Primary.Base)
}

func TestParseTheme(t *testing.T) {
	t.Parallel()

	v, err := ParseThemeVariant("advanced")
	require.NoError(t, err)
	assert.Equal(t, ThemeAdvanced, v)
	_, err = ParseThemeVariant("Advanced")
	assert.Error(t, err)

	m, err := ParseThemeMode("light")
	require.NoError(t, err)
	assert.Equal(t, ModeLight, m)
	_, err = ParseThemeMode("")
	assert.Error(t, err)
}

func TestThemeSpaceAndBorders(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	assert.Equal(t, 0, theme.Space(SpacingNone))
	assert.Equal(t, 3, theme.Space(SpacingLarge))
	assert.Equal(t, 0, theme.Space(SpacingSize(42)))
	assert.Equal(t, theme.Borders.Double, theme.BorderFor(BorderVariantDouble))
	assert.Empty(t, theme.BorderFor(BorderVariantNone).Top)
}

func TestVariantRegistryKeysAreTyped(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	// ButtonVariantSecondary and BadgeVariantPrimary share the value 1.
	require.NotNil(t, theme.Variants.Get(ButtonVariantSecondary))
	require.NotNil(t, theme.Variants.Get(BadgeVariantPrimary))
	assert.Nil(t, theme.Variants.Get(1))

	var nilRegistry *VariantRegistry
	assert.Nil(t, nilRegistry.Get(ButtonVariantPrimary))
}

func TestAppearanceToggles(t *testing.T) {
	t.Parallel()

	a := DefaultAppearance()
	assert.Equal(t, "standard/dark", a.String())

	a.ToggleVariant()
	a.ToggleMode()
	assert.Equal(t, ThemeAdvanced, a.Variant)
	assert.Equal(t, ModeLight, a.Mode)
	assert.Equal(t, "advanced-light", a.Theme().Name)

	a.ToggleVariant()
	a.ToggleMode()
	assert.Equal(t, DefaultAppearance(), a)

	a.SetVariant(ThemeAdvanced)
	a.SetMode(ModeLight)
	assert.Equal(t, Appearance{Variant: ThemeAdvanced, Mode: ModeLight}, a)
}

func TestBrandSwatches(t *testing.T) {
	t.Parallel()

	swatches := BrandSwatches()
	require.Len(t, swatches, 5)
	assert.Equal(t, "Dark Blue", swatches[0].Name)
	assert.Equal(t, lipgloss.Color("#00e5ff"), swatches[3].Value)
	assert.Len(t, PaletteSwatches(DefaultTheme()), 6)
}
