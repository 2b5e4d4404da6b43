package components

// Appearance is the user's theme choice: a variant and a mode. It is a plain
// value owned by the TUI model and is not persisted.
type Appearance struct {
	Variant ThemeVariant
	Mode    ThemeMode
}

// DefaultAppearance is the standard dark appearance.
func DefaultAppearance() Appearance {
	return Appearance{Variant: ThemeStandard, Mode: ModeDark}
}

// ToggleVariant switches between the standard and advanced variants.
func (a *Appearance) ToggleVariant() {
	if a.Variant == ThemeAdvanced {
		a.Variant = ThemeStandard
		return
	}
	a.Variant = ThemeAdvanced
}

// ToggleMode switches between dark and light mode.
func (a *Appearance) ToggleMode() {
	if a.Mode == ModeLight {
		a.Mode = ModeDark
		return
	}
	a.Mode = ModeLight
}

// SetVariant selects a variant.
func (a *Appearance) SetVariant(v ThemeVariant) {
	a.Variant = v
}

// SetMode selects a mode.
func (a *Appearance) SetMode(m ThemeMode) {
	a.Mode = m
}

// Theme resolves the appearance.
func (a Appearance) Theme() Theme {
	return NewTheme(a.Variant, a.Mode)
}

func (a Appearance) String() string {
	return string(a.Variant) + "/" + string(a.Mode)
}
