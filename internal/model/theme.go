package model

// Theme represents the persisted visual theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeKey is the key under which the theme preference is persisted.
const ThemeKey = "theme"

// Toggle glyphs and titles. The glyph shows what the toggle does
// implicitly: the sun is offered while dark, the moon while light.
const (
	iconSun  = "☀"
	iconMoon = "☾"

	titleToLight = "Switch to light mode"
	titleToDark  = "Switch to dark mode"
)

// ParseTheme interprets a stored preference value.
// Only "dark" selects the dark theme; anything else, including an
// absent or corrupted value, falls back to light.
func ParseTheme(s string) Theme {
	if s == string(ThemeDark) {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark reports whether the dark theme is active.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// Icon returns the toggle glyph for the current theme.
func (t Theme) Icon() string {
	if t.IsDark() {
		return iconSun
	}
	return iconMoon
}

// ToggleTitle returns the toggle's descriptive title for the current
// theme, naming the mode a toggle would switch to.
func (t Theme) ToggleTitle() string {
	if t.IsDark() {
		return titleToLight
	}
	return titleToDark
}

// String returns the persisted string form.
func (t Theme) String() string {
	return string(t)
}
