package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/vow/internal/model"
)

// Styles holds the lipgloss styles for the current theme. Every style
// is derived from the theme alone, so rebuilding after a toggle fully
// restyles the UI.
type Styles struct {
	AppTitle  lipgloss.Style
	ThemeIcon lipgloss.Style
	Hint      lipgloss.Style

	Status    lipgloss.Style
	StatusErr lipgloss.Style

	Label        lipgloss.Style
	FieldFocused lipgloss.Style
	FieldBlurred lipgloss.Style

	Dim lipgloss.Style
	Key lipgloss.Style

	ListTitle     lipgloss.Style
	NormalTitle   lipgloss.Style
	NormalDesc    lipgloss.Style
	SelectedTitle lipgloss.Style
	SelectedDesc  lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(t model.Theme) Styles {
	if t.IsDark() {
		return Styles{
			AppTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			ThemeIcon: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

			Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			StatusErr: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),

			Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			FieldFocused: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			FieldBlurred: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),

			Dim: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Key: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),

			ListTitle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
			NormalTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
			NormalDesc:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			SelectedTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			SelectedDesc:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		}
	}

	return Styles{
		AppTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		ThemeIcon: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		StatusErr: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),

		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		FieldFocused: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		FieldBlurred: lipgloss.NewStyle().Foreground(lipgloss.Color("0")),

		Dim: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Key: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),

		ListTitle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")),
		NormalTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")),
		NormalDesc:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		SelectedTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		SelectedDesc:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	}
}
