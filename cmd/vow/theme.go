package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/vow/internal/model"
)

// themeCmd represents the theme command group.
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage the color theme",
	Long: `Manage the persisted color theme.

The theme drives the TUI's colors; light is the default when nothing
was ever persisted.

Use 'vow theme' to show the current theme.
Use 'vow theme toggle' to switch between light and dark.
Use 'vow theme light' or 'vow theme dark' to set one explicitly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to showing status
		return themeStatusRun(cmd, args)
	},
}

// themeToggleCmd flips the theme.
var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle between light and dark",
	Long:  `Toggle the theme between light and dark and persist the result.`,
	RunE:  themeToggleRun,
}

// themeLightCmd selects the light theme.
var themeLightCmd = &cobra.Command{
	Use:   "light",
	Short: "Switch to the light theme",
	RunE:  themeLightRun,
}

// themeDarkCmd selects the dark theme.
var themeDarkCmd = &cobra.Command{
	Use:   "dark",
	Short: "Switch to the dark theme",
	RunE:  themeDarkRun,
}

// themeStatusCmd shows the current theme.
var themeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current theme",
	RunE:  themeStatusRun,
}

func init() {
	// Add subcommands
	themeCmd.AddCommand(themeToggleCmd)
	themeCmd.AddCommand(themeLightCmd)
	themeCmd.AddCommand(themeDarkCmd)
	themeCmd.AddCommand(themeStatusCmd)

	// Add to root
	rootCmd.AddCommand(themeCmd)
}

func themeToggleRun(cmd *cobra.Command, args []string) error {
	theme, err := getPrefs().ToggleTheme()
	if err != nil {
		return fmt.Errorf("failed to persist theme: %w", err)
	}
	printTheme(theme)
	return nil
}

func themeLightRun(cmd *cobra.Command, args []string) error {
	return applyTheme(model.ThemeLight)
}

func themeDarkRun(cmd *cobra.Command, args []string) error {
	return applyTheme(model.ThemeDark)
}

func themeStatusRun(cmd *cobra.Command, args []string) error {
	printTheme(getPrefs().Theme())
	return nil
}

func applyTheme(t model.Theme) error {
	if err := getPrefs().SetTheme(t); err != nil {
		return fmt.Errorf("failed to persist theme: %w", err)
	}
	printTheme(t)
	return nil
}

func printTheme(t model.Theme) {
	fmt.Printf("Theme: %s\n", t)
}
