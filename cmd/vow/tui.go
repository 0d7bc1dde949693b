package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/vow/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive pledge keeper",
	Long: `Launch the interactive terminal user interface.

The TUI provides:
  - Scrollable list of recorded pledges
  - A form for recording new pledges
  - Detail view with the full pledge text
  - Copy to clipboard support
  - Light and dark themes

Key bindings:
  j/k, ↑/↓    Navigate list
  n           Record a new pledge
  enter       View pledge details
  c           Copy pledge text to clipboard
  t           Toggle light/dark theme
  /           Filter pledges
  ?           Show help
  q           Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run(tui.RunOptions{
		Config: getConfig(),
		Book:   getBook(),
		Prefs:  getPrefs(),
	})
}
