package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/vow/internal/config"
	"github.com/jmylchreest/vow/internal/model"
	"github.com/jmylchreest/vow/internal/remind"
	"github.com/jmylchreest/vow/internal/storage"
)

var statusOpts struct {
	waybar bool
}

// WaybarStatus represents the Waybar custom module JSON format.
type WaybarStatus struct {
	Text    string `json:"text"`
	Alt     string `json:"alt,omitempty"`
	Tooltip string `json:"tooltip,omitempty"`
	Class   string `json:"class,omitempty"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show storage and pledge status",
	Long: `Show the storage backend in use, the active theme, the number of
recorded pledges and when the last one was recorded.

With --waybar, outputs the count of due reminders in Waybar's custom
module JSON format:

  "custom/vow": {
    "exec": "vow status --waybar",
    "interval": 300,
    "return-type": "json",
    "on-click": "vow tui"
  }`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().BoolVar(&statusOpts.waybar, "waybar", false,
		"Output Waybar custom module JSON")
}

func runStatus(cmd *cobra.Command, args []string) error {
	if statusOpts.waybar {
		return runWaybarStatus()
	}

	fmt.Printf("Storage: %s (%s)\n", resolvedStoragePath(), backendName())
	fmt.Printf("Theme: %s\n", getPrefs().Theme())
	fmt.Printf("Pledges: %d\n", getBook().Len())
	if last, ok := getBook().Last(); ok {
		fmt.Printf("Last pledge: %s (%s)\n", last.TextTruncated(40), last.RelativeTime())
	}

	due, err := dueCommitments()
	if err != nil {
		logger.Warn("failed to evaluate reminders", "error", err)
		return nil
	}
	fmt.Printf("Reminders due: %d\n", len(due))

	return nil
}

// runWaybarStatus reports the due reminder count for a status bar.
func runWaybarStatus() error {
	due, err := dueCommitments()
	if err != nil {
		return outputStatus(WaybarStatus{Text: "", Alt: "error", Class: "error"})
	}

	if len(due) == 0 {
		return outputStatus(WaybarStatus{Text: "", Alt: "empty", Class: "empty"})
	}

	tooltip := ""
	for i, c := range due {
		if i > 0 {
			tooltip += "\n"
		}
		tooltip += fmt.Sprintf("%s: %s", c.Category, c.TextTruncated(40))
	}

	return outputStatus(WaybarStatus{
		Text:    fmt.Sprintf("%d", len(due)),
		Alt:     "due",
		Tooltip: tooltip,
		Class:   "due",
	})
}

// dueCommitments evaluates the book against the ledger without
// delivering anything.
func dueCommitments() ([]model.Commitment, error) {
	ledger := remind.NewLedger(config.LedgerPath())
	res, err := remind.Run(getBook().All(), ledger, nil, time.Now(), true)
	if err != nil {
		return nil, err
	}
	return res.Due, nil
}

// resolvedStoragePath returns the storage path in effect.
func resolvedStoragePath() string {
	if globalOpts.storagePath != "" {
		return globalOpts.storagePath
	}
	return cfg.StoragePath()
}

// backendName names the storage backend in use.
func backendName() string {
	switch store.(type) {
	case *storage.SQLite:
		return "sqlite"
	case *storage.Dir:
		return "dir"
	case *storage.Memory:
		return "memory"
	default:
		return "unknown"
	}
}

// outputStatus writes the status as JSON.
func outputStatus(status WaybarStatus) error {
	encoder := json.NewEncoder(os.Stdout)
	return encoder.Encode(status)
}
