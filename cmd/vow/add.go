package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/vow/internal/model"
)

var addOpts struct {
	category string
	remind   string
	quiet    bool
}

var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Record a new pledge",
	Long: `Record a new pledge without opening the TUI.

The pledge text is taken from the arguments; surrounding whitespace is
trimmed. An empty pledge is silently dropped.

Examples:
  # Record a pledge with default category and reminder
  vow add Walk thirty minutes every day

  # Record with an explicit category and reminder frequency
  vow add --category Learning --remind Weekly "Read one chapter"`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addOpts.category, "category", "c", "",
		"Pledge category (default: first configured category)")
	addCmd.Flags().StringVarP(&addOpts.remind, "remind", "r", "",
		"Reminder frequency (default: first configured frequency)")
	addCmd.Flags().BoolVarP(&addOpts.quiet, "quiet", "q", false,
		"Suppress confirmation output")
}

func runAdd(cmd *cobra.Command, args []string) error {
	category := addOpts.category
	if category == "" && len(cfg.Form.Categories) > 0 {
		category = cfg.Form.Categories[0]
	}

	remind := addOpts.remind
	if remind == "" && len(cfg.Form.Reminders) > 0 {
		remind = cfg.Form.Reminders[0]
	}

	c, err := model.NewCommitment(category, strings.Join(args, " "), remind)
	if errors.Is(err, model.ErrEmptyText) {
		// Empty pledges are dropped without output or error
		logger.Debug("dropping empty pledge")
		return nil
	}
	if err != nil {
		return err
	}

	if err := getBook().Add(c); err != nil {
		return fmt.Errorf("failed to save pledge: %w", err)
	}

	if !addOpts.quiet {
		fmt.Println("Pledge recorded!")
	}
	return nil
}
