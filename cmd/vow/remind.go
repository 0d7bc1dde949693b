package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/vow/internal/config"
	"github.com/jmylchreest/vow/internal/remind"
)

var remindOpts struct {
	dryRun bool
	quiet  bool
}

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Deliver due pledge reminders",
	Long: `Evaluate every pledge's reminder frequency and deliver desktop
notifications for the due ones.

A pledge is due when a full interval (Daily = 24 hours, Weekly = 7
days, Monthly = 30 days) has elapsed since its last delivered
reminder, or since the pledge itself when none was ever delivered.
Pledges with reminder "None" never fire.

Deliveries go through the org.freedesktop.Notifications session bus
service and are recorded in an append-only ledger, so rerunning the
command does not duplicate reminders. Designed to sit behind a user
timer or cron entry:

  # crontab: evaluate hourly
  0 * * * * vow remind --quiet

Examples:
  # Deliver everything currently due
  vow remind

  # Show what would fire without notifying
  vow remind --dry-run`,
	RunE: runRemind,
}

func init() {
	rootCmd.AddCommand(remindCmd)

	remindCmd.Flags().BoolVar(&remindOpts.dryRun, "dry-run", false,
		"Print due pledges without notifying or writing the ledger")
	remindCmd.Flags().BoolVarP(&remindOpts.quiet, "quiet", "q", false,
		"Suppress output")
}

func runRemind(cmd *cobra.Command, args []string) error {
	ledger := remind.NewLedger(config.LedgerPath())

	var deliverer remind.Deliverer
	if !remindOpts.dryRun {
		notifier, err := remind.NewNotifier()
		if err != nil {
			return fmt.Errorf("failed to connect to notification service: %w", err)
		}
		defer notifier.Close()
		deliverer = notifier
	}

	res, err := remind.Run(getBook().All(), ledger, deliverer, time.Now(), remindOpts.dryRun)
	if err != nil {
		return err
	}

	if remindOpts.quiet {
		return nil
	}

	if len(res.Due) == 0 {
		fmt.Println("No reminders due")
		return nil
	}

	for _, c := range res.Due {
		fmt.Printf("%s: %s (%s)\n", c.Category, c.TextTruncated(60), c.Remind)
	}
	if remindOpts.dryRun {
		fmt.Printf("%d reminder(s) due (dry run, none delivered)\n", len(res.Due))
	} else {
		fmt.Printf("%d reminder(s) delivered\n", res.Delivered)
	}

	return nil
}
