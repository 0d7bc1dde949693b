// Package remind evaluates reminder frequencies and delivers desktop
// notifications for due pledges.
package remind

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jmylchreest/vow/internal/model"
)

// Reminder intervals per frequency option. Monthly is a fixed 30 days;
// calendar arithmetic is not attempted.
const (
	intervalDaily   = 24 * time.Hour
	intervalWeekly  = 7 * 24 * time.Hour
	intervalMonthly = 30 * 24 * time.Hour
)

// Interval returns the delivery interval for a reminder frequency.
// The second return is false for "None" and any unknown frequency,
// which never fire.
func Interval(remind string) (time.Duration, bool) {
	switch strings.ToLower(strings.TrimSpace(remind)) {
	case "daily":
		return intervalDaily, true
	case "weekly":
		return intervalWeekly, true
	case "monthly":
		return intervalMonthly, true
	default:
		return 0, false
	}
}

// Due reports whether a commitment needs a reminder at now.
// The interval is anchored on the last delivered reminder, or on the
// commitment's own timestamp when none was ever delivered. A
// commitment with an unparseable timestamp and no delivery history is
// never due.
func Due(c model.Commitment, lastSent time.Time, now time.Time) bool {
	interval, ok := Interval(c.Remind)
	if !ok {
		return false
	}

	anchor := lastSent
	if anchor.IsZero() {
		anchor = c.Time()
		if anchor.IsZero() {
			return false
		}
	}

	return now.Sub(anchor) >= interval
}

// Deliverer sends a single reminder notification.
type Deliverer interface {
	Notify(c model.Commitment) error
}

// Result summarizes a reminder evaluation pass.
type Result struct {
	Due       []model.Commitment
	Delivered int
}

// Run evaluates every commitment against the delivery ledger, sends a
// notification for each due one and records the delivery. With dryRun
// set it only reports what would fire.
//
// Delivery failures stop the pass; already-sent reminders stay
// recorded so a rerun does not duplicate them.
func Run(commitments []model.Commitment, ledger *Ledger, d Deliverer, now time.Time, dryRun bool) (Result, error) {
	var res Result

	lastSent, err := ledger.LastSent()
	if err != nil {
		return res, fmt.Errorf("failed to read reminder ledger: %w", err)
	}

	for _, c := range commitments {
		if !Due(c, lastSent[c.ContentHash()], now) {
			continue
		}
		res.Due = append(res.Due, c)
	}

	if dryRun {
		return res, nil
	}

	for _, c := range res.Due {
		if err := d.Notify(c); err != nil {
			return res, fmt.Errorf("failed to deliver reminder: %w", err)
		}
		if _, err := ledger.Record(c, now); err != nil {
			return res, fmt.Errorf("failed to record delivery: %w", err)
		}
		res.Delivered++
		slog.Debug("delivered reminder", "category", c.Category, "remind", c.Remind)
	}

	return res, nil
}
