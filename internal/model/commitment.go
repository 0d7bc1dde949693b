// Package model defines the core data structures for vow.
package model

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// StorageKey is the key under which the commitment list is persisted.
const StorageKey = "commitments"

// DisplayDateLayout renders timestamps with an abbreviated month name.
const DisplayDateLayout = "Jan 2, 2006"

// Commitment represents a single recorded pledge.
// This is the normalized format persisted as a JSON array and used by
// the TUI, the CLI and the reminder scheduler.
type Commitment struct {
	Category  string `json:"category"`
	Text      string `json:"text"`
	Remind    string `json:"remind"`
	Timestamp string `json:"timestamp"` // ISO-8601 (RFC 3339), captured at submission
}

// Validation errors.
var (
	ErrEmptyText = errors.New("commitment text cannot be empty")
)

// NewCommitment creates a Commitment from raw form values.
// The text is trimmed of surrounding whitespace; if nothing remains the
// commitment is rejected with ErrEmptyText. The timestamp is captured
// from the wall clock at call time.
func NewCommitment(category, text, remind string) (Commitment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Commitment{}, ErrEmptyText
	}

	return Commitment{
		Category:  category,
		Text:      text,
		Remind:    remind,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Validate checks that the commitment has all required fields.
func (c *Commitment) Validate() error {
	if strings.TrimSpace(c.Text) == "" {
		return ErrEmptyText
	}
	return nil
}

// Time returns the parsed timestamp.
// Returns the zero time if the stored value cannot be parsed.
func (c *Commitment) Time() time.Time {
	t, err := time.Parse(time.RFC3339, c.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DisplayDate returns the timestamp as a human-readable date in local
// time, e.g. "Jan 5, 2024". Returns an empty string when the stored
// timestamp cannot be parsed.
func (c *Commitment) DisplayDate() string {
	t := c.Time()
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(DisplayDateLayout)
}

// RelativeTime returns a human-readable relative time string,
// e.g. "2 days ago". Returns "unknown" when the stored timestamp
// cannot be parsed.
func (c *Commitment) RelativeTime() string {
	t := c.Time()
	if t.IsZero() {
		return "unknown"
	}
	return humanize.Time(t)
}

// DedupeKey returns a string key identifying the commitment content.
// Commitments with the same category, text, remind and timestamp are
// considered the same pledge.
func (c *Commitment) DedupeKey() string {
	return fmt.Sprintf("%s:%s:%s:%s", c.Category, c.Text, c.Remind, c.Timestamp)
}

// ContentHash generates a SHA256 hash of the commitment content.
// The reminder ledger uses this to track deliveries for a pledge
// without assigning it a separate identifier.
func (c *Commitment) ContentHash() string {
	hash := sha256.Sum256([]byte(c.DedupeKey()))
	return hex.EncodeToString(hash[:])
}

// TextTruncated returns the pledge text truncated to maxLen characters.
// If the text is longer, it is truncated and "..." is appended.
func (c *Commitment) TextTruncated(maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	// Collapse whitespace and newlines to single spaces
	text := strings.Join(strings.Fields(c.Text), " ")

	if len(text) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return text[:maxLen]
	}
	return text[:maxLen-3] + "..."
}
