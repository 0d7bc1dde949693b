package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommitment(t *testing.T) {
	c, err := NewCommitment("Health", "Walk daily", "Weekly")
	require.NoError(t, err)

	assert.Equal(t, "Health", c.Category)
	assert.Equal(t, "Walk daily", c.Text)
	assert.Equal(t, "Weekly", c.Remind)

	// Timestamp must be valid RFC 3339 close to now
	ts, err := time.Parse(time.RFC3339, c.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, 5*time.Second)
}

func TestNewCommitment_TrimsText(t *testing.T) {
	c, err := NewCommitment("Health", "  Walk daily \n", "Weekly")
	require.NoError(t, err)
	assert.Equal(t, "Walk daily", c.Text)
}

func TestNewCommitment_EmptyText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tabs and newlines", "\t\n  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCommitment("Health", tt.text, "Weekly")
			assert.ErrorIs(t, err, ErrEmptyText)
		})
	}
}

func TestCommitment_Validate(t *testing.T) {
	c := Commitment{Category: "Health", Text: "Walk daily", Remind: "Weekly"}
	assert.NoError(t, c.Validate())

	c.Text = "  "
	assert.ErrorIs(t, c.Validate(), ErrEmptyText)
}

func TestCommitment_DisplayDate(t *testing.T) {
	// Noon UTC avoids crossing a date boundary in local time for
	// every timezone the test might run in.
	c := Commitment{Timestamp: "2024-01-05T12:00:00Z"}
	got := c.DisplayDate()
	assert.Equal(t, time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC).Local().Format("Jan 2, 2006"), got)
	assert.Regexp(t, `^[A-Z][a-z]{2} \d{1,2}, \d{4}$`, got)
}

func TestCommitment_DisplayDate_Unparseable(t *testing.T) {
	tests := []struct {
		name string
		ts   string
	}{
		{"empty", ""},
		{"garbage", "not-a-date"},
		{"date only", "2024-01-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Commitment{Timestamp: tt.ts}
			assert.Equal(t, "", c.DisplayDate())
			assert.True(t, c.Time().IsZero())
		})
	}
}

func TestCommitment_RelativeTime(t *testing.T) {
	c := Commitment{Timestamp: time.Now().Add(-2 * time.Hour).UTC().Format(time.RFC3339)}
	assert.Equal(t, "2 hours ago", c.RelativeTime())

	c.Timestamp = "not-a-date"
	assert.Equal(t, "unknown", c.RelativeTime())
}

func TestCommitment_Time_FractionalSeconds(t *testing.T) {
	// Timestamps written by other tools may carry milliseconds
	c := Commitment{Timestamp: "2024-01-05T10:30:00.000Z"}
	assert.False(t, c.Time().IsZero())
}

func TestCommitment_ContentHash(t *testing.T) {
	a := Commitment{Category: "Health", Text: "Walk daily", Remind: "Weekly", Timestamp: "2024-01-05T10:30:00Z"}
	b := a

	assert.Equal(t, a.ContentHash(), b.ContentHash())
	assert.Len(t, a.ContentHash(), 64)

	b.Text = "Run daily"
	assert.NotEqual(t, a.ContentHash(), b.ContentHash())
}

func TestCommitment_TextTruncated(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxLen   int
		expected string
	}{
		{"short text", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"truncated", "hello world foo", 8, "hello..."},
		{"newlines collapsed", "hello\nworld", 20, "hello world"},
		{"zero max", "hello", 0, ""},
		{"tiny max", "hello", 2, "he"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Commitment{Text: tt.text}
			assert.Equal(t, tt.expected, c.TextTruncated(tt.maxLen))
		})
	}
}
