package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/vow/internal/model"
)

func testCommitments() []model.Commitment {
	return []model.Commitment{
		{
			Category:  "Health",
			Text:      "Walk daily",
			Remind:    "Weekly",
			Timestamp: "2024-01-05T12:00:00Z",
		},
		{
			Category:  "Learning",
			Text:      "Read a chapter before bed",
			Remind:    "Daily",
			Timestamp: "2024-02-10T12:00:00Z",
		},
	}
}

func TestPlainFormatter_Format(t *testing.T) {
	commitments := testCommitments()
	var buf bytes.Buffer

	formatter := NewPlainFormatter(DefaultFormatterOptions())
	err := formatter.Format(&buf, commitments)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "[1] Health")
	assert.Contains(t, output, "Walk daily")
	assert.Contains(t, output, "Reminder: Weekly")
	assert.Contains(t, output, "[2] Learning")
	assert.Contains(t, output, "Read a chapter before bed")
	assert.Contains(t, output, "Reminder: Daily")

	// Dates carry the abbreviated month name
	assert.Regexp(t, `\([A-Z][a-z]{2} \d{1,2}, \d{4}\)`, output)
}

func TestPlainFormatter_NoIndex(t *testing.T) {
	commitments := testCommitments()
	var buf bytes.Buffer

	opts := DefaultFormatterOptions()
	opts.ShowIndex = false
	formatter := NewPlainFormatter(opts)
	err := formatter.Format(&buf, commitments)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.False(t, strings.HasPrefix(lines[0], "[1]"))
	assert.True(t, strings.HasPrefix(lines[0], "Health"))
}

func TestPlainFormatter_CustomTemplate(t *testing.T) {
	commitments := testCommitments()
	var buf bytes.Buffer

	opts := DefaultFormatterOptions()
	opts.Template = "{{.Index}}: {{.Commitment.Category}} - {{.Commitment.Text}}"
	formatter := NewPlainFormatter(opts)
	err := formatter.Format(&buf, commitments)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "1: Health - Walk daily", lines[0])
	assert.Equal(t, "2: Learning - Read a chapter before bed", lines[1])
}

func TestPlainFormatter_TemplateFuncs(t *testing.T) {
	commitments := testCommitments()[:1]
	var buf bytes.Buffer

	opts := DefaultFormatterOptions()
	opts.Template = `{{date .Commitment.Timestamp}} {{truncate .Commitment.Text 7}}`
	formatter := NewPlainFormatter(opts)
	err := formatter.Format(&buf, commitments)
	require.NoError(t, err)

	output := strings.TrimSpace(buf.String())
	assert.Contains(t, output, "Walk...")
	assert.Regexp(t, `^[A-Z][a-z]{2} \d{1,2}, \d{4}`, output)
}

func TestPlainFormatter_TruncateText(t *testing.T) {
	commitments := []model.Commitment{
		{
			Category:  "Learning",
			Text:      "This is a very long pledge that should be truncated when the max length is set",
			Remind:    "Daily",
			Timestamp: "2024-01-05T12:00:00Z",
		},
	}
	var buf bytes.Buffer

	opts := DefaultFormatterOptions()
	opts.TextMaxLen = 20
	formatter := NewPlainFormatter(opts)
	err := formatter.Format(&buf, commitments)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "...")
	assert.NotContains(t, output, "truncated when the max length is set")
}

func TestJSONFormatter_Format(t *testing.T) {
	commitments := testCommitments()
	var buf bytes.Buffer

	formatter := NewJSONFormatter(DefaultFormatterOptions())
	err := formatter.Format(&buf, commitments)
	require.NoError(t, err)

	// Should be valid JSON preserving order
	var result []model.Commitment
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Health", result[0].Category)
	assert.Equal(t, "Learning", result[1].Category)
}

func TestJSONFormatter_FormatSingle(t *testing.T) {
	c := &model.Commitment{
		Category:  "Health",
		Text:      "Walk daily",
		Remind:    "Weekly",
		Timestamp: "2024-01-05T12:00:00Z",
	}
	var buf bytes.Buffer

	formatter := NewJSONFormatter(DefaultFormatterOptions())
	err := formatter.FormatSingle(&buf, c)
	require.NoError(t, err)

	var result model.Commitment
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)
	assert.Equal(t, "Walk daily", result.Text)
}

func TestYAMLFormatter_Format(t *testing.T) {
	commitments := testCommitments()
	var buf bytes.Buffer

	formatter := NewYAMLFormatter(DefaultFormatterOptions())
	err := formatter.Format(&buf, commitments)
	require.NoError(t, err)

	var result []model.Commitment
	err = yaml.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Walk daily", result[0].Text)
}

func TestFormatField(t *testing.T) {
	c := &model.Commitment{
		Category:  "Health",
		Text:      "Walk daily",
		Remind:    "Weekly",
		Timestamp: "2024-01-05T12:00:00Z",
	}

	tests := []struct {
		field    string
		expected string
	}{
		{"category", "Health"},
		{"text", "Walk daily"},
		{"pledge", "Walk daily"},
		{"remind", "Weekly"},
		{"reminder", "Weekly"},
		{"timestamp", "2024-01-05T12:00:00Z"},
		{"all", "Health\nWalk daily\nReminder: Weekly"},
		{"unknown", "Walk daily"}, // defaults to text
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatField(c, tt.field))
		})
	}
}

func TestNewFormatter(t *testing.T) {
	opts := DefaultFormatterOptions()

	t.Run("plain", func(t *testing.T) {
		f := NewFormatter(FormatPlain, opts)
		_, ok := f.(*PlainFormatter)
		assert.True(t, ok)
	})

	t.Run("json", func(t *testing.T) {
		f := NewFormatter(FormatJSON, opts)
		_, ok := f.(*JSONFormatter)
		assert.True(t, ok)
	})

	t.Run("yaml", func(t *testing.T) {
		f := NewFormatter(FormatYAML, opts)
		_, ok := f.(*YAMLFormatter)
		assert.True(t, ok)
	})

	t.Run("default", func(t *testing.T) {
		f := NewFormatter("unknown", opts)
		_, ok := f.(*PlainFormatter)
		assert.True(t, ok) // defaults to plain
	})
}
