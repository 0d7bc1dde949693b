// Package render provides output formatters for commitments.
package render

import (
	"io"
	"text/template"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/vow/internal/model"
)

// Formatter formats commitments for output.
type Formatter interface {
	// Format writes formatted commitments to the writer.
	Format(w io.Writer, commitments []model.Commitment) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(opts)
	case FormatYAML:
		return NewYAMLFormatter(opts)
	case FormatPlain:
		fallthrough
	default:
		return NewPlainFormatter(opts)
	}
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	Template   string // Custom template for plain format
	ShowIndex  bool   // Show 1-based index prefix
	TextMaxLen int    // Maximum pledge text length (0 = unlimited)
}

// DefaultFormatterOptions returns sensible defaults for list output.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{
		ShowIndex:  true,
		TextMaxLen: 0,
	}
}

// templateData provides data for custom templates.
type templateData struct {
	Index      int
	Commitment *model.Commitment
}

// templateFuncs returns template helper functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"truncate": func(s string, maxLen int) string {
			if maxLen <= 0 || len(s) <= maxLen {
				return s
			}
			if maxLen <= 3 {
				return s[:maxLen]
			}
			return s[:maxLen-3] + "..."
		},
		"reltime": func(ts string) string {
			t, err := time.Parse(time.RFC3339, ts)
			if err != nil {
				return "unknown"
			}
			return humanize.Time(t)
		},
		"date": func(ts string) string {
			c := model.Commitment{Timestamp: ts}
			return c.DisplayDate()
		},
	}
}
