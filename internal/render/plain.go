package render

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/jmylchreest/vow/internal/model"
)

// PlainFormatter formats commitments as plain text blocks, one per
// pledge, with the category and date on the first line.
type PlainFormatter struct {
	opts     FormatterOptions
	template *template.Template
}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	f := &PlainFormatter{opts: opts}

	// Parse custom template if provided
	if opts.Template != "" {
		tmpl, err := template.New("plain").Funcs(templateFuncs()).Parse(opts.Template)
		if err == nil {
			f.template = tmpl
		}
	}

	return f
}

// Format writes commitments as plain text.
func (f *PlainFormatter) Format(w io.Writer, commitments []model.Commitment) error {
	for i, c := range commitments {
		if err := f.formatCommitment(w, i+1, &c); err != nil {
			return err
		}
	}
	return nil
}

// formatCommitment formats a single commitment block.
func (f *PlainFormatter) formatCommitment(w io.Writer, index int, c *model.Commitment) error {
	// Use custom template if available
	if f.template != nil {
		data := templateData{
			Index:      index,
			Commitment: c,
		}
		if err := f.template.Execute(w, data); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}

	// Default format
	var sb strings.Builder

	if f.opts.ShowIndex {
		sb.WriteString(fmt.Sprintf("[%d] ", index))
	}

	sb.WriteString(c.Category)
	if date := c.DisplayDate(); date != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", date))
	}
	sb.WriteString("\n")

	text := c.Text
	if f.opts.TextMaxLen > 0 {
		text = c.TextTruncated(f.opts.TextMaxLen)
	}
	sb.WriteString("    " + text + "\n")
	sb.WriteString("    Reminder: " + c.Remind + "\n")

	_, err := w.Write([]byte(sb.String()))
	return err
}

// FormatField outputs a specific field from a commitment.
func FormatField(c *model.Commitment, field string) string {
	switch strings.ToLower(field) {
	case "category":
		return c.Category
	case "text", "pledge":
		return c.Text
	case "remind", "reminder":
		return c.Remind
	case "timestamp", "time":
		return c.Timestamp
	case "date":
		return c.DisplayDate()
	case "hash":
		return c.ContentHash()
	case "all", "full":
		return fmt.Sprintf("%s\n%s\nReminder: %s", c.Category, c.Text, c.Remind)
	default:
		return c.Text
	}
}
