package render

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/vow/internal/model"
)

// JSONFormatter formats commitments as JSON.
type JSONFormatter struct {
	opts FormatterOptions
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts FormatterOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Format writes commitments as a JSON array.
func (f *JSONFormatter) Format(w io.Writer, commitments []model.Commitment) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(commitments)
}

// FormatSingle writes a single commitment as JSON.
func (f *JSONFormatter) FormatSingle(w io.Writer, c *model.Commitment) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(c)
}
