package render

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/vow/internal/model"
)

// YAMLFormatter formats commitments as YAML.
type YAMLFormatter struct {
	opts FormatterOptions
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(opts FormatterOptions) *YAMLFormatter {
	return &YAMLFormatter{opts: opts}
}

// Format writes commitments as a YAML sequence.
func (f *YAMLFormatter) Format(w io.Writer, commitments []model.Commitment) error {
	data, err := yaml.Marshal(commitments)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
