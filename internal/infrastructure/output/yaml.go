package output

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/gameforge-dev/gameforge/internal/application/dto"
)

// YAMLFormatter formats responses as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// FormatGame writes a built game as YAML, or a sequence for a batch.
func (f *YAMLFormatter) FormatGame(resp *dto.BuildGameResponse) error {
	if len(resp.Batch) > 0 {
		return f.encode(resp.Batch)
	}
	return f.encode(resp.Record)
}

// FormatMatrix writes matrix rows as YAML.
func (f *YAMLFormatter) FormatMatrix(resp *dto.MatrixResponse) error {
	return f.encode(resp)
}

// FormatCatalog writes the catalog as YAML.
func (f *YAMLFormatter) FormatCatalog(resp *dto.CatalogResponse) error {
	return f.encode(resp)
}

func (f *YAMLFormatter) encode(v interface{}) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2))

	if err := encoder.Encode(v); err != nil {
		return err
	}

	return encoder.Close()
}
