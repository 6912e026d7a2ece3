package output

import (
	"encoding/json"
	"io"

	"github.com/gameforge-dev/gameforge/internal/application/dto"
)

// JSONFormatter formats responses as JSON.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
// If indent is true, the output will be pretty-printed with indentation.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		writer: w,
		indent: indent,
	}
}

// FormatGame writes a built game as JSON, or an array for a batch.
func (f *JSONFormatter) FormatGame(resp *dto.BuildGameResponse) error {
	if len(resp.Batch) > 0 {
		return f.write(resp.Batch)
	}
	return f.write(resp.Record)
}

// FormatMatrix writes matrix rows as JSON.
func (f *JSONFormatter) FormatMatrix(resp *dto.MatrixResponse) error {
	return f.write(resp)
}

// FormatCatalog writes the catalog as JSON.
func (f *JSONFormatter) FormatCatalog(resp *dto.CatalogResponse) error {
	return f.write(resp)
}

func (f *JSONFormatter) write(v interface{}) error {
	encoder := json.NewEncoder(f.writer)
	if f.indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}
