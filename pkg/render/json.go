package render

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/xml2struct/pkg/structure"
)

// JSONRenderer writes one indented JSON value per document
type JSONRenderer struct {
	encoder *json.Encoder
	keys    structure.Keys
}

// NewJSON creates a new JSON renderer
func NewJSON(output io.Writer, keys structure.Keys) *JSONRenderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return &JSONRenderer{
		encoder: encoder,
		keys:    keys,
	}
}

// Render encodes the projected document
func (r *JSONRenderer) Render(doc *structure.Document) error {
	if err := r.encoder.Encode(structure.Project(doc, r.keys)); err != nil {
		return renderError(err, FormatJSON)
	}
	return nil
}
