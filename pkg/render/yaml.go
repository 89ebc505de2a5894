package render

import (
	"io"

	"github.com/arthur-debert/xml2struct/pkg/structure"
	"gopkg.in/yaml.v3"
)

// YAMLRenderer writes documents as a YAML stream, one YAML document each
type YAMLRenderer struct {
	encoder *yaml.Encoder
	keys    structure.Keys
}

// NewYAML creates a new YAML renderer
func NewYAML(output io.Writer, keys structure.Keys) *YAMLRenderer {
	encoder := yaml.NewEncoder(output)
	encoder.SetIndent(2)
	return &YAMLRenderer{
		encoder: encoder,
		keys:    keys,
	}
}

// Render encodes the projected document and flushes it
func (r *YAMLRenderer) Render(doc *structure.Document) error {
	if err := r.encoder.Encode(structure.Project(doc, r.keys)); err != nil {
		return renderError(err, FormatYAML)
	}
	return nil
}

// Close finishes the YAML stream
func (r *YAMLRenderer) Close() error {
	return r.encoder.Close()
}
