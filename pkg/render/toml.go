package render

import (
	"io"

	"github.com/arthur-debert/xml2struct/pkg/structure"
	toml "github.com/pelletier/go-toml/v2"
)

// TOMLRenderer writes each document as a TOML table tree. Repeated
// children become arrays of tables.
type TOMLRenderer struct {
	output io.Writer
	keys   structure.Keys
	count  int
}

// NewTOML creates a new TOML renderer
func NewTOML(output io.Writer, keys structure.Keys) *TOMLRenderer {
	return &TOMLRenderer{output: output, keys: keys}
}

// Render encodes the projected document. Documents after the first are
// separated by a blank line.
func (r *TOMLRenderer) Render(doc *structure.Document) error {
	data, err := toml.Marshal(structure.Project(doc, r.keys).ToMap())
	if err != nil {
		return renderError(err, FormatTOML)
	}
	if r.count > 0 {
		if _, err := io.WriteString(r.output, "\n"); err != nil {
			return renderError(err, FormatTOML)
		}
	}
	r.count++
	if _, err := r.output.Write(data); err != nil {
		return renderError(err, FormatTOML)
	}
	return nil
}
