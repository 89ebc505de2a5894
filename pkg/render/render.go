package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/xml2struct/pkg/errors"
	"github.com/arthur-debert/xml2struct/pkg/structure"
	"github.com/samber/lo"
)

// Format represents the output format type
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatTree Format = "tree"
)

// Formats lists every supported format
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML, FormatTree}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "tree":
		return FormatTree, nil
	default:
		valid := lo.Map(Formats, func(f Format, _ int) string { return string(f) })
		return "", errors.Newf(errors.ErrInvalidInput, "unknown format %q (valid: %s)", s, strings.Join(valid, ", ")).
			WithDetail("format", s)
	}
}

// Renderer writes documents to an output
type Renderer interface {
	Render(doc *structure.Document) error
}

// New creates a renderer for format writing to w. keys names the reserved
// entries of each element.
func New(format Format, w io.Writer, keys structure.Keys) (Renderer, error) {
	switch format {
	case FormatJSON:
		return NewJSON(w, keys), nil
	case FormatYAML:
		return NewYAML(w, keys), nil
	case FormatTOML:
		return NewTOML(w, keys), nil
	case FormatTree:
		return NewTree(w, keys), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q", string(format))
	}
}

func renderError(err error, format Format) error {
	return errors.Wrap(err, errors.ErrRender, fmt.Sprintf("failed to render %s", format))
}
