package convert

import (
	"io"
	"strings"

	"github.com/arthur-debert/xml2struct/pkg/dom"
	"github.com/arthur-debert/xml2struct/pkg/errors"
	"github.com/arthur-debert/xml2struct/pkg/filesystem"
	"github.com/arthur-debert/xml2struct/pkg/logging"
	"github.com/arthur-debert/xml2struct/pkg/structure"
	"github.com/beevik/etree"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

const (
	// DefaultExtension is appended to extensionless paths that do not exist
	DefaultExtension = ".xml"
)

// Options configures a Converter. Zero values select the defaults.
type Options struct {
	// FS is used to locate and read files. Defaults to the OS filesystem.
	FS filesystem.FS

	// DefaultExtension is tried when a path does not exist and has no
	// recognized extension. Defaults to ".xml".
	DefaultExtension string

	// Extensions lists the recognized extensions. The default extension
	// is always added.
	Extensions []string
}

// Converter is the top-level entry point. It is safe to reuse across
// documents; it holds no per-document state.
type Converter struct {
	fs         filesystem.FS
	defaultExt string
	extensions []string
	logger     zerolog.Logger
}

// New creates a Converter from opts
func New(opts Options) *Converter {
	c := &Converter{
		fs:         opts.FS,
		defaultExt: normalizeExtension(opts.DefaultExtension),
		logger:     logging.GetLogger("convert"),
	}
	if c.fs == nil {
		c.fs = filesystem.NewOS()
	}
	if c.defaultExt == "" {
		c.defaultExt = DefaultExtension
	}
	// The default extension is always recognized, so a missing "doc.svg"
	// is never retried as "doc.svg.svg".
	extensions := lo.Map(opts.Extensions, func(ext string, _ int) string {
		return normalizeExtension(ext)
	})
	c.extensions = lo.Uniq(lo.Compact(append(extensions, c.defaultExt)))
	return c
}

// normalizeExtension lowercases ext and ensures a leading dot
func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

// Convert converts a pre-parsed root node. A nil or non-element root gives
// an empty document.
func (c *Converter) Convert(root dom.Node) *structure.Document {
	if Classify(root) != dom.KindElement {
		c.logger.Debug().Msg("No root element, returning empty document")
		return &structure.Document{}
	}
	name := SanitizeName(root.Name())
	c.logger.Trace().Str("root", name).Msg("Converting document")
	return structure.NewDocument(name, Walk(root))
}

// ConvertDocument converts a parsed etree document.
func (c *Converter) ConvertDocument(doc *etree.Document) *structure.Document {
	return c.Convert(dom.Root(doc))
}

// ConvertBytes parses data and converts it. Parser failures are returned
// as ErrParse wrapping the parser's error.
func (c *Converter) ConvertBytes(data []byte) (*structure.Document, error) {
	doc, err := dom.ParseBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrParse, "failed to parse document")
	}
	return c.ConvertDocument(doc), nil
}

// ConvertReader reads, parses and converts a document from r.
func (c *Converter) ConvertReader(r io.Reader) (*structure.Document, error) {
	logger := logging.ForDocument(c.logger, "")
	logger.Debug().Msg("Reading document from stream")
	doc, err := dom.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrParse, "failed to parse document")
	}
	return c.ConvertDocument(doc), nil
}

// ConvertFile resolves path (see ResolvePath), then reads, parses and
// converts the file.
func (c *Converter) ConvertFile(path string) (*structure.Document, error) {
	resolved, err := c.ResolvePath(path)
	if err != nil {
		return nil, err
	}

	logger := logging.ForDocument(c.logger, resolved)
	done := logging.LogOperationStart(logger, "convert")
	defer done()

	data, err := c.fs.ReadFile(resolved)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", resolved).
			WithDetail("path", resolved)
	}

	doc, err := dom.ParseBytes(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrParse, "failed to parse %s", resolved).
			WithDetail("path", resolved)
	}
	return c.ConvertDocument(doc), nil
}

// Convert converts a pre-parsed root node with default options.
func Convert(root dom.Node) *structure.Document {
	return New(Options{}).Convert(root)
}

// ConvertFile converts the file at path with default options.
func ConvertFile(path string) (*structure.Document, error) {
	return New(Options{}).ConvertFile(path)
}
