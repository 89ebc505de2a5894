package dom

import (
	"io"

	"github.com/beevik/etree"
)

// ReadSettings returns the etree settings used for every parse: etree's
// document defaults (including its pass-through CharsetReader, so declared
// non-UTF-8 encodings are accepted) with CDATA sections preserved.
func ReadSettings() etree.ReadSettings {
	settings := etree.NewDocument().ReadSettings
	settings.PreserveCData = true
	return settings
}

// ParseBytes parses an XML document held in memory.
func ParseBytes(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = ReadSettings()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseString parses an XML document from a string.
func ParseString(s string) (*etree.Document, error) {
	return ParseBytes([]byte(s))
}

// Parse reads and parses an XML document from r.
func Parse(r io.Reader) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = ReadSettings()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}
	return doc, nil
}
