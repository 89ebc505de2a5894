package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/arthur-debert/xml2struct/pkg/structure"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// TreeRenderer draws documents as an indented tree for terminals
type TreeRenderer struct {
	output io.Writer
	keys   structure.Keys
}

// NewTree creates a new tree renderer
func NewTree(output io.Writer, keys structure.Keys) *TreeRenderer {
	return &TreeRenderer{output: output, keys: keys}
}

// Render draws one document. List entries are labelled name[i]; the
// reserved entries show the configured key names.
func (r *TreeRenderer) Render(doc *structure.Document) error {
	if doc.Empty() {
		return nil
	}

	list := pterm.LeveledList{}
	list = r.appendElement(list, 0, doc.Name(), doc.Root())

	tree, err := pterm.DefaultTree.WithRoot(putils.TreeFromLeveledList(list)).Srender()
	if err != nil {
		return renderError(err, FormatTree)
	}
	if _, err := io.WriteString(r.output, tree); err != nil {
		return renderError(err, FormatTree)
	}
	return nil
}

func (r *TreeRenderer) appendElement(list pterm.LeveledList, level int, label string, e *structure.Element) pterm.LeveledList {
	list = append(list, pterm.LeveledListItem{Level: level, Text: label})

	for name, value := range e.Attributes().All() {
		list = append(list, pterm.LeveledListItem{
			Level: level + 1,
			Text:  fmt.Sprintf("%s.%s = %s", r.keys.Attributes, name, strconv.Quote(value)),
		})
	}

	buckets := e.Buckets()
	for _, kind := range []structure.BucketKind{structure.TextBucket, structure.CommentBucket, structure.CDATABucket} {
		s, ok := buckets.Get(kind)
		if !ok {
			continue
		}
		list = append(list, pterm.LeveledListItem{
			Level: level + 1,
			Text:  fmt.Sprintf("%s = %s", r.keys.Bucket(kind), strconv.Quote(s)),
		})
	}

	for name, value := range e.Children().All() {
		if !value.IsList() {
			child, _ := value.Element()
			list = r.appendElement(list, level+1, name, child)
			continue
		}
		for i, child := range value.Elements() {
			list = r.appendElement(list, level+1, fmt.Sprintf("%s[%d]", name, i), child)
		}
	}
	return list
}
