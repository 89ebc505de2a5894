package convert

import (
	"strings"

	"github.com/arthur-debert/xml2struct/pkg/dom"
	"github.com/arthur-debert/xml2struct/pkg/structure"
)

// Walk converts an element node and its subtree. Recursion depth follows
// the document's nesting depth.
func Walk(n dom.Node) *structure.Element {
	var b structure.Builder
	b.SetAttributes(extractAttributes(n))

	if n.HasChildNodes() {
		accumulate(n, &b)
	}

	// A childless, textless element still reports its raw text.
	if !b.HasChildElements() && !b.HasText() {
		b.SetText(structure.TextBucket, n.TextContent())
	}

	return b.Build()
}

// accumulate folds n's direct children into b
func accumulate(n dom.Node, b *structure.Builder) {
	for _, child := range n.ChildNodes() {
		kind := Classify(child)
		if kind == dom.KindElement {
			b.AddChild(SanitizeName(child.Name()), Walk(child))
			continue
		}

		bucket, ok := bucketFor(kind)
		if !ok {
			continue
		}
		data := child.Data()
		if strings.TrimSpace(data) == "" {
			continue
		}
		b.AppendText(bucket, data)
	}
}
