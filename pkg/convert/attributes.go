package convert

import (
	"github.com/arthur-debert/xml2struct/pkg/dom"
	"github.com/arthur-debert/xml2struct/pkg/structure"
)

// extractAttributes reads an element's attributes in document order under
// sanitized names. Values are kept exactly as the parser produced them.
// Returns nil when the element has no attributes.
func extractAttributes(n dom.Node) *structure.Attributes {
	raw := n.Attributes()
	if len(raw) == 0 {
		return nil
	}
	attrs := make([]structure.Attr, 0, len(raw))
	for _, a := range raw {
		attrs = append(attrs, structure.Attr{
			Name:  SanitizeName(a.Name),
			Value: a.Value,
		})
	}
	return structure.NewAttributes(attrs)
}
