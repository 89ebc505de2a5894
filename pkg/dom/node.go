package dom

// Kind classifies a node in the document tree.
type Kind int

const (
	// KindOther covers everything the converter ignores: processing
	// instructions, directives, and anything unrecognized.
	KindOther Kind = iota
	KindElement
	KindText
	KindComment
	KindCDATA
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindComment:
		return "comment"
	case KindCDATA:
		return "cdata"
	default:
		return "other"
	}
}

// Attr is a raw attribute name/value pair as reported by the parser.
type Attr struct {
	Name  string
	Value string
}

// Node is the minimal DOM-like view of a parsed document node.
type Node interface {
	// Kind reports what sort of node this is.
	Kind() Kind

	// Name is the literal (prefixed) element name. Empty for non-elements.
	Name() string

	// Attributes lists the element's attributes in document order.
	Attributes() []Attr

	HasChildNodes() bool

	// ChildNodes lists direct children in document order.
	ChildNodes() []Node

	// Data is the literal payload of a text, comment or CDATA node.
	Data() string

	// TextContent is the raw concatenation of all text and CDATA payloads
	// in the node's subtree.
	TextContent() string
}
