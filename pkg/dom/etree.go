package dom

import (
	"strings"

	"github.com/beevik/etree"
)

// etreeNode adapts a single etree token to Node
type etreeNode struct {
	tok etree.Token
}

// Wrap returns the Node view of an etree token. A nil token yields nil.
func Wrap(tok etree.Token) Node {
	switch t := tok.(type) {
	case nil:
		return nil
	case *etree.Element:
		if t == nil {
			return nil
		}
	case *etree.CharData:
		if t == nil {
			return nil
		}
	case *etree.Comment:
		if t == nil {
			return nil
		}
	}
	return &etreeNode{tok: tok}
}

// Root returns the document's root element, or nil when the document has
// none (empty input, or only a prolog).
func Root(doc *etree.Document) Node {
	if doc == nil {
		return nil
	}
	root := doc.Root()
	if root == nil {
		return nil
	}
	return Wrap(root)
}

func (n *etreeNode) Kind() Kind {
	switch t := n.tok.(type) {
	case *etree.Element:
		return KindElement
	case *etree.CharData:
		if t.IsCData() {
			return KindCDATA
		}
		return KindText
	case *etree.Comment:
		return KindComment
	default:
		return KindOther
	}
}

func (n *etreeNode) Name() string {
	if el, ok := n.tok.(*etree.Element); ok {
		return el.FullTag()
	}
	return ""
}

func (n *etreeNode) Attributes() []Attr {
	el, ok := n.tok.(*etree.Element)
	if !ok || len(el.Attr) == 0 {
		return nil
	}
	attrs := make([]Attr, 0, len(el.Attr))
	for _, a := range el.Attr {
		attrs = append(attrs, Attr{Name: a.FullKey(), Value: a.Value})
	}
	return attrs
}

func (n *etreeNode) HasChildNodes() bool {
	el, ok := n.tok.(*etree.Element)
	return ok && len(el.Child) > 0
}

func (n *etreeNode) ChildNodes() []Node {
	el, ok := n.tok.(*etree.Element)
	if !ok || len(el.Child) == 0 {
		return nil
	}
	children := make([]Node, 0, len(el.Child))
	for _, c := range el.Child {
		children = append(children, &etreeNode{tok: c})
	}
	return children
}

func (n *etreeNode) Data() string {
	switch t := n.tok.(type) {
	case *etree.CharData:
		return t.Data
	case *etree.Comment:
		return t.Data
	case *etree.Directive:
		return t.Data
	case *etree.ProcInst:
		return t.Inst
	default:
		return ""
	}
}

func (n *etreeNode) TextContent() string {
	switch t := n.tok.(type) {
	case *etree.Element:
		var sb strings.Builder
		writeText(&sb, t)
		return sb.String()
	case *etree.CharData:
		return t.Data
	case *etree.Comment:
		return t.Data
	default:
		return ""
	}
}

// writeText appends every character-data payload below el in document order
func writeText(sb *strings.Builder, el *etree.Element) {
	for _, c := range el.Child {
		switch t := c.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			writeText(sb, t)
		}
	}
}
