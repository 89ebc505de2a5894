package convert

import (
	"github.com/arthur-debert/xml2struct/pkg/dom"
	"github.com/arthur-debert/xml2struct/pkg/structure"
)

// Classify returns the kind of a child node. Anything that is not an
// element, text, comment or CDATA node is reported as dom.KindOther and
// skipped by the walker.
func Classify(n dom.Node) dom.Kind {
	if n == nil {
		return dom.KindOther
	}
	switch k := n.Kind(); k {
	case dom.KindElement, dom.KindText, dom.KindComment, dom.KindCDATA:
		return k
	default:
		return dom.KindOther
	}
}

// bucketFor maps a text-bearing node kind to the bucket it feeds
func bucketFor(kind dom.Kind) (structure.BucketKind, bool) {
	switch kind {
	case dom.KindText:
		return structure.TextBucket, true
	case dom.KindComment:
		return structure.CommentBucket, true
	case dom.KindCDATA:
		return structure.CDATABucket, true
	default:
		return 0, false
	}
}
