package structure

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Keys names the reserved entries an element map carries next to its
// children.
type Keys struct {
	Attributes string `koanf:"attributes"`
	Text       string `koanf:"text"`
	Comment    string `koanf:"comment"`
	CDATA      string `koanf:"cdata"`
}

// DefaultKeys uses prefixes that no sanitized element name can start with,
// so reserved entries never collide with children.
func DefaultKeys() Keys {
	return Keys{
		Attributes: "@attributes",
		Text:       "#text",
		Comment:    "#comment",
		CDATA:      "#cdata",
	}
}

// ClassicKeys uses plain field-style names. A child element named like one
// of them collides with the reserved entry.
func ClassicKeys() Keys {
	return Keys{
		Attributes: "Attributes",
		Text:       "Text",
		Comment:    "Comment",
		CDATA:      "CDATA",
	}
}

// Bucket returns the key used for a text bucket.
func (k Keys) Bucket(kind BucketKind) string {
	switch kind {
	case TextBucket:
		return k.Text
	case CommentBucket:
		return k.Comment
	default:
		return k.CDATA
	}
}

// OrderedMap is a string-keyed map that serializes its entries in insertion
// order. Values are strings, []any, or nested *OrderedMap.
type OrderedMap struct {
	m ordered[any]
}

func NewOrderedMap() *OrderedMap {
	return &OrderedMap{}
}

// Set stores value under key. An existing key keeps its position.
func (o *OrderedMap) Set(key string, value any) {
	o.m.set(key, value)
}

func (o *OrderedMap) Get(key string) (any, bool) {
	return o.m.get(key)
}

func (o *OrderedMap) Keys() []string {
	return o.m.keyList()
}

func (o *OrderedMap) Len() int {
	return o.m.len()
}

// ToMap converts the tree into plain Go maps, losing key order. Used by
// encoders that cannot take an ordered mapping.
func (o *OrderedMap) ToMap() map[string]any {
	out := make(map[string]any, o.m.len())
	for _, k := range o.m.keys {
		out[k] = plain(o.m.values[k])
	}
	return out
}

func plain(v any) any {
	switch t := v.(type) {
	case *OrderedMap:
		return t.ToMap()
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = plain(item)
		}
		return out
	default:
		return v
	}
}

// MarshalJSON writes entries in insertion order.
func (o *OrderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encodeJSON(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := encodeJSON(o.m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeJSON marshals without HTML escaping; document text routinely holds
// markup characters.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalYAML emits a mapping node with entries in insertion order.
func (o *OrderedMap) MarshalYAML() (interface{}, error) {
	return o.yamlNode()
}

func (o *OrderedMap) yamlNode() (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range o.m.keys {
		val, err := yamlNode(o.m.values[k])
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			val,
		)
	}
	return node, nil
}

func yamlNode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case *OrderedMap:
		return t.yamlNode()
	case []any:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range t {
			n, err := yamlNode(item)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, n)
		}
		return seq, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t}, nil
	default:
		var n yaml.Node
		if err := n.Encode(v); err != nil {
			return nil, err
		}
		return &n, nil
	}
}

// Project converts a document into a single-entry ordered map from the
// root name to the projected root element. An empty document projects to
// an empty map.
func Project(doc *Document, keys Keys) *OrderedMap {
	out := NewOrderedMap()
	if doc.Empty() {
		return out
	}
	out.Set(doc.Name(), ProjectElement(doc.Root(), keys))
	return out
}

// ProjectElement converts one element. Reserved entries come first
// (attributes, text, comment, CDATA), then children in first-seen order.
// A single child becomes a map and a repeated child a list of maps, so the
// two never look alike after serialization.
func ProjectElement(e *Element, keys Keys) *OrderedMap {
	out := NewOrderedMap()
	if attrs := e.Attributes(); attrs != nil {
		am := NewOrderedMap()
		for k, v := range attrs.All() {
			am.Set(k, v)
		}
		out.Set(keys.Attributes, am)
	}
	for kind := TextBucket; kind < bucketCount; kind++ {
		if s, ok := e.buckets.Get(kind); ok {
			out.Set(keys.Bucket(kind), s)
		}
	}
	for name, v := range e.Children().All() {
		if !v.IsList() {
			child, _ := v.Element()
			out.Set(name, ProjectElement(child, keys))
			continue
		}
		items := make([]any, 0, v.Len())
		for _, child := range v.list {
			items = append(items, ProjectElement(child, keys))
		}
		out.Set(name, items)
	}
	return out
}
