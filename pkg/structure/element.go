package structure

// Element is the converted form of one element node.
type Element struct {
	attrs    *Attributes
	buckets  Buckets
	children *Children
}

// Attributes returns the attribute map, nil when the element had none.
func (e *Element) Attributes() *Attributes {
	return e.attrs
}

// Buckets returns the element's text buckets.
func (e *Element) Buckets() Buckets {
	return e.buckets
}

func (e *Element) Text() (string, bool) {
	return e.buckets.Get(TextBucket)
}

func (e *Element) Comment() (string, bool) {
	return e.buckets.Get(CommentBucket)
}

func (e *Element) CDATA() (string, bool) {
	return e.buckets.Get(CDATABucket)
}

// Children returns the child mapping, nil when the element had no child
// elements.
func (e *Element) Children() *Children {
	return e.children
}

// Child looks up a child value by sanitized name.
func (e *Element) Child(name string) (Value, bool) {
	return e.children.Get(name)
}

// Builder assembles an Element. The zero value is ready to use; Build may
// be called once.
type Builder struct {
	attrs    *Attributes
	buckets  Buckets
	children *Children
}

func (b *Builder) SetAttributes(attrs *Attributes) {
	b.attrs = attrs
}

// AppendText concatenates s onto a bucket, creating it if needed.
func (b *Builder) AppendText(kind BucketKind, s string) {
	b.buckets.append(kind, s)
}

// SetText replaces a bucket's content, creating it if needed.
func (b *Builder) SetText(kind BucketKind, s string) {
	b.buckets.set(kind, s)
}

// AddChild records one more occurrence of a child element under name.
func (b *Builder) AddChild(name string, e *Element) {
	if b.children == nil {
		b.children = &Children{}
	}
	b.children.upsert(name, e)
}

// HasChildElements reports whether any child element was added.
func (b *Builder) HasChildElements() bool {
	return b.children.Len() > 0
}

// HasText reports whether any bucket exists.
func (b *Builder) HasText() bool {
	return b.buckets.Any()
}

// Build composes the element. The builder must not be used afterwards.
func (b *Builder) Build() *Element {
	e := &Element{
		attrs:    b.attrs,
		buckets:  b.buckets,
		children: b.children,
	}
	*b = Builder{}
	return e
}

// Document is the top-level result: the root element under its sanitized
// name. The zero Document is empty.
type Document struct {
	name string
	root *Element
}

// NewDocument pairs a sanitized root name with its element.
func NewDocument(name string, root *Element) *Document {
	return &Document{name: name, root: root}
}

// Name is the sanitized root element name.
func (d *Document) Name() string {
	if d == nil {
		return ""
	}
	return d.name
}

// Root returns the root element, nil for an empty document.
func (d *Document) Root() *Element {
	if d == nil {
		return nil
	}
	return d.root
}

// Empty reports whether the document had no root element.
func (d *Document) Empty() bool {
	return d.Root() == nil
}
