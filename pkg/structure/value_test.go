// pkg/structure/value_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test the single/list merge policy and element assembly

package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textElement(s string) *Element {
	var b Builder
	b.SetText(TextBucket, s)
	return b.Build()
}

func TestMergeUnseenIsSingle(t *testing.T) {
	a := textElement("a")

	v := Merge(Value{}, false, a)

	assert.False(t, v.IsList())
	got, ok := v.Element()
	require.True(t, ok)
	assert.Same(t, a, got)
	assert.Equal(t, 1, v.Len())
}

func TestMergeSingleBecomesList(t *testing.T) {
	a, b := textElement("a"), textElement("b")

	first := Merge(Value{}, false, a)
	second := Merge(first, true, b)

	require.True(t, second.IsList())
	elems := second.Elements()
	require.Len(t, elems, 2)
	assert.Same(t, a, elems[0])
	assert.Same(t, b, elems[1])

	// the earlier value is untouched
	assert.False(t, first.IsList())
}

func TestMergeListAppendsInOrder(t *testing.T) {
	a, b, c, d := textElement("a"), textElement("b"), textElement("c"), textElement("d")

	v := Merge(Value{}, false, a)
	v = Merge(v, true, b)
	three := Merge(v, true, c)
	four := Merge(three, true, d)

	assert.Equal(t, []*Element{a, b, c}, three.Elements())
	assert.Equal(t, []*Element{a, b, c, d}, four.Elements())
}

func TestMergeDoesNotAliasEarlierLists(t *testing.T) {
	a, b, c, d := textElement("a"), textElement("b"), textElement("c"), textElement("d")

	base := List(a, b)
	left := Merge(base, true, c)
	right := Merge(base, true, d)

	assert.Equal(t, []*Element{a, b}, base.Elements())
	assert.Equal(t, []*Element{a, b, c}, left.Elements())
	assert.Equal(t, []*Element{a, b, d}, right.Elements())
}

func TestValueAccessors(t *testing.T) {
	var zero Value
	assert.Equal(t, 0, zero.Len())
	assert.Nil(t, zero.Elements())
	_, ok := zero.Element()
	assert.False(t, ok)

	list := List(textElement("x"))
	assert.True(t, list.IsList())
	_, ok = list.Element()
	assert.False(t, ok, "a list never reports a single element")
}

func TestBuilderChildren(t *testing.T) {
	var b Builder
	assert.False(t, b.HasChildElements())

	x1, y, x2 := textElement("1"), textElement("y"), textElement("2")
	b.AddChild("x", x1)
	b.AddChild("y", y)
	b.AddChild("x", x2)
	assert.True(t, b.HasChildElements())

	e := b.Build()
	require.NotNil(t, e.Children())
	assert.Equal(t, []string{"x", "y"}, e.Children().Keys())

	xs, ok := e.Child("x")
	require.True(t, ok)
	assert.Equal(t, []*Element{x1, x2}, xs.Elements())

	ys, ok := e.Child("y")
	require.True(t, ok)
	assert.False(t, ys.IsList())
}

func TestBuilderBuckets(t *testing.T) {
	var b Builder
	assert.False(t, b.HasText())

	b.AppendText(TextBucket, "hel")
	b.AppendText(CommentBucket, "note")
	b.AppendText(TextBucket, "lo")
	e := b.Build()

	text, ok := e.Text()
	assert.True(t, ok)
	assert.Equal(t, "hello", text)

	comment, ok := e.Comment()
	assert.True(t, ok)
	assert.Equal(t, "note", comment)

	_, ok = e.CDATA()
	assert.False(t, ok)

	assert.Nil(t, e.Attributes())
	assert.Nil(t, e.Children())
}

func TestBuilderResetsAfterBuild(t *testing.T) {
	var b Builder
	b.AddChild("x", textElement("1"))
	first := b.Build()

	b.AddChild("x", textElement("2"))
	second := b.Build()

	xs, _ := first.Child("x")
	assert.False(t, xs.IsList())
	assert.Equal(t, 1, first.Children().Len())
	assert.Equal(t, 1, second.Children().Len())
}

func TestAttributes(t *testing.T) {
	assert.Nil(t, NewAttributes(nil))

	a := NewAttributes([]Attr{
		{Name: "b", Value: "1"},
		{Name: "a", Value: "2"},
		{Name: "b", Value: "3"},
	})
	assert.Equal(t, []string{"b", "a"}, a.Keys())
	assert.Equal(t, 2, a.Len())

	v, ok := a.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	var nilAttrs *Attributes
	assert.Equal(t, 0, nilAttrs.Len())
	_, ok = nilAttrs.Get("b")
	assert.False(t, ok)
}

func TestDocument(t *testing.T) {
	var empty *Document
	assert.True(t, empty.Empty())
	assert.Equal(t, "", empty.Name())

	doc := NewDocument("root", textElement(""))
	assert.False(t, doc.Empty())
	assert.Equal(t, "root", doc.Name())
}
