package html

import "strings"

// Node is a child of an Element: escaped Text or a nested Element. The set
// of implementations is closed.
type Node interface {
	node()
}

// Text is an already-escaped text child. Build one with TextContent (which
// escapes) or Raw (which trusts its input).
type Text string

func (Text) node() {}

// TextContent escapes s for element content and returns it as a Text node.
func TextContent(s string) Text {
	return Text(EscapeText(s))
}

// Raw wraps s as a Text node without escaping. The caller vouches that s is
// safe HTML text.
func Raw(s string) Text {
	return Text(s)
}

// Element is an immutable HTML node: a tag name (empty = fragment), an
// insertion-ordered attribute collection and ordered children. Elements are
// values with structural equality; children are owned exclusively by their
// parent and never shared.
type Element struct {
	tag      string
	attrs    Attributes
	children []Node
}

func (Element) node() {}

// Component is a callable substituted at tag position. The parser collects
// the tag's attributes and children, then invokes the component to produce
// the node for that position.
type Component func(attrs Attributes, children []Node) (Element, error)

// New creates an element. Children are taken as-is: Text children must
// already be escaped (use TextContent). Fragments (empty tag) cannot carry
// attributes.
func New(tag string, attrs Attributes, children ...Node) (Element, error) {
	if tag == "" && attrs.Len() > 0 {
		return Element{}, NewFragmentAttrsError()
	}
	owned := make([]Node, len(children))
	copy(owned, children)
	return Element{tag: tag, attrs: attrs, children: owned}, nil
}

// MustNew creates an element and panics on invalid input.
func MustNew(tag string, attrs Attributes, children ...Node) Element {
	el, err := New(tag, attrs, children...)
	if err != nil {
		panic(err)
	}
	return el
}

// Empty returns the empty fragment.
func Empty() Element {
	return Element{}
}

// Fragment returns an element with no wrapping tag, rendering as the
// concatenation of its children.
func Fragment(children ...Node) Element {
	owned := make([]Node, len(children))
	copy(owned, children)
	return Element{children: owned}
}

// Tag returns the tag name; empty means fragment.
func (e Element) Tag() string {
	return e.tag
}

// IsFragment reports whether the element has no wrapping tag.
func (e Element) IsFragment() bool {
	return e.tag == ""
}

// Attrs returns the attribute collection.
func (e Element) Attrs() Attributes {
	return e.attrs
}

// Children returns a copy of the ordered children.
func (e Element) Children() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// Append returns a copy of the element with an extra child.
func (e Element) Append(child Node) Element {
	children := make([]Node, 0, len(e.children)+1)
	children = append(children, e.children...)
	children = append(children, child)
	return Element{tag: e.tag, attrs: e.attrs, children: children}
}

// Equal reports structural equality of two element trees.
func (e Element) Equal(other Element) bool {
	if e.tag != other.tag || !e.attrs.Equal(other.attrs) || len(e.children) != len(other.children) {
		return false
	}
	for i := range e.children {
		switch c := e.children[i].(type) {
		case Text:
			o, ok := other.children[i].(Text)
			if !ok || c != o {
				return false
			}
		case Element:
			o, ok := other.children[i].(Element)
			if !ok || !c.Equal(o) {
				return false
			}
		}
	}
	return true
}

// Render serializes an element tree to HTML text.
func Render(e Element) string {
	return e.String()
}

// String serializes the element: fragments render their children with no
// wrapper; childless elements self-close; text children are emitted as-is
// because they were escaped at construction.
func (e Element) String() string {
	var sb strings.Builder
	e.render(&sb)
	return sb.String()
}

func (e Element) render(sb *strings.Builder) {
	if e.tag == "" {
		e.renderChildren(sb)
		return
	}

	sb.WriteByte('<')
	sb.WriteString(e.tag)
	if e.attrs.Len() > 0 {
		sb.WriteByte(' ')
		sb.WriteString(e.attrs.String())
	}

	if len(e.children) == 0 {
		sb.WriteString(" />")
		return
	}

	sb.WriteByte('>')
	e.renderChildren(sb)
	sb.WriteString("</")
	sb.WriteString(e.tag)
	sb.WriteByte('>')
}

func (e Element) renderChildren(sb *strings.Builder) {
	for _, child := range e.children {
		switch c := child.(type) {
		case Text:
			sb.WriteString(string(c))
		case Element:
			c.render(sb)
		}
	}
}
