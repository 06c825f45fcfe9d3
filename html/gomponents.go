package html

import (
	g "maragu.dev/gomponents"
)

// Gomponent converts an element tree into a gomponents node, so parsed
// templates can be composed with hand-built gomponents views and rendered
// through their io.Writer pipeline. Text passes through as raw markup in
// its already-escaped form. Attribute values are unescaped first because
// gomponents applies its own attribute escaping on render.
func Gomponent(e Element) g.Node {
	if e.IsFragment() {
		return g.Group(gomponentChildren(e.children))
	}
	nodes := make([]g.Node, 0, e.attrs.Len()+len(e.children))
	for _, attr := range e.attrs.All() {
		if attr.Flag {
			nodes = append(nodes, g.Attr(attr.Key))
			continue
		}
		nodes = append(nodes, g.Attr(attr.Key, unescapeAttr(attr.Value)))
	}
	nodes = append(nodes, gomponentChildren(e.children)...)
	return g.El(e.tag, nodes...)
}

func gomponentChildren(children []Node) []g.Node {
	nodes := make([]g.Node, 0, len(children))
	for _, child := range children {
		switch v := child.(type) {
		case Text:
			nodes = append(nodes, g.Raw(string(v)))
		case Element:
			nodes = append(nodes, Gomponent(v))
		}
	}
	return nodes
}
