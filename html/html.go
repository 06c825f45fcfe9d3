// Package html parses deferred-evaluation templates as a restricted HTML
// dialect into an immutable Element tree, and renders Element trees back to
// HTML text.
//
// The dialect is deliberately small: well-formed tags, quoted or
// interpolated attributes, and interpolations at specific syntactic
// positions. It is a demonstration of template-string processing, not a
// full HTML parser.
//
//	user := "<b>Mallory</b>"
//	t := tstring.MustNew("<p class=\"warn\">", tstring.NewInterpolation(user, "user"), "</p>")
//	el, err := html.Parse(t)
//	// el.String() == `<p class="warn">&lt;b&gt;Mallory&lt;/b&gt;</p>`
//
// Interpolations are interpreted by position: tag name (string or Component),
// attribute value (string or bool), whole attribute list (ordered Attributes
// or a map), element content (string, Element or nested Template), and
// closing tag (must match the opening tag's value). Any other shape or
// position is a parse error.
//
// Text children and attribute values are escaped exactly once, when the tree
// is constructed; rendering never escapes again.
package html
