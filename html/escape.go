package html

import "strings"

// Escaping happens in a single replacer pass, so already-escaped input is
// never double-escaped by construction paths that apply it exactly once.
var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#x27;",
	)
	attrUnescaper = strings.NewReplacer(
		"&quot;", `"`,
		"&#x27;", "'",
		"&lt;", "<",
		"&gt;", ">",
		"&amp;", "&",
	)
)

// EscapeText escapes text for use as element content.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// EscapeAttr escapes text for use inside a quoted attribute value.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// unescapeAttr reverses EscapeAttr for interop layers that apply their own
// escaping.
func unescapeAttr(s string) string {
	return attrUnescaper.Replace(s)
}
