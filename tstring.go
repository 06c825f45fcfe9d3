// Package tstring models deferred-evaluation template strings: templates
// that preserve their literal text segments and unevaluated interpolation
// descriptors so consumer code can decide how each interpolated value is
// rendered, escaped, or routed.
//
// # The template model
//
// A Template is an ordered, immutable sequence of parts alternating between
// Literal text and Interpolation descriptors. Every Interpolation carries
// the evaluated value, its source expression text, an optional conversion
// and an optional format spec:
//
//	name := "World"
//	t := tstring.MustNew("Hello ", tstring.NewInterpolation(name, "name"), "!")
//
// # Consumers
//
// The package ships the canonical consumers of the template primitive:
//
// Format renders a template the way eager string interpolation would have,
// applying conversions and format specs:
//
//	s, err := tstring.Format(t) // "Hello World!"
//
// FromFormat converts a legacy positional/keyword format string into an
// equivalent Template:
//
//	t, err := tstring.FromFormat("Hello {name}!", nil, map[string]any{"name": "World"})
//
// Formatter makes a template reusable across value sets, FormatSelected and
// FormatContext defer interpolation evaluation behind suppliers, and
// TemplateMessage routes one template to both a human-readable message and
// structured zap fields.
//
// # HTML templating
//
// The html subpackage parses a Template as a restricted HTML dialect into an
// immutable, escaped-by-construction Element tree:
//
//	el, err := html.Parse(t)
//	out := el.String()
package tstring
