package tstring

import (
	"fmt"
	"strings"
)

// Conv identifies a conversion applied to an interpolation value before
// formatting.
type Conv string

// Conversion constants
const (
	ConvNone  Conv = ""  // No conversion
	ConvASCII Conv = "a" // ASCII-only quoted form
	ConvRepr  Conv = "r" // Quoted/source-like form
	ConvStr   Conv = "s" // Plain string form
)

// IsValid reports whether the conversion is one of the known values.
func (c Conv) IsValid() bool {
	switch c {
	case ConvNone, ConvASCII, ConvRepr, ConvStr:
		return true
	}
	return false
}

// Part is one element of a Template: either a Literal text segment or an
// Interpolation. The set of implementations is closed.
type Part interface {
	part()
}

// Literal is a static text segment of a Template.
type Literal string

func (Literal) part() {}

// Interpolation is one evaluated embedded expression within a Template.
// It carries the value, the source expression text, an optional conversion
// and an optional format spec. Interpolations are immutable; the With*
// methods return modified copies.
type Interpolation struct {
	value      any
	expr       string
	conv       Conv
	formatSpec string
}

func (Interpolation) part() {}

// NewInterpolation creates an interpolation for the given value and its
// source expression text.
func NewInterpolation(value any, expr string) Interpolation {
	return Interpolation{value: value, expr: expr}
}

// WithConv returns a copy of the interpolation with the given conversion.
func (i Interpolation) WithConv(conv Conv) Interpolation {
	i.conv = conv
	return i
}

// WithFormatSpec returns a copy of the interpolation with the given format spec.
func (i Interpolation) WithFormatSpec(spec string) Interpolation {
	i.formatSpec = spec
	return i
}

// Value returns the evaluated interpolation value.
func (i Interpolation) Value() any { return i.value }

// Expr returns the source expression text.
func (i Interpolation) Expr() string { return i.expr }

// Conv returns the conversion, or ConvNone.
func (i Interpolation) Conv() Conv { return i.conv }

// FormatSpec returns the format spec, or "".
func (i Interpolation) FormatSpec() string { return i.formatSpec }

// String returns a debug representation of the interpolation.
func (i Interpolation) String() string {
	var sb strings.Builder
	sb.WriteString("Interpolation{")
	sb.WriteString(fmt.Sprintf("%v", i.value))
	if i.expr != "" {
		sb.WriteString(fmt.Sprintf(", expr=%q", i.expr))
	}
	if i.conv != ConvNone {
		sb.WriteString(fmt.Sprintf(", conv=%s", string(i.conv)))
	}
	if i.formatSpec != "" {
		sb.WriteString(fmt.Sprintf(", spec=%q", i.formatSpec))
	}
	sb.WriteString("}")
	return sb.String()
}

// Template is an immutable ordered sequence of Literal and Interpolation
// parts. A normalized template always alternates literal/interpolation,
// begins and ends with a (possibly empty) literal, and therefore has an odd
// part count. The zero Template behaves as the empty template.
type Template struct {
	parts []Part
}

// New builds a normalized Template from the given arguments. Each argument
// must be a string, a Literal, or an Interpolation; adjacent literal text is
// fused and empty literals are inserted between adjacent interpolations and
// at the boundaries so the alternation invariant holds.
func New(args ...any) (Template, error) {
	parts := make([]Part, 0, len(args)+2)
	lastWasLiteral := false

	for idx, arg := range args {
		switch v := arg.(type) {
		case string:
			parts = appendLiteral(parts, Literal(v), lastWasLiteral)
			lastWasLiteral = true
		case Literal:
			parts = appendLiteral(parts, v, lastWasLiteral)
			lastWasLiteral = true
		case Interpolation:
			if !lastWasLiteral {
				parts = append(parts, Literal(""))
			}
			parts = append(parts, v)
			lastWasLiteral = false
		default:
			return Template{}, NewTemplateArgError(idx, arg)
		}
	}

	if !lastWasLiteral {
		parts = append(parts, Literal(""))
	}

	return Template{parts: parts}, nil
}

// MustNew builds a Template and panics on invalid arguments.
func MustNew(args ...any) Template {
	t, err := New(args...)
	if err != nil {
		panic(err)
	}
	return t
}

func appendLiteral(parts []Part, lit Literal, lastWasLiteral bool) []Part {
	if lastWasLiteral && len(parts) > 0 {
		parts[len(parts)-1] = parts[len(parts)-1].(Literal) + lit
		return parts
	}
	return append(parts, lit)
}

// Parts returns a copy of the template's part sequence. An empty template
// yields a single empty literal.
func (t Template) Parts() []Part {
	if len(t.parts) == 0 {
		return []Part{Literal("")}
	}
	out := make([]Part, len(t.parts))
	copy(out, t.parts)
	return out
}

// Literals returns the static text segments in order.
func (t Template) Literals() []string {
	var out []string
	for _, p := range t.Parts() {
		if lit, ok := p.(Literal); ok {
			out = append(out, string(lit))
		}
	}
	return out
}

// Interpolations returns the interpolation descriptors in order.
func (t Template) Interpolations() []Interpolation {
	var out []Interpolation
	for _, p := range t.parts {
		if in, ok := p.(Interpolation); ok {
			out = append(out, in)
		}
	}
	return out
}

// Concat returns a new Template joining t and other. The trailing literal of
// t fuses with the leading literal of other.
func (t Template) Concat(other Template) Template {
	left := t.Parts()
	right := other.Parts()

	parts := make([]Part, 0, len(left)+len(right)-1)
	parts = append(parts, left[:len(left)-1]...)
	boundary := left[len(left)-1].(Literal) + right[0].(Literal)
	parts = append(parts, boundary)
	parts = append(parts, right[1:]...)
	return Template{parts: parts}
}

// ConcatString returns a new Template with s fused onto the trailing literal.
func (t Template) ConcatString(s string) Template {
	parts := t.Parts()
	parts[len(parts)-1] = parts[len(parts)-1].(Literal) + Literal(s)
	return Template{parts: parts}
}

// PrependString returns a new Template with s fused onto the leading literal.
func (t Template) PrependString(s string) Template {
	parts := t.Parts()
	parts[0] = Literal(s) + parts[0].(Literal)
	return Template{parts: parts}
}

// String returns a debug representation of the template.
func (t Template) String() string {
	var sb strings.Builder
	sb.WriteString("Template{")
	for idx, p := range t.Parts() {
		if idx > 0 {
			sb.WriteString(", ")
		}
		switch v := p.(type) {
		case Literal:
			sb.WriteString(fmt.Sprintf("%q", string(v)))
		case Interpolation:
			sb.WriteString(v.String())
		}
	}
	sb.WriteString("}")
	return sb.String()
}
