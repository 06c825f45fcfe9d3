package tstring

import (
	"fmt"
	"strconv"
	"strings"
)

// Stringify returns the plain string form of a value: strings pass through,
// fmt.Stringer and error are honored, everything else goes through the
// default fmt formatting.
func Stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Convert applies a conversion to an interpolation value. ConvStr yields the
// plain string form, ConvRepr a quoted/source-like form, ConvASCII the same
// with non-ASCII characters escaped. ConvNone (and unknown conversions)
// return the value unchanged.
func Convert(value any, conv Conv) any {
	switch conv {
	case ConvStr:
		return Stringify(value)
	case ConvRepr:
		return reprValue(value)
	case ConvASCII:
		return asciiValue(value)
	}
	return value
}

func reprValue(value any) string {
	if s, ok := value.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%#v", value)
}

func asciiValue(value any) string {
	if s, ok := value.(string); ok {
		return strconv.QuoteToASCII(s)
	}
	return fmt.Sprintf("%#v", value)
}

// Format renders a template the way eager string interpolation would have:
// literal segments verbatim, interpolation values converted and formatted
// according to their conversion and format spec.
func Format(t Template) (string, error) {
	return formatParts(t, func(in Interpolation) (any, error) {
		return in.Value(), nil
	})
}

// formatParts renders a template, resolving each interpolation's value via
// resolve before applying conversion and format spec.
func formatParts(t Template, resolve func(Interpolation) (any, error)) (string, error) {
	var sb strings.Builder
	for _, p := range t.Parts() {
		switch part := p.(type) {
		case Literal:
			sb.WriteString(string(part))
		case Interpolation:
			value, err := resolve(part)
			if err != nil {
				return "", err
			}
			value = Convert(value, part.Conv())
			out, err := formatValue(value, part.FormatSpec())
			if err != nil {
				return "", err
			}
			sb.WriteString(out)
		}
	}
	return sb.String(), nil
}
