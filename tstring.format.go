package tstring

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Replacement-field pattern: static prefix, key, optional !conversion,
// optional :format-spec (which may itself contain one level of braces).
var fmtFieldPattern = regexp.MustCompile(
	`(.*?)\{([^{}]*?)(?:!([sra]))?(?::((?:[^{}]|\{[^{}]*\})*))?\}`,
)

// Field numbering modes; automatic ("{}") and manual ("{0}") numbering are
// mutually exclusive within one format string.
const (
	numberingUnset  = ""
	numberingAuto   = "auto"
	numberingManual = "manual"
)

// parsedField is one replacement field of a legacy format string. Exactly
// one of key (keyword lookup) or index (positional lookup) is meaningful;
// index is -1 for keyword fields.
type parsedField struct {
	index      int
	key        string
	conv       Conv
	formatSpec string
}

// FromFormat parses a legacy positional/keyword format string and returns
// the equivalent Template. Positional fields resolve against args (with
// automatic or manual numbering), keyword fields against kwargs. The
// expression text of each interpolation records the lookup that produced its
// value ("args[0]", `kwargs["name"]`).
//
// Interpolations inside format specs ("{:{}}") are not supported.
func FromFormat(format string, args []any, kwargs map[string]any) (Template, error) {
	parts, err := parseFormatString(format)
	if err != nil {
		return Template{}, err
	}

	templateArgs := make([]any, 0, len(parts))
	for _, part := range parts {
		switch v := part.(type) {
		case string:
			templateArgs = append(templateArgs, v)
		case parsedField:
			var value any
			var expr string
			if v.index >= 0 {
				if v.index >= len(args) {
					return Template{}, NewIndexOutOfRangeError(v.index)
				}
				value = args[v.index]
				expr = fmt.Sprintf("args[%d]", v.index)
			} else {
				val, ok := kwargs[v.key]
				if !ok {
					return Template{}, NewMissingKeyError(v.key)
				}
				value = val
				expr = fmt.Sprintf("kwargs[%q]", v.key)
			}
			in := NewInterpolation(value, expr).
				WithConv(v.conv).
				WithFormatSpec(v.formatSpec)
			templateArgs = append(templateArgs, in)
		}
	}

	return New(templateArgs...)
}

// parseFormatString splits a format string into static text and replacement
// fields, validating conversion specifiers and field numbering.
func parseFormatString(format string) ([]any, error) {
	var result []any
	pos := 0
	currentIndex := 0
	numbering := numberingUnset

	for _, m := range fmtFieldPattern.FindAllStringSubmatchIndex(format, -1) {
		start, end := m[0], m[1]
		if pos < start {
			result = append(result, format[pos:start])
		}

		static := group(format, m, 1)
		key := group(format, m, 2)
		conv := group(format, m, 3)
		spec := group(format, m, 4)

		// Only literal format specs are supported.
		if spec != "" && strings.HasPrefix(spec, "{") && strings.HasSuffix(spec, "}") {
			return nil, NewFormatSpecError(ErrMsgNestedSpec, spec)
		}

		// Invalid conversion specifiers never match the conversion group;
		// they end up inside the key.
		if strings.Contains(key, "!") {
			bad := key[strings.Index(key, "!")+1:]
			return nil, NewConversionError(bad)
		}

		if static != "" {
			result = append(result, static)
		}

		field := parsedField{index: -1, conv: Conv(conv), formatSpec: spec}
		switch {
		case key == "":
			if numbering == numberingManual {
				return nil, NewNumberingMixError()
			}
			numbering = numberingAuto
			field.index = currentIndex
			currentIndex++
		case isDigits(key):
			if numbering == numberingAuto {
				return nil, NewNumberingMixError()
			}
			numbering = numberingManual
			idx, err := strconv.Atoi(key)
			if err != nil {
				return nil, NewFormatSpecError(ErrMsgBadFormatSpec, key)
			}
			field.index = idx
		default:
			field.key = key
		}

		result = append(result, field)
		pos = end
	}

	if pos < len(format) {
		result = append(result, format[pos:])
	}

	return result, nil
}

func group(s string, match []int, n int) string {
	lo, hi := match[2*n], match[2*n+1]
	if lo < 0 {
		return ""
	}
	return s[lo:hi]
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
