package tstring

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Format spec grammar characters
const (
	alignLeft    = '<'
	alignRight   = '>'
	alignCenter  = '^'
	alignPadSign = '=' // pad between sign and digits
)

// formatSpec is the parsed form of the format-spec mini-language:
//
//	[[fill]align][sign][#][0][width][,|_][.precision][type]
type formatSpec struct {
	fill      rune
	align     byte // 0 = default for the value kind
	sign      byte // 0, '+' or ' '
	alternate bool // '#': base prefix for b/o/x/X
	width     int
	sep       byte // 0, ',' or '_'
	precision int  // -1 = unset
	verb      byte // 0 = default for the value kind
}

func isAlignChar(r rune) bool {
	return r == alignLeft || r == alignRight || r == alignCenter || r == alignPadSign
}

func parseFormatSpec(spec string) (formatSpec, error) {
	fs := formatSpec{fill: ' ', precision: -1}
	runes := []rune(spec)
	i := 0

	// [[fill]align]
	if len(runes) >= 2 && isAlignChar(runes[1]) {
		fs.fill = runes[0]
		fs.align = byte(runes[1])
		i = 2
	} else if len(runes) >= 1 && isAlignChar(runes[0]) {
		fs.align = byte(runes[0])
		i = 1
	}

	// [sign] ('-' is the default and parses to no explicit sign)
	if i < len(runes) && (runes[i] == '+' || runes[i] == '-' || runes[i] == ' ') {
		if runes[i] != '-' {
			fs.sign = byte(runes[i])
		}
		i++
	}

	// [#]
	if i < len(runes) && runes[i] == '#' {
		fs.alternate = true
		i++
	}

	// [0] is shorthand for fill '0' with sign-aware padding
	if i < len(runes) && runes[i] == '0' {
		if fs.align == 0 {
			fs.align = alignPadSign
			fs.fill = '0'
		}
		i++
	}

	// [width]
	start := i
	for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
		i++
	}
	if i > start {
		w, err := strconv.Atoi(string(runes[start:i]))
		if err != nil {
			return fs, NewFormatSpecError(ErrMsgBadFormatSpec, spec)
		}
		fs.width = w
	}

	// [,|_]
	if i < len(runes) && (runes[i] == ',' || runes[i] == '_') {
		fs.sep = byte(runes[i])
		i++
	}

	// [.precision]
	if i < len(runes) && runes[i] == '.' {
		i++
		start = i
		for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
			i++
		}
		if i == start {
			return fs, NewFormatSpecError(ErrMsgBadFormatSpec, spec)
		}
		p, err := strconv.Atoi(string(runes[start:i]))
		if err != nil {
			return fs, NewFormatSpecError(ErrMsgBadFormatSpec, spec)
		}
		fs.precision = p
	}

	// [type]
	if i < len(runes) {
		verb := runes[i]
		if i+1 != len(runes) {
			return fs, NewFormatSpecError(ErrMsgBadFormatSpec, spec)
		}
		switch verb {
		case 's', 'd', 'b', 'o', 'x', 'X', 'c', 'f', 'F', 'e', 'E', 'g', 'G', '%':
			fs.verb = byte(verb)
		default:
			return fs, NewFormatSpecError(ErrMsgUnknownFormatVerb, spec)
		}
	}

	return fs, nil
}

// formatValue renders value according to spec. An empty spec stringifies the
// value unchanged.
func formatValue(value any, spec string) (string, error) {
	if spec == "" {
		return Stringify(value), nil
	}
	fs, err := parseFormatSpec(spec)
	if err != nil {
		return "", err
	}

	if i, neg, ok := asInt(value); ok {
		switch fs.verb {
		case 0, 'd', 'b', 'o', 'x', 'X', 'c':
			return formatInt(i, neg, fs, spec)
		case 'f', 'F', 'e', 'E', 'g', 'G', '%':
			f := float64(i)
			if neg {
				f = -f
			}
			return formatFloat(f, fs, spec)
		case 's':
			return "", NewFormatValueError(ErrMsgNotNumeric, spec, value)
		}
	}

	if f, ok := asFloat(value); ok {
		switch fs.verb {
		case 0, 'f', 'F', 'e', 'E', 'g', 'G', '%':
			return formatFloat(f, fs, spec)
		default:
			return "", NewFormatValueError(ErrMsgNotInteger, spec, value)
		}
	}

	// Everything else formats through its string form.
	switch fs.verb {
	case 0, 's':
		return formatString(Stringify(value), fs), nil
	default:
		if fs.verb == 'd' || fs.verb == 'b' || fs.verb == 'o' || fs.verb == 'x' || fs.verb == 'X' || fs.verb == 'c' {
			return "", NewFormatValueError(ErrMsgNotInteger, spec, value)
		}
		return "", NewFormatValueError(ErrMsgNotNumeric, spec, value)
	}
}

// asInt extracts an integer magnitude and sign from any integer kind.
func asInt(value any) (mag uint64, neg bool, ok bool) {
	switch v := value.(type) {
	case int:
		return intMag(int64(v))
	case int8:
		return intMag(int64(v))
	case int16:
		return intMag(int64(v))
	case int32:
		return intMag(int64(v))
	case int64:
		return intMag(v)
	case uint:
		return uint64(v), false, true
	case uint8:
		return uint64(v), false, true
	case uint16:
		return uint64(v), false, true
	case uint32:
		return uint64(v), false, true
	case uint64:
		return v, false, true
	case uintptr:
		return uint64(v), false, true
	}
	return 0, false, false
}

func intMag(v int64) (uint64, bool, bool) {
	if v < 0 {
		return uint64(-v), true, true
	}
	return uint64(v), false, true
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

func formatInt(mag uint64, neg bool, fs formatSpec, spec string) (string, error) {
	if fs.precision >= 0 {
		return "", NewFormatSpecError(ErrMsgPrecisionInt, spec)
	}

	if fs.verb == 'c' {
		if neg {
			return "", NewFormatSpecError(ErrMsgBadFormatSpec, spec)
		}
		return alignText(string(rune(mag)), fs, alignLeft), nil
	}

	base := 10
	prefix := ""
	switch fs.verb {
	case 'b':
		base = 2
		prefix = "0b"
	case 'o':
		base = 8
		prefix = "0o"
	case 'x':
		base = 16
		prefix = "0x"
	case 'X':
		base = 16
		prefix = "0X"
	}
	if !fs.alternate {
		prefix = ""
	}

	digits := strconv.FormatUint(mag, base)
	if fs.verb == 'X' {
		digits = strings.ToUpper(digits)
	}
	if fs.sep != 0 {
		if base != 10 {
			return "", NewFormatSpecError(ErrMsgBadFormatSpec, spec)
		}
		digits = groupDigits(digits, rune(fs.sep))
	}

	return alignNumber(signString(neg, fs.sign), prefix, digits, fs), nil
}

func formatFloat(f float64, fs formatSpec, spec string) (string, error) {
	prec := fs.precision
	var body string

	switch fs.verb {
	case 'f', 'F':
		if prec < 0 {
			prec = 6
		}
		body = strconv.FormatFloat(f, 'f', prec, 64)
	case 'e', 'E':
		if prec < 0 {
			prec = 6
		}
		body = strconv.FormatFloat(f, byte(fs.verb), prec, 64)
	case 'g', 'G':
		if prec < 0 {
			prec = 6
		}
		body = strconv.FormatFloat(f, byte(fs.verb), prec, 64)
	case '%':
		if prec < 0 {
			prec = 6
		}
		body = strconv.FormatFloat(f*100, 'f', prec, 64) + "%"
	default:
		if prec >= 0 {
			body = strconv.FormatFloat(f, 'g', prec, 64)
		} else {
			body = strconv.FormatFloat(f, 'g', -1, 64)
		}
	}

	neg := strings.HasPrefix(body, "-")
	body = strings.TrimPrefix(body, "-")
	if fs.sep != 0 {
		intPart, rest, found := strings.Cut(body, ".")
		if found {
			body = groupDigits(intPart, rune(fs.sep)) + "." + rest
		} else {
			body = groupDigits(intPart, rune(fs.sep))
		}
	}

	return alignNumber(signString(neg, fs.sign), "", body, fs), nil
}

func formatString(s string, fs formatSpec) string {
	if fs.precision >= 0 {
		runes := []rune(s)
		if len(runes) > fs.precision {
			s = string(runes[:fs.precision])
		}
	}
	return alignText(s, fs, alignLeft)
}

func signString(neg bool, sign byte) string {
	if neg {
		return "-"
	}
	switch sign {
	case '+':
		return "+"
	case ' ':
		return " "
	}
	return ""
}

// groupDigits inserts sep every three digits from the right. The input must
// contain decimal digits only.
func groupDigits(digits string, sep rune) string {
	if len(digits) <= 3 {
		return digits
	}
	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteRune(sep)
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// alignNumber assembles sign+prefix+digits and pads to width. The '=' align
// pads between the sign/prefix and the digits.
func alignNumber(sign, prefix, digits string, fs formatSpec) string {
	full := sign + prefix + digits
	pad := fs.width - utf8.RuneCountInString(full)
	if pad <= 0 {
		return full
	}
	align := fs.align
	if align == 0 {
		align = alignRight
	}
	if align == alignPadSign {
		return sign + prefix + strings.Repeat(string(fs.fill), pad) + digits
	}
	return padText(full, pad, align, fs.fill)
}

func alignText(s string, fs formatSpec, defaultAlign byte) string {
	pad := fs.width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	align := fs.align
	if align == 0 || align == alignPadSign {
		align = defaultAlign
	}
	return padText(s, pad, align, fs.fill)
}

func padText(s string, pad int, align byte, fill rune) string {
	switch align {
	case alignLeft:
		return s + strings.Repeat(string(fill), pad)
	case alignCenter:
		left := pad / 2
		return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), pad-left)
	default:
		return strings.Repeat(string(fill), pad) + s
	}
}
