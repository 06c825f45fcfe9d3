package tstring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Basic(t *testing.T) {
	tmpl := MustNew("Hello ", NewInterpolation("World", "name"), "!")
	out, err := Format(tmpl)
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", out)
}

func TestFormat_Conversions(t *testing.T) {
	tests := []struct {
		name string
		in   Interpolation
		want string
	}{
		{
			name: "str conversion passes strings through",
			in:   NewInterpolation("café", "s").WithConv(ConvStr),
			want: "café",
		},
		{
			name: "repr quotes strings",
			in:   NewInterpolation("it's", "s").WithConv(ConvRepr),
			want: `"it's"`,
		},
		{
			name: "ascii escapes non-ascii",
			in:   NewInterpolation("café", "s").WithConv(ConvASCII),
			want: `"café"`,
		},
		{
			name: "str conversion stringifies non-strings",
			in:   NewInterpolation(42, "n").WithConv(ConvStr),
			want: "42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Format(MustNew(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFormat_Specs(t *testing.T) {
	tests := []struct {
		name  string
		value any
		spec  string
		want  string
	}{
		{name: "right align default for ints", value: 42, spec: "5", want: "   42"},
		{name: "explicit right align", value: 42, spec: ">5d", want: "   42"},
		{name: "left align", value: 42, spec: "<5d", want: "42   "},
		{name: "center align", value: 42, spec: "^6d", want: "  42  "},
		{name: "custom fill", value: 42, spec: "*>5", want: "***42"},
		{name: "zero pad", value: 42, spec: "05d", want: "00042"},
		{name: "zero pad negative", value: -42, spec: "05d", want: "-0042"},
		{name: "plus sign", value: 42, spec: "+d", want: "+42"},
		{name: "space sign", value: 42, spec: " d", want: " 42"},
		{name: "minus sign is default", value: 42, spec: "-d", want: "42"},
		{name: "pad between sign and digits", value: -42, spec: "=6d", want: "-   42"},
		{name: "binary", value: 5, spec: "b", want: "101"},
		{name: "binary with prefix", value: 5, spec: "#b", want: "0b101"},
		{name: "octal with prefix", value: 8, spec: "#o", want: "0o10"},
		{name: "hex lower", value: 255, spec: "x", want: "ff"},
		{name: "hex upper with prefix", value: 255, spec: "#X", want: "0XFF"},
		{name: "char", value: 65, spec: "c", want: "A"},
		{name: "thousands comma", value: 1234567, spec: ",", want: "1,234,567"},
		{name: "thousands underscore", value: 1234567, spec: "_d", want: "1_234_567"},
		{name: "fixed default precision", value: 3.5, spec: "f", want: "3.500000"},
		{name: "fixed precision", value: 3.14159, spec: ".2f", want: "3.14"},
		{name: "scientific", value: 1234.5, spec: ".2e", want: "1.23e+03"},
		{name: "percent", value: 0.25, spec: ".0%", want: "25%"},
		{name: "float width and comma", value: 1234.5, spec: "10,.1f", want: "   1,234.5"},
		{name: "int formatted as float", value: 2, spec: ".1f", want: "2.0"},
		{name: "string width left default", value: "hi", spec: "5", want: "hi   "},
		{name: "string center", value: "hi", spec: "^6", want: "  hi  "},
		{name: "string precision truncates", value: "truncate", spec: ".4", want: "trun"},
		{name: "string precision on runes", value: "héllo", spec: ".2", want: "hé"},
		{name: "empty spec stringifies", value: 3.14, spec: "", want: "3.14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := MustNew(NewInterpolation(tt.value, "v").WithFormatSpec(tt.spec))
			out, err := Format(tmpl)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFormat_SpecErrors(t *testing.T) {
	tests := []struct {
		name  string
		value any
		spec  string
	}{
		{name: "unknown verb", value: 42, spec: "q"},
		{name: "precision on int", value: 42, spec: ".2d"},
		{name: "string with int verb", value: "hi", spec: "d"},
		{name: "string with float verb", value: "hi", spec: ".2f"},
		{name: "float with int verb", value: 3.5, spec: "d"},
		{name: "separator on hex", value: 255, spec: ",x"},
		{name: "trailing garbage", value: 42, spec: "5dd"},
		{name: "dot without precision", value: 3.5, spec: ".f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := MustNew(NewInterpolation(tt.value, "v").WithFormatSpec(tt.spec))
			_, err := Format(tmpl)
			assert.Error(t, err)
		})
	}
}

type stamp struct{}

func (stamp) String() string { return "STAMP" }

func TestStringify(t *testing.T) {
	assert.Equal(t, "plain", Stringify("plain"))
	assert.Equal(t, "STAMP", Stringify(stamp{}))
	assert.Equal(t, "boom", Stringify(errors.New("boom")))
	assert.Equal(t, "true", Stringify(true))
	assert.Equal(t, "[1 2]", Stringify([]int{1, 2}))
}

func TestConvert_UnknownConvPassesThrough(t *testing.T) {
	assert.Equal(t, 7, Convert(7, ConvNone))
	assert.Equal(t, 7, Convert(7, Conv("z")))
}
