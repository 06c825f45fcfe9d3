package html

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	tstring "github.com/itsatony/go-tstring"
)

// tpl builds a template from literals and interpolations.
func tpl(t *testing.T, args ...any) tstring.Template {
	t.Helper()
	tmpl, err := tstring.New(args...)
	require.NoError(t, err)
	return tmpl
}

// iv is shorthand for an interpolation.
func iv(value any, expr string) tstring.Interpolation {
	return tstring.NewInterpolation(value, expr)
}

func TestParse_StaticMarkup(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "simple element", source: "<p>Hello!</p>", want: "<p>Hello!</p>"},
		{name: "empty element", source: "<div></div>", want: "<div />"},
		{name: "self closing", source: "<br />", want: "<br />"},
		{name: "quoted attribute", source: `<div class="card">x</div>`, want: `<div class="card">x</div>`},
		{name: "single quoted attribute", source: `<div class='card'>x</div>`, want: `<div class="card">x</div>`},
		{name: "bare flag", source: "<input disabled />", want: "<input disabled />"},
		{name: "nested", source: "<ul><li>a</li><li>b</li></ul>", want: "<ul><li>a</li><li>b</li></ul>"},
		{name: "entity in text preserved", source: "<p>a &amp; b</p>", want: "<p>a &amp; b</p>"},
		{name: "bare ampersand escaped", source: "<p>a & b</p>", want: "<p>a &amp; b</p>"},
		{name: "entity in attribute preserved", source: `<p title="a &amp; b">x</p>`, want: `<p title="a &amp; b">x</p>`},
		{name: "spaces around equals", source: `<div id = "a">x</div>`, want: `<div id="a">x</div>`},
		{
			name: "surrounding whitespace dropped",
			source: `
				<ul>
					<li>one</li>
					<li>two</li>
				</ul>
			`,
			want: "<ul><li>one</li><li>two</li></ul>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el, err := Parse(tpl(t, tt.source))
			require.NoError(t, err)
			assert.Equal(t, tt.want, Render(el))
		})
	}
}

func TestParse_ContentInterpolation(t *testing.T) {
	el, err := Parse(tpl(t, "<p>Hello ", iv("World", "name"), "!</p>"))
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello World!</p>", Render(el))
}

func TestParse_ContentIsEscaped(t *testing.T) {
	evil := `<script>alert("evil")</script>`
	el, err := Parse(tpl(t, "<p>", iv(evil, "evil"), "</p>"))
	require.NoError(t, err)
	assert.Equal(t, `<p>&lt;script&gt;alert("evil")&lt;/script&gt;</p>`, Render(el))
}

func TestParse_ContentConversion(t *testing.T) {
	in := iv("hi", "word").WithConv(tstring.ConvRepr)
	el, err := Parse(tpl(t, "<p>", in, "</p>"))
	require.NoError(t, err)
	assert.Equal(t, `<p>"hi"</p>`, Render(el))
}

func TestParse_ContentElement(t *testing.T) {
	child := MustNew("em", NewAttributes(), TextContent("nested"))
	el, err := Parse(tpl(t, "<div>", iv(child, "child"), "</div>"))
	require.NoError(t, err)
	assert.Equal(t, "<div><em>nested</em></div>", Render(el))
}

func TestParse_ContentRawText(t *testing.T) {
	el, err := Parse(tpl(t, "<div>", iv(Raw("<b>bold</b>"), "markup"), "</div>"))
	require.NoError(t, err)
	assert.Equal(t, "<div><b>bold</b></div>", Render(el))
}

func TestParse_ContentTemplate(t *testing.T) {
	inner := tpl(t, "<em>", iv("deep", "word"), "</em>")
	el, err := Parse(tpl(t, "<div>before ", iv(inner, "inner"), " after</div>"))
	require.NoError(t, err)
	assert.Equal(t, "<div>before<em>deep</em>after</div>", Render(el))
}

func TestParse_ContentTemplateTextOnly(t *testing.T) {
	inner := tpl(t, "just ", iv("text", "word"))
	el, err := Parse(tpl(t, "<p>", iv(inner, "inner"), "</p>"))
	require.NoError(t, err)
	assert.Equal(t, "<p>just text</p>", Render(el))
}

func TestParse_AttributeValueInterpolation(t *testing.T) {
	el, err := Parse(tpl(t, "<img src=", iv("photo.jpg", "src"), " />"))
	require.NoError(t, err)
	assert.Equal(t, `<img src="photo.jpg" />`, Render(el))
}

func TestParse_AttributeValueEscaped(t *testing.T) {
	el, err := Parse(tpl(t, "<a title=", iv(`say "hi" & go`, "title"), ">x</a>"))
	require.NoError(t, err)
	assert.Equal(t, `<a title="say &quot;hi&quot; &amp; go">x</a>`, Render(el))
}

func TestParse_AttributeBoolValues(t *testing.T) {
	el, err := Parse(tpl(t, `<input type="text" required=`, iv(true, "req"), " />"))
	require.NoError(t, err)
	assert.Equal(t, `<input type="text" required />`, Render(el))

	el, err = Parse(tpl(t, `<input type="text" required=`, iv(false, "req"), " />"))
	require.NoError(t, err)
	assert.Equal(t, `<input type="text" />`, Render(el))
}

func TestParse_AttributesSpread(t *testing.T) {
	attrs := map[string]any{"type": "text", "required": true}
	el, err := Parse(tpl(t, "<input ", iv(attrs, "attrs"), " />"))
	require.NoError(t, err)
	// Map entries apply in sorted key order.
	assert.Equal(t, `<input required type="text" />`, Render(el))
}

func TestParse_AttributesSpreadStringMap(t *testing.T) {
	attrs := map[string]string{"id": "main", "class": "card"}
	el, err := Parse(tpl(t, "<div ", iv(attrs, "attrs"), ">x</div>"))
	require.NoError(t, err)
	assert.Equal(t, `<div class="card" id="main">x</div>`, Render(el))
}

func TestParse_AttributesSpreadAttributes(t *testing.T) {
	attrs := NewAttributes().Set("class", "card").SetFlag("hidden")
	el, err := Parse(tpl(t, "<div ", iv(attrs, "attrs"), ">x</div>"))
	require.NoError(t, err)
	assert.Equal(t, `<div class="card" hidden>x</div>`, Render(el))
}

func TestParse_SpreadMergesWithLiteralAttrs(t *testing.T) {
	attrs := map[string]string{"class": "override"}
	el, err := Parse(tpl(t, `<div class="original" id="x" `, iv(attrs, "attrs"), ">y</div>"))
	require.NoError(t, err)
	// Replacing keeps the original position.
	assert.Equal(t, `<div class="override" id="x">y</div>`, Render(el))
}

func TestParse_TagInterpolation(t *testing.T) {
	el, err := Parse(tpl(t, "<", iv("h1", "tag"), ">Hi</", iv("h1", "tag"), ">"))
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hi</h1>", Render(el))
}

func TestParse_Component(t *testing.T) {
	magic := func(attrs Attributes, children []Node) (Element, error) {
		return New("div", attrs.Set("data-magic", "yes"), children...)
	}

	el, err := Parse(tpl(t,
		"<", iv(magic, "magic"), ` id="m">Hello</`, iv(magic, "magic"), ">",
	))
	require.NoError(t, err)
	assert.Equal(t, `<div id="m" data-magic="yes">Hello</div>`, Render(el))
}

func TestParse_SelfClosingComponent(t *testing.T) {
	rule := func(attrs Attributes, children []Node) (Element, error) {
		return New("hr", attrs, children...)
	}

	el, err := Parse(tpl(t, "<", iv(rule, "rule"), " />"))
	require.NoError(t, err)
	assert.Equal(t, "<hr />", Render(el))
}

func TestParse_ComponentReceivesChildren(t *testing.T) {
	var got []Node
	capture := Component(func(attrs Attributes, children []Node) (Element, error) {
		got = children
		return New("section", attrs, children...)
	})

	el, err := Parse(tpl(t,
		"<", iv(capture, "capture"), "><p>a</p>text</", iv(capture, "capture"), ">",
	))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "<section><p>a</p>text</section>", Render(el))
}

func TestParse_ComponentReturningFragment(t *testing.T) {
	list := func(attrs Attributes, children []Node) (Element, error) {
		return Fragment(children...), nil
	}

	el, err := Parse(tpl(t,
		"<div><", iv(list, "list"), "><i>a</i><i>b</i></", iv(list, "list"), "></div>",
	))
	require.NoError(t, err)
	assert.Equal(t, "<div><i>a</i><i>b</i></div>", Render(el))
}

func TestParse_ComponentError(t *testing.T) {
	failing := func(attrs Attributes, children []Node) (Element, error) {
		return Element{}, errors.New("boom")
	}

	_, err := Parse(tpl(t, "<", iv(failing, "failing"), " />"))
	require.Error(t, err)
	assert.ErrorContains(t, err, ErrMsgComponentFailed)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []any
		wantMsg string
	}{
		{
			name:    "mismatched closing tag",
			args:    []any{"<p>x</div>"},
			wantMsg: ErrMsgMismatchedTag,
		},
		{
			name:    "unclosed tag",
			args:    []any{"<p>x"},
			wantMsg: ErrMsgUnterminatedTag,
		},
		{
			name:    "closing without opening",
			args:    []any{"</p>"},
			wantMsg: ErrMsgUnexpectedClose,
		},
		{
			name:    "empty template",
			args:    []any{"   "},
			wantMsg: ErrMsgNoRoot,
		},
		{
			name:    "text without root",
			args:    []any{"hello"},
			wantMsg: ErrMsgTextOutsideRoot,
		},
		{
			name:    "multiple roots",
			args:    []any{"<p>a</p><p>b</p>"},
			wantMsg: ErrMsgMultipleRoots,
		},
		{
			name:    "text after root",
			args:    []any{"<p>a</p>!"},
			wantMsg: ErrMsgTextOutsideRoot,
		},
		{
			name:    "unquoted attribute value",
			args:    []any{"<div class=card>x</div>"},
			wantMsg: ErrMsgUnexpectedChar,
		},
		{
			name:    "unterminated attribute value",
			args:    []any{`<div class="card>x</div>`},
			wantMsg: ErrMsgUnterminatedStr,
		},
		{
			name:    "bad content value",
			args:    []any{"<p>", iv(42, "n"), "</p>"},
			wantMsg: ErrMsgBadContentValue,
		},
		{
			name:    "bad tag value",
			args:    []any{"<", iv(42, "n"), " />"},
			wantMsg: ErrMsgBadTagValue,
		},
		{
			name:    "empty tag name value",
			args:    []any{"<", iv("", "n"), " />"},
			wantMsg: ErrMsgEmptyTagName,
		},
		{
			name:    "bad attribute value",
			args:    []any{"<div id=", iv(42, "n"), ">x</div>"},
			wantMsg: ErrMsgBadAttrValue,
		},
		{
			name:    "bad attrs spread value",
			args:    []any{"<div ", iv(42, "n"), ">x</div>"},
			wantMsg: ErrMsgBadAttrsValue,
		},
		{
			name:    "bad attrs spread entry",
			args:    []any{"<div ", iv(map[string]any{"id": 1}, "n"), ">x</div>"},
			wantMsg: ErrMsgBadAttrEntry,
		},
		{
			name: "mismatched component close",
			args: []any{
				"<",
				iv(func(a Attributes, c []Node) (Element, error) { return New("x", a, c...) }, "one"),
				">x</",
				iv("div", "tag"),
				">",
			},
			wantMsg: ErrMsgMismatchedTag,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tpl(t, tt.args...))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantMsg)
		})
	}
}

func TestParse_ErrorCarriesPosition(t *testing.T) {
	_, err := Parse(tpl(t, "<p>\n  <div>x</span>\n</p>"))
	require.Error(t, err)

	var cerr *cuserr.CustomError
	require.ErrorAs(t, err, &cerr)
	line, ok := cerr.GetMetadata(MetaKeyLine)
	require.True(t, ok)
	assert.Equal(t, "2", line)
}

func TestParse_MaxDepth(t *testing.T) {
	inner := tpl(t, "<i>x</i>")
	middle := tpl(t, "<b>", iv(inner, "inner"), "</b>")
	outer := tpl(t, "<div>", iv(middle, "middle"), "</div>")

	p := NewParser(WithMaxDepth(1))
	_, err := p.Parse(outer)
	require.Error(t, err)
	assert.ErrorContains(t, err, ErrMsgMaxDepth)

	// Default depth handles the same nesting fine.
	el, err := Parse(outer)
	require.NoError(t, err)
	assert.Equal(t, "<div><b><i>x</i></b></div>", Render(el))
}

func TestParse_LoggerReceivesDiagnostics(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p := NewParser(WithLogger(zap.New(core)))

	_, err := p.Parse(tpl(t, "<p>x</p>"))
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage(LogMsgParseStart).Len())
	assert.Equal(t, 1, logs.FilterMessage(LogMsgParseDone).Len())
}

func TestParse_RenderRoundTrip(t *testing.T) {
	// Rendered output parses back to an equal tree.
	el, err := Parse(tpl(t,
		`<div class="outer"><p>one</p><input `, iv(map[string]any{"required": true}, "attrs"), " /></div>",
	))
	require.NoError(t, err)

	again, err := Parse(tpl(t, Render(el)))
	require.NoError(t, err)
	assert.True(t, el.Equal(again))
	assert.Equal(t, Render(el), Render(again))
}
