package html

import (
	"reflect"
	"sort"

	"go.uber.org/zap"

	tstring "github.com/itsatony/go-tstring"
	"github.com/itsatony/go-tstring/internal"
)

// Parser turns templates into element trees. The markup grammar is a
// restricted HTML dialect: explicit closing tags (or />), quoted or
// interpolated attribute values, no comments, doctypes or CDATA. The
// meaning of an interpolation depends on where it sits in the markup:
//
//	<{Card} class={cls} {extra}>{body}</{Card}>
//	  tag      value      attrs  content
//
// A zero-value Parser is not usable; construct one with NewParser.
type Parser struct {
	logger   *zap.Logger
	maxDepth int
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for parse diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMaxDepth sets the maximum nesting depth for templates interpolated
// as content.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

// NewParser creates a Parser with the given options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		logger:   zap.NewNop(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses t with a default Parser.
func Parse(t tstring.Template) (Element, error) {
	return NewParser().Parse(t)
}

// MustParse parses t and panics on error.
func MustParse(t tstring.Template) Element {
	el, err := Parse(t)
	if err != nil {
		panic(err)
	}
	return el
}

// Parse parses the template into a single root element. Whitespace-only
// text between elements is dropped; all other text outside the root is an
// error, as is a template with zero or multiple roots.
func (p *Parser) Parse(t tstring.Template) (Element, error) {
	parts := t.Parts()
	p.logger.Debug(LogMsgParseStart, zap.Int(LogFieldParts, len(parts)))
	nodes, err := p.parseNodes(parts, 0)
	if err != nil {
		return Element{}, err
	}
	root, err := singleRoot(nodes)
	if err != nil {
		return Element{}, err
	}
	p.logger.Debug(LogMsgParseDone,
		zap.String(LogFieldTag, root.Tag()),
		zap.Int(LogFieldChildren, len(root.Children())))
	return root, nil
}

func singleRoot(nodes []Node) (Element, error) {
	if len(nodes) == 0 {
		return Element{}, NewParseError(ErrMsgNoRoot, internal.StartPosition(), nil)
	}
	if len(nodes) > 1 {
		return Element{}, NewParseError(ErrMsgMultipleRoots, internal.StartPosition(), nil)
	}
	root, ok := nodes[0].(Element)
	if !ok {
		return Element{}, NewParseError(ErrMsgTextOutsideRoot, internal.StartPosition(), nil)
	}
	return root, nil
}

// parseNodes runs the parse over one template's parts and returns the
// top-level nodes in order. Used both for the root template and for
// templates interpolated as content.
func (p *Parser) parseNodes(parts []tstring.Part, depth int) ([]Node, error) {
	if depth > p.maxDepth {
		return nil, NewParseError(ErrMsgMaxDepth, internal.StartPosition(), nil)
	}
	r := &run{
		parser: p,
		parts:  parts,
		depth:  depth,
		sc:     internal.NewScanner(literalAt(parts, 0), internal.StartPosition()),
	}
	r.stack = []*frame{{implicit: true, attrs: NewAttributes()}}
	if err := r.parse(); err != nil {
		return nil, err
	}
	top := r.stack[0]
	r.flushFrame(top)
	return top.children, nil
}

// frame is one element under construction: an open tag waiting for its
// closing tag. Text accumulates in a buffer and is flushed (trimmed) into
// children whenever a child element or the closing tag arrives.
type frame struct {
	tag       string
	component Component
	expr      string
	compKey   uintptr
	attrs     Attributes
	children  []Node
	text      []byte
	pos       internal.Position
	implicit  bool
}

func (f *frame) label() string {
	if f.component != nil {
		return f.expr
	}
	return f.tag
}

// run is the parse state: a cursor over the template's alternating
// literal/interpolation parts plus the open-frame stack. idx always points
// at a literal; sc scans it. Positions carry across segments, so errors
// report line and column in the template source.
type run struct {
	parser *Parser
	parts  []tstring.Part
	idx    int
	sc     *internal.Scanner
	stack  []*frame
	depth  int
}

func literalAt(parts []tstring.Part, idx int) string {
	if idx >= len(parts) {
		return ""
	}
	lit, _ := parts[idx].(tstring.Literal)
	return string(lit)
}

func (r *run) top() *frame {
	return r.stack[len(r.stack)-1]
}

func (r *run) atTemplateEnd() bool {
	return r.sc.AtEnd() && r.idx+1 >= len(r.parts)
}

// takeInterp consumes the interpolation following the current literal and
// positions the scanner at the start of the next literal.
func (r *run) takeInterp() (tstring.Interpolation, internal.Position, bool) {
	if !r.sc.AtEnd() || r.idx+1 >= len(r.parts) {
		return tstring.Interpolation{}, r.sc.Pos(), false
	}
	interp, ok := r.parts[r.idx+1].(tstring.Interpolation)
	if !ok {
		return tstring.Interpolation{}, r.sc.Pos(), false
	}
	pos := r.sc.Pos()
	r.idx += 2
	r.sc = internal.NewScanner(literalAt(r.parts, r.idx), pos)
	return interp, pos, true
}

func (r *run) parse() error {
	for {
		if r.sc.AtEnd() {
			if r.atTemplateEnd() {
				break
			}
			interp, pos, ok := r.takeInterp()
			if !ok {
				return NewParseError(ErrMsgUnexpectedEOF, r.sc.Pos(), nil)
			}
			if err := r.content(interp, pos); err != nil {
				return err
			}
			continue
		}
		if r.sc.Peek() == '<' {
			if err := r.parseTag(); err != nil {
				return err
			}
			continue
		}
		chunk := r.sc.ScanUntil('<')
		r.top().text = append(r.top().text, EscapeText(unescapeAttr(chunk))...)
	}
	if len(r.stack) > 1 {
		return NewParseError(ErrMsgUnterminatedTag, r.top().pos, nil)
	}
	return nil
}

// flushFrame moves the frame's buffered text into its children, dropping
// whitespace-only runs the way surrounding-markup indentation should be
// dropped.
func (r *run) flushFrame(f *frame) {
	if len(f.text) == 0 {
		return
	}
	trimmed := trimSpace(string(f.text))
	f.text = f.text[:0]
	if trimmed != "" {
		f.children = append(f.children, Text(trimmed))
	}
}

func trimSpace(s string) string {
	start := 0
	for start < len(s) && internal.IsWhitespace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && internal.IsWhitespace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func (r *run) appendChild(node Node) {
	f := r.top()
	r.flushFrame(f)
	f.children = append(f.children, node)
}

// content handles an interpolation at content position.
func (r *run) content(interp tstring.Interpolation, pos internal.Position) error {
	value := interp.Value()
	if interp.Conv() != tstring.ConvNone {
		value = tstring.Stringify(tstring.Convert(value, interp.Conv()))
	}
	switch v := value.(type) {
	case string:
		r.top().text = append(r.top().text, EscapeText(v)...)
		return nil
	case Text:
		r.top().text = append(r.top().text, string(v)...)
		return nil
	case Element:
		r.appendChild(v)
		return nil
	case tstring.Template:
		nodes, err := r.parser.parseNodes(v.Parts(), r.depth+1)
		if err != nil {
			return err
		}
		for _, n := range nodes {
			r.appendChild(n)
		}
		return nil
	default:
		return NewValueError(ErrMsgBadContentValue, interp.Expr(), value, pos)
	}
}

// parseTag handles everything from '<' through '>': opening tags, closing
// tags and self-closing tags.
func (r *run) parseTag() error {
	pos := r.sc.Pos()
	r.sc.Advance() // '<'
	if r.sc.Consume('/') {
		return r.parseClosing(pos)
	}
	f := &frame{attrs: NewAttributes(), pos: pos}
	if name, ok := r.sc.ScanName(); ok {
		f.tag = name
	} else if r.sc.AtEnd() {
		interp, ipos, ok := r.takeInterp()
		if !ok {
			return NewParseError(ErrMsgUnterminatedTag, pos, nil)
		}
		if err := bindTag(f, interp, ipos); err != nil {
			return err
		}
	} else {
		return NewParseError(ErrMsgInvalidTagName, r.sc.Pos(), nil)
	}
	r.flushFrame(r.top())
	return r.parseAttrs(f)
}

// bindTag resolves a tag-position interpolation: a tag name string or a
// component callable.
func bindTag(f *frame, interp tstring.Interpolation, pos internal.Position) error {
	f.expr = interp.Expr()
	switch v := interp.Value().(type) {
	case string:
		if v == "" {
			return NewParseError(ErrMsgEmptyTagName, pos, nil)
		}
		f.tag = v
		return nil
	case Component:
		f.component = v
		f.compKey = reflect.ValueOf(v).Pointer()
		return nil
	case func(Attributes, []Node) (Element, error):
		f.component = Component(v)
		f.compKey = reflect.ValueOf(v).Pointer()
		return nil
	default:
		return NewValueError(ErrMsgBadTagValue, interp.Expr(), interp.Value(), pos)
	}
}

// parseAttrs consumes attributes until '>' or '/>'.
func (r *run) parseAttrs(f *frame) error {
	for {
		r.sc.SkipWhitespace()
		if r.sc.AtEnd() {
			interp, pos, ok := r.takeInterp()
			if !ok {
				return NewParseError(ErrMsgUnterminatedTag, f.pos, nil)
			}
			if err := r.spreadAttrs(f, interp, pos); err != nil {
				return err
			}
			continue
		}
		switch {
		case r.sc.Consume('>'):
			r.stack = append(r.stack, f)
			return nil
		case r.sc.Peek() == '/':
			r.sc.Advance()
			if !r.sc.Consume('>') {
				return NewParseError(ErrMsgUnexpectedChar, r.sc.Pos(), nil)
			}
			return r.finalize(f)
		default:
			if err := r.parseAttr(f); err != nil {
				return err
			}
		}
	}
}

// parseAttr consumes one attribute: a bare flag, name="value" or
// name={interpolation}.
func (r *run) parseAttr(f *frame) error {
	name, ok := r.sc.ScanName()
	if !ok {
		return NewParseError(ErrMsgUnexpectedChar, r.sc.Pos(), nil)
	}
	r.sc.SkipWhitespace()
	if r.sc.AtEnd() || r.sc.Peek() != '=' {
		f.attrs = f.attrs.SetFlag(name)
		return nil
	}
	r.sc.Advance() // '='
	r.sc.SkipWhitespace()
	if r.sc.AtEnd() {
		interp, pos, ok := r.takeInterp()
		if !ok {
			return NewParseError(ErrMsgUnterminatedTag, f.pos, nil)
		}
		return setAttrValue(f, name, interp, pos)
	}
	if q := r.sc.Peek(); q == '"' || q == '\'' {
		value, ok := r.sc.ScanQuoted()
		if !ok {
			return NewParseError(ErrMsgUnterminatedStr, r.sc.Pos(), nil)
		}
		f.attrs = f.attrs.Set(name, unescapeAttr(value))
		return nil
	}
	return NewParseError(ErrMsgUnexpectedChar, r.sc.Pos(), nil)
}

// setAttrValue applies a value-position interpolation: strings become the
// attribute value, true becomes a bare flag, false omits the attribute.
func setAttrValue(f *frame, name string, interp tstring.Interpolation, pos internal.Position) error {
	switch v := interp.Value().(type) {
	case string:
		f.attrs = f.attrs.Set(name, v)
		return nil
	case bool:
		if v {
			f.attrs = f.attrs.SetFlag(name)
		}
		return nil
	default:
		return NewAttrValueError(name, interp.Expr(), interp.Value(), pos)
	}
}

// spreadAttrs applies an attrs-position interpolation: an Attributes value
// or a string-keyed map of strings and bools. Map entries are applied in
// sorted key order so parses are deterministic.
func (r *run) spreadAttrs(f *frame, interp tstring.Interpolation, pos internal.Position) error {
	switch v := interp.Value().(type) {
	case Attributes:
		f.attrs = f.attrs.Merge(v)
		return nil
	case map[string]string:
		for _, key := range sortedKeys(v) {
			f.attrs = f.attrs.Set(key, v[key])
		}
		return nil
	case map[string]any:
		for _, key := range sortedKeys(v) {
			switch entry := v[key].(type) {
			case string:
				f.attrs = f.attrs.Set(key, entry)
			case bool:
				if entry {
					f.attrs = f.attrs.SetFlag(key)
				}
			default:
				return NewAttrEntryError(key, interp.Expr(), entry, pos)
			}
		}
		return nil
	default:
		return NewValueError(ErrMsgBadAttrsValue, interp.Expr(), interp.Value(), pos)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// parseClosing handles '</' through '>', matching it against the innermost
// open frame.
func (r *run) parseClosing(pos internal.Position) error {
	if len(r.stack) < 2 {
		return NewParseError(ErrMsgUnexpectedClose, pos, nil)
	}
	f := r.top()
	if name, ok := r.sc.ScanName(); ok {
		if f.component != nil || name != f.tag {
			return NewMismatchedTagError(f.label(), name, pos)
		}
	} else if r.sc.AtEnd() {
		interp, ipos, ok := r.takeInterp()
		if !ok {
			return NewParseError(ErrMsgUnterminatedTag, pos, nil)
		}
		if !closes(f, interp) {
			return NewMismatchedTagError(f.label(), interp.Expr(), ipos)
		}
	} else {
		return NewParseError(ErrMsgInvalidTagName, r.sc.Pos(), nil)
	}
	r.sc.SkipWhitespace()
	if !r.sc.Consume('>') {
		return NewParseError(ErrMsgUnterminatedTag, pos, nil)
	}
	r.stack = r.stack[:len(r.stack)-1]
	return r.finalize(f)
}

// closes reports whether a closing-tag interpolation matches the open
// frame: the same tag name string, or the same callable (by code pointer,
// with the expression text as fallback for distinct wrappers).
func closes(f *frame, interp tstring.Interpolation) bool {
	switch v := interp.Value().(type) {
	case string:
		return f.component == nil && v == f.tag
	case Component:
		return matchesComponent(f, reflect.ValueOf(v).Pointer(), interp.Expr())
	case func(Attributes, []Node) (Element, error):
		return matchesComponent(f, reflect.ValueOf(v).Pointer(), interp.Expr())
	default:
		return false
	}
}

func matchesComponent(f *frame, key uintptr, expr string) bool {
	if f.component == nil {
		return false
	}
	if key != 0 && key == f.compKey {
		return true
	}
	return expr != "" && expr == f.expr
}

// finalize turns a completed frame into a node on its parent: plain frames
// become elements, component frames invoke their callable with the
// collected attributes and children.
func (r *run) finalize(f *frame) error {
	r.flushFrame(f)
	var el Element
	var err error
	if f.component != nil {
		el, err = f.component(f.attrs, f.children)
		if err != nil {
			return NewComponentError(f.expr, f.pos, err)
		}
	} else {
		el, err = New(f.tag, f.attrs, f.children...)
		if err != nil {
			return err
		}
	}
	r.appendChild(el)
	return nil
}
