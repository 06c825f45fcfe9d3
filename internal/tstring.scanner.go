package internal

import "fmt"

// Position represents a location in the concatenated literal text of a
// template.
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// StartPosition returns the position of the first byte of a source.
func StartPosition() Position {
	return Position{Offset: 0, Line: 1, Column: 1}
}

// Scanner walks one literal text segment byte by byte, tracking position.
// A parser that interleaves literal segments with interpolations creates one
// scanner per segment, carrying the position forward across segments.
type Scanner struct {
	text string
	pos  int
	at   Position
}

// NewScanner creates a scanner over text starting at the given position.
func NewScanner(text string, start Position) *Scanner {
	return &Scanner{text: text, at: start}
}

// AtEnd reports whether the segment is exhausted.
func (s *Scanner) AtEnd() bool {
	return s.pos >= len(s.text)
}

// Pos returns the current position.
func (s *Scanner) Pos() Position {
	return s.at
}

// Peek returns the current byte without consuming it, or 0 at end.
func (s *Scanner) Peek() byte {
	if s.AtEnd() {
		return 0
	}
	return s.text[s.pos]
}

// PeekAhead returns the byte n positions ahead, or 0 past the end.
func (s *Scanner) PeekAhead(n int) byte {
	if s.pos+n >= len(s.text) {
		return 0
	}
	return s.text[s.pos+n]
}

// Advance consumes and returns the current byte, updating the position.
func (s *Scanner) Advance() byte {
	ch := s.text[s.pos]
	s.pos++
	s.at.Offset++
	if ch == '\n' {
		s.at.Line++
		s.at.Column = 1
	} else {
		s.at.Column++
	}
	return ch
}

// Consume advances past the expected byte and reports whether it was there.
func (s *Scanner) Consume(expected byte) bool {
	if s.AtEnd() || s.Peek() != expected {
		return false
	}
	s.Advance()
	return true
}

// SkipWhitespace consumes spaces, tabs, newlines and carriage returns. It
// never crosses the segment boundary.
func (s *Scanner) SkipWhitespace() {
	for !s.AtEnd() && IsWhitespace(s.Peek()) {
		s.Advance()
	}
}

// ScanName consumes a name ([A-Za-z_][A-Za-z0-9_.-]*). It returns false
// when the current byte cannot start a name.
func (s *Scanner) ScanName() (string, bool) {
	if s.AtEnd() || !IsNameStart(s.Peek()) {
		return "", false
	}
	start := s.pos
	s.Advance()
	for !s.AtEnd() && IsNameChar(s.Peek()) {
		s.Advance()
	}
	return s.text[start:s.pos], true
}

// ScanQuoted consumes a quoted value. The current byte must be the opening
// quote; the returned value excludes the quotes. ok is false when the
// closing quote is missing in this segment.
func (s *Scanner) ScanQuoted() (value string, ok bool) {
	quote := s.Advance()
	start := s.pos
	for !s.AtEnd() {
		if s.Peek() == quote {
			value = s.text[start:s.pos]
			s.Advance()
			return value, true
		}
		s.Advance()
	}
	return "", false
}

// ScanUntil consumes text up to (not including) the stop byte or the end of
// the segment, returning what it consumed.
func (s *Scanner) ScanUntil(stop byte) string {
	start := s.pos
	for !s.AtEnd() && s.Peek() != stop {
		s.Advance()
	}
	return s.text[start:s.pos]
}

// IsWhitespace reports whether b is an HTML whitespace byte.
func IsWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// IsNameStart reports whether b can start a tag or attribute name.
func IsNameStart(b byte) bool {
	return isLetter(b) || b == '_'
}

// IsNameChar reports whether b can continue a tag or attribute name.
func IsNameChar(b byte) bool {
	return isLetter(b) || isDigit(b) || b == '_' || b == '-' || b == '.' || b == ':'
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
