package gohan

import "unicode/utf8"

// Scan splits src into tokens. It never fails: the result always ends with a
// single EOF token positioned after the last codepoint.
func Scan(src string) []Token {
	s := scanner{src: src, line: 1, col: 1}
	s.toks = make([]Token, 0, len(src)/2+1)
	for s.pos < len(s.src) {
		s.next()
	}
	s.emit(KindEOF, s.pos, s.pos, s.span())
	return s.toks
}

type scanner struct {
	src  string
	pos  int
	line int
	col  int
	toks []Token
}

func (s *scanner) span() Span {
	return Span{Line: s.line, Column: s.col}
}

func (s *scanner) emit(kind Kind, start, end int, at Span) {
	s.toks = append(s.toks, Token{Kind: kind, Text: s.src[start:end], Offset: start, Span: at})
}

func (s *scanner) next() {
	start, at := s.pos, s.span()
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	if kind, ok := classify(r, size); ok {
		s.advance(r, size)
		s.emit(kind, start, s.pos, at)
		return
	}
	for s.pos < len(s.src) {
		r, size = utf8.DecodeRuneInString(s.src[s.pos:])
		if _, ok := classify(r, size); ok {
			break
		}
		s.advance(r, size)
	}
	s.emit(KindText, start, s.pos, at)
}

func (s *scanner) advance(r rune, size int) {
	s.pos += size
	if r == '\n' {
		s.line++
		s.col = 1
		return
	}
	s.col++
}

// classify returns the kind of a single-codepoint token. Invalid bytes decode
// as RuneError with size 1 and belong to text runs.
func classify(r rune, size int) (Kind, bool) {
	if r == utf8.RuneError && size <= 1 {
		return KindText, false
	}
	if r >= '0' && r <= '9' {
		return KindDigit, true
	}
	kind, ok := symbolKinds[r]
	return kind, ok
}
