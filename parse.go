package gohan

import "fmt"

const maxHeadingLevel = 6

// Parse builds the document forest for a token sequence produced by Scan.
// Every token sequence yields a forest; unmatched delimiters degrade to text.
func Parse(toks []Token) []Node {
	p := newParser(toks)
	var nodes []Node
	for !p.atEnd() {
		start := p.pos
		if n, ok := p.block(); ok {
			nodes = append(nodes, n)
			continue
		}
		if p.pos == start && !p.atEnd() {
			panic(internalError(fmt.Sprintf("no progress at %s", p.peek())))
		}
	}
	return nodes
}

// parser is a recursive-descent cursor over a token slice. A nested parser
// works on the text, destination or body of an inline construct and never
// produces block nodes. Nested parsers share the marker index of the root
// token sequence; base is the root index of toks[0].
type parser struct {
	toks    []Token
	pos     int
	nested  bool
	base    int
	markers *markerCache
}

// markerCache builds the marker index on the first "[" or "*".
type markerCache struct {
	root []Token
	ix   *markerIndex
}

func (c *markerCache) index() *markerIndex {
	if c.ix == nil {
		c.ix = newMarkerIndex(c.root)
	}
	return c.ix
}

func newParser(toks []Token) *parser {
	return &parser{toks: toks, markers: &markerCache{root: toks}}
}

func (p *parser) subParser(r Range) *parser {
	return &parser{
		toks:    p.toks[r.Start:r.End],
		nested:  true,
		base:    p.base + r.Start,
		markers: p.markers,
	}
}

func (p *parser) block() (Node, bool) {
	p.skipNewlines()
	if tok := p.peek(); !p.nested && tok.Is(KindHash) && tok.Span.Column == 1 {
		if n, ok := p.maybeHeading(); ok {
			return n, true
		}
	}
	return p.maybeParagraph()
}

func (p *parser) maybeHeading() (Node, bool) {
	level := 0
	for p.match(KindHash) {
		level++
	}
	if level >= 1 && level <= maxHeadingLevel && p.match(KindSpace) {
		return HeaderNode(level, p.inlines()...), true
	}
	// Put the hash run back so the paragraph path reads it as text.
	p.rewind(p.pos - level)
	return Node{}, false
}

func (p *parser) maybeParagraph() (Node, bool) {
	p.skipNewlines()
	children := p.inlines()
	if len(children) == 0 {
		return Node{}, false
	}
	return ParagraphNode(children...), true
}

func (p *parser) inlines() []Node {
	var nodes []Node
	for {
		n, ok := p.inline()
		if !ok {
			return nodes
		}
		nodes = append(nodes, n)
	}
}

func (p *parser) inline() (Node, bool) {
	tok := p.peek()
	switch tok.Kind {
	case KindEOF:
		return Node{}, false
	case KindNewline:
		if p.at(p.pos+1).Kind == KindNewline {
			return Node{}, false
		}
		p.advance()
		return LineBreakNode(), true
	case KindStar:
		return p.maybeStrong(), true
	case KindLeftBracket:
		return p.maybeLink(), true
	case KindDigit:
		p.advance()
		return DigitNode(tok.Text), true
	case KindHash:
		if !p.nested && p.headingStartsAt(p.pos) {
			return Node{}, false
		}
	}
	p.advance()
	return TextNode(tok.Text), true
}

func (p *parser) maybeLink() Node {
	m, ok := p.markers.index().link(p.base+p.pos, p.base, p.base+len(p.toks))
	if !ok {
		return TextNode(p.consume(KindLeftBracket).Text)
	}
	p.consume(KindLeftBracket)
	text := p.parseRange(m.Text)
	url := p.parseRange(m.URL)
	p.rewind(m.End)
	return LinkNode(text, url)
}

func (p *parser) maybeStrong() Node {
	m, ok := p.markers.index().strong(p.base+p.pos, p.base, p.base+len(p.toks))
	if !ok {
		return TextNode(p.consume(KindStar).Text)
	}
	p.consume(KindStar)
	p.consume(KindStar)
	children := p.parseRange(m.Inner)
	p.rewind(m.End)
	return StrongNode(children...)
}

// parseRange parses toks[r.Start:r.End] as inline content on its own cursor.
func (p *parser) parseRange(r Range) []Node {
	if r.Empty() {
		return nil
	}
	sub := p.subParser(r)
	nodes := sub.inlines()
	if !sub.atEnd() {
		panic(internalError(fmt.Sprintf("inline range %d..%d stopped at %s", r.Start, r.End, sub.peek())))
	}
	return nodes
}

// headingStartsAt reports whether a 1..6 hash run followed by a space begins
// at column 1 on index i.
func (p *parser) headingStartsAt(i int) bool {
	tok := p.at(i)
	if tok.Kind != KindHash || tok.Span.Column != 1 {
		return false
	}
	n := 0
	for p.at(i+n).Kind == KindHash {
		n++
	}
	return n <= maxHeadingLevel && p.at(i+n).Kind == KindSpace
}

func (p *parser) skipNewlines() {
	for p.match(KindNewline) {
	}
}

func (p *parser) at(i int) Token {
	if i < 0 || i >= len(p.toks) {
		return Token{Kind: KindEOF}
	}
	return p.toks[i]
}

func (p *parser) peek() Token {
	return p.at(p.pos)
}

func (p *parser) atEnd() bool {
	return p.peek().Kind == KindEOF
}

func (p *parser) advance() Token {
	tok := p.peek()
	if tok.Kind != KindEOF {
		p.pos++
	}
	return tok
}

func (p *parser) match(kind Kind) bool {
	if p.atEnd() || p.peek().Kind != kind {
		return false
	}
	p.pos++
	return true
}

// consume advances over a token the caller has already inspected.
func (p *parser) consume(kind Kind) Token {
	tok := p.peek()
	if tok.Kind != kind {
		panic(internalError(fmt.Sprintf("expected %s, found %s", kind, tok)))
	}
	p.pos++
	return tok
}

func (p *parser) rewind(i int) {
	if i < 0 || i > len(p.toks) {
		panic(internalError(fmt.Sprintf("rewind to %d outside 0..%d", i, len(p.toks))))
	}
	p.pos = i
}
