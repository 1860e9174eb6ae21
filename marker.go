package gohan

// Range is a half-open interval of token indices.
type Range struct {
	Start int
	End   int
}

// Len returns the number of tokens in r.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether r covers no tokens.
func (r Range) Empty() bool { return r.End <= r.Start }

// LinkMarker records the boundaries of a "[text](url)" span. End is the index
// just past the closing parenthesis.
type LinkMarker struct {
	Text Range
	URL  Range
	End  int
	ok   bool
}

// IsLink reports whether every boundary of the link was found.
func (m LinkMarker) IsLink() bool { return m.ok }

// InlineMarker records the body of a "**body**" span. End is the index just
// past the closing delimiter pair.
type InlineMarker struct {
	Inner Range
	End   int
	ok    bool
}

// IsClosed reports whether the opening delimiter found a closing pair.
func (m InlineMarker) IsClosed() bool { return m.ok }

// ProbeLink scans forward from the "[" at toks[start] looking for the
// earliest "](" followed by a ")". It reports false when the first "]" is not
// directly followed by "(", or when a blank line or the end of input comes
// first.
func ProbeLink(toks []Token, start int) (LinkMarker, bool) {
	if kindAt(toks, start) != KindLeftBracket {
		return LinkMarker{}, false
	}
	m := LinkMarker{Text: Range{Start: start + 1}}
	i := start + 1
	for ; ; i++ {
		if stopsProbe(toks, i) {
			return LinkMarker{}, false
		}
		if kindAt(toks, i) == KindRightBracket {
			break
		}
	}
	if kindAt(toks, i+1) != KindLeftParen {
		return LinkMarker{}, false
	}
	m.Text.End = i
	m.URL.Start = i + 2
	for i = i + 2; ; i++ {
		if stopsProbe(toks, i) {
			return LinkMarker{}, false
		}
		if kindAt(toks, i) == KindRightParen {
			break
		}
	}
	m.URL.End = i
	m.End = i + 1
	m.ok = true
	return m, true
}

// ProbeStrong scans forward from the "**" at toks[start] for the earliest
// closing "**". The opener must not be followed by whitespace and the closer
// must not be preceded by it; the body must hold at least one token.
func ProbeStrong(toks []Token, start int) (InlineMarker, bool) {
	if !isDoubleStar(toks, start) || isBlankKind(kindAt(toks, start+2)) {
		return InlineMarker{}, false
	}
	body := start + 2
	for i := body; ; i++ {
		if stopsProbe(toks, i) {
			return InlineMarker{}, false
		}
		if i > body && isDoubleStar(toks, i) && !isBlankKind(kindAt(toks, i-1)) {
			return InlineMarker{Inner: Range{Start: body, End: i}, End: i + 2, ok: true}, true
		}
	}
}

func isDoubleStar(toks []Token, i int) bool {
	return kindAt(toks, i) == KindStar && kindAt(toks, i+1) == KindStar
}

func isBlankKind(k Kind) bool {
	return k == KindSpace || k == KindNewline || k == KindEOF
}

// stopsProbe reports a paragraph boundary or the end of input at i.
func stopsProbe(toks []Token, i int) bool {
	k := kindAt(toks, i)
	if k == KindEOF {
		return true
	}
	return k == KindNewline && kindAt(toks, i+1) == KindNewline
}

// kindAt treats every index past the slice as EOF so look-aheads over sub-ranges
// stay inside them.
func kindAt(toks []Token, i int) Kind {
	if i < 0 || i >= len(toks) {
		return KindEOF
	}
	return toks[i].Kind
}

// markerIndex answers ProbeLink and ProbeStrong in constant time for one token
// sequence. Each table holds, per index, the nearest closing position at or
// after it with no paragraph boundary in between, or -1.
type markerIndex struct {
	toks    []Token
	bracket []int
	paren   []int
	closer  []int
}

func newMarkerIndex(toks []Token) *markerIndex {
	ix := &markerIndex{
		toks:    toks,
		bracket: make([]int, len(toks)),
		paren:   make([]int, len(toks)),
		closer:  make([]int, len(toks)),
	}
	bracket, paren, closer := -1, -1, -1
	for i := len(toks) - 1; i >= 0; i-- {
		if stopsProbe(toks, i) {
			bracket, paren, closer = -1, -1, -1
		}
		switch toks[i].Kind {
		case KindRightBracket:
			bracket = i
		case KindRightParen:
			paren = i
		case KindStar:
			if isDoubleStar(toks, i) && !isBlankKind(kindAt(toks, i-1)) {
				closer = i
			}
		}
		ix.bracket[i], ix.paren[i], ix.closer[i] = bracket, paren, closer
	}
	return ix
}

// next looks up table[i], ignoring positions at or past limit.
func (ix *markerIndex) next(table []int, i, limit int) int {
	if i < 0 || i >= limit {
		return -1
	}
	if n := table[i]; n >= 0 && n < limit {
		return n
	}
	return -1
}

// link returns ProbeLink(toks[base:limit], start-base) for an absolute start.
// toks[limit], when present, must not be a newline.
func (ix *markerIndex) link(start, base, limit int) (LinkMarker, bool) {
	if start < base || start >= limit || ix.toks[start].Kind != KindLeftBracket {
		return LinkMarker{}, false
	}
	rb := ix.next(ix.bracket, start+1, limit)
	if rb < 0 || rb+1 >= limit || ix.toks[rb+1].Kind != KindLeftParen {
		return LinkMarker{}, false
	}
	rp := ix.next(ix.paren, rb+2, limit)
	if rp < 0 {
		return LinkMarker{}, false
	}
	return LinkMarker{
		Text: Range{Start: start + 1 - base, End: rb - base},
		URL:  Range{Start: rb + 2 - base, End: rp - base},
		End:  rp + 1 - base,
		ok:   true,
	}, true
}

// strong returns ProbeStrong(toks[base:limit], start-base) for an absolute
// start, under the same condition as link.
func (ix *markerIndex) strong(start, base, limit int) (InlineMarker, bool) {
	if start < base || start+2 >= limit || !isDoubleStar(ix.toks, start) || isBlankKind(ix.toks[start+2].Kind) {
		return InlineMarker{}, false
	}
	body := start + 2
	c := ix.next(ix.closer, body+1, limit)
	if c < 0 || c+1 >= limit {
		return InlineMarker{}, false
	}
	return InlineMarker{Inner: Range{Start: body - base, End: c - base}, End: c + 2 - base, ok: true}, true
}
