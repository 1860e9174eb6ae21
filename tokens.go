package gohan

import "fmt"

// Kind classifies a lexical token.
type Kind uint8

const (
	KindEOF Kind = iota
	KindHash
	KindStar
	KindBang
	KindUnderscore
	KindDash
	KindDot
	KindBackslash
	KindLeftParen
	KindRightParen
	KindLeftBracket
	KindRightBracket
	KindSpace
	KindTab
	KindNewline
	// KindDigit holds exactly one ASCII digit.
	KindDigit
	// KindText holds a maximal run without symbols or digits.
	KindText
)

var kindNames = [...]string{
	KindEOF:          "EOF",
	KindHash:         "Hash",
	KindStar:         "Star",
	KindBang:         "Bang",
	KindUnderscore:   "Underscore",
	KindDash:         "Dash",
	KindDot:          "Dot",
	KindBackslash:    "Backslash",
	KindLeftParen:    "LeftParen",
	KindRightParen:   "RightParen",
	KindLeftBracket:  "LeftBracket",
	KindRightBracket: "RightBracket",
	KindSpace:        "Space",
	KindTab:          "Tab",
	KindNewline:      "Newline",
	KindDigit:        "Digit",
	KindText:         "Text",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// symbolKinds maps every structural rune to its token kind.
var symbolKinds = map[rune]Kind{
	'#':  KindHash,
	'*':  KindStar,
	'!':  KindBang,
	'_':  KindUnderscore,
	'-':  KindDash,
	'.':  KindDot,
	'\\': KindBackslash,
	'(':  KindLeftParen,
	')':  KindRightParen,
	'[':  KindLeftBracket,
	']':  KindRightBracket,
	' ':  KindSpace,
	'\t': KindTab,
	'\n': KindNewline,
}

// Span is a 1-based source position.
type Span struct {
	Line   int
	Column int
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// Before reports whether s precedes o in (line, column) order.
func (s Span) Before(o Span) bool {
	if s.Line != o.Line {
		return s.Line < o.Line
	}
	return s.Column < o.Column
}

// Token is a lexical symbol. Text is a substring of the scanned input.
type Token struct {
	Kind   Kind
	Text   string
	Offset int
	Span   Span
}

// Is reports whether the token has one of the given kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

func (t Token) String() string {
	switch t.Kind {
	case KindEOF:
		return fmt.Sprintf("%s@%s", t.Kind, t.Span)
	case KindNewline:
		return fmt.Sprintf("%s(\\n)@%s", t.Kind, t.Span)
	case KindTab:
		return fmt.Sprintf("%s(\\t)@%s", t.Kind, t.Span)
	}
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Text, t.Span)
}
