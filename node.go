package gohan

import "fmt"

// NodeKind classifies a document node.
type NodeKind uint8

const (
	NodeText NodeKind = iota
	NodeDigit
	NodeLineBreak
	NodeStrong
	NodeEmphasis
	NodeLink
	NodeHeader
	NodeParagraph
)

var nodeKindNames = [...]string{
	NodeText:      "Text",
	NodeDigit:     "Digit",
	NodeLineBreak: "LineBreak",
	NodeStrong:    "Strong",
	NodeEmphasis:  "Emphasis",
	NodeLink:      "Link",
	NodeHeader:    "Header",
	NodeParagraph: "Paragraph",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return fmt.Sprintf("NodeKind(%d)", uint8(k))
}

// IsBlock reports whether nodes of kind k only appear at the top of a forest.
func (k NodeKind) IsBlock() bool {
	return k == NodeHeader || k == NodeParagraph
}

// Node is an element of the document tree.
//
// Level is set for headers, Text for text and digit nodes, URL for links.
// Children holds the inline content of every container kind.
type Node struct {
	Kind     NodeKind
	Level    int
	Text     string
	Children []Node
	URL      []Node
}

// HeaderNode returns a header of the given level.
func HeaderNode(level int, children ...Node) Node {
	if level < 1 || level > maxHeadingLevel {
		panic(internalError(fmt.Sprintf("header level %d out of range", level)))
	}
	return Node{Kind: NodeHeader, Level: level, Children: children}
}

// ParagraphNode returns a paragraph.
func ParagraphNode(children ...Node) Node {
	return Node{Kind: NodeParagraph, Children: children}
}

// LinkNode returns a link with separately parsed text and destination.
func LinkNode(text, url []Node) Node {
	return Node{Kind: NodeLink, Children: text, URL: url}
}

// StrongNode returns strong inline content.
func StrongNode(children ...Node) Node {
	return Node{Kind: NodeStrong, Children: children}
}

// EmphasisNode returns emphasized inline content.
func EmphasisNode(children ...Node) Node {
	return Node{Kind: NodeEmphasis, Children: children}
}

// TextNode returns literal text.
func TextNode(text string) Node {
	return Node{Kind: NodeText, Text: text}
}

// DigitNode returns a single literal digit.
func DigitNode(digit string) Node {
	return Node{Kind: NodeDigit, Text: digit}
}

// LineBreakNode returns a line break.
func LineBreakNode() Node {
	return Node{Kind: NodeLineBreak}
}

// internalError marks a broken parser or renderer invariant. It is only ever
// raised with panic.
type internalError string

func (e internalError) Error() string { return "gohan: internal error: " + string(e) }
