package gohan

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
)

const dumpIndent = 2

// DumpTokens writes one line per token: position, kind and quoted literal.
// Literals wider than width are truncated; width <= 0 disables truncation.
func DumpTokens(w io.Writer, toks []Token, width int) error {
	bw := bufio.NewWriter(w)
	for _, tok := range toks {
		fmt.Fprintf(bw, "%-7s %-12s", tok.Span, tok.Kind)
		if tok.Kind != KindEOF {
			bw.WriteByte(' ')
			bw.WriteString(fitLiteral(tok.Text, width))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// DumpTree writes an indented outline of a document forest.
func DumpTree(w io.Writer, nodes []Node, width int) error {
	var b strings.Builder
	for _, n := range nodes {
		dumpNode(&b, n, width)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func dumpNode(b *strings.Builder, n Node, width int) {
	switch n.Kind {
	case NodeText, NodeDigit:
		fmt.Fprintf(b, "%s %s\n", n.Kind, fitLiteral(n.Text, width))
	case NodeLineBreak:
		b.WriteString("LineBreak\n")
	case NodeHeader:
		fmt.Fprintf(b, "Header level=%d\n", n.Level)
		b.WriteString(dumpChildren(n.Children, width))
	case NodeLink:
		b.WriteString("Link\n")
		b.WriteString(indent.String("text\n"+dumpChildren(n.Children, width), dumpIndent))
		b.WriteString(indent.String("url\n"+dumpChildren(n.URL, width), dumpIndent))
	default:
		fmt.Fprintf(b, "%s\n", n.Kind)
		b.WriteString(dumpChildren(n.Children, width))
	}
}

func dumpChildren(nodes []Node, width int) string {
	if len(nodes) == 0 {
		return ""
	}
	var b strings.Builder
	for _, n := range nodes {
		dumpNode(&b, n, width)
	}
	return indent.String(b.String(), dumpIndent)
}

// fitLiteral quotes text and shortens it to at most width printable cells.
func fitLiteral(text string, width int) string {
	quoted := strconv.Quote(text)
	if width <= 0 || ansi.PrintableRuneWidth(quoted) <= width {
		return quoted
	}
	if width == 1 {
		return "…"
	}
	return truncate.StringWithTail(quoted, uint(width), "…")
}
