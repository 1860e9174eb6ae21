package gohan

import (
	"bytes"
	"fmt"
	"strconv"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// RenderHTML converts Markdown to HTML. It accepts any input and never fails.
// The output is not escaped: text is copied verbatim.
func RenderHTML(markdown string) string {
	return Render(Parse(Scan(markdown)))
}

// Render writes the HTML form of a document forest.
func Render(nodes []Node) string {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	for _, n := range nodes {
		renderBlock(buf, n)
	}
	out := buf.String()
	buf.Reset()
	bufferPool.Put(buf)
	return out
}

var headingTags = [maxHeadingLevel + 1][2]string{
	{},
	{"<h1>", "</h1>"},
	{"<h2>", "</h2>"},
	{"<h3>", "</h3>"},
	{"<h4>", "</h4>"},
	{"<h5>", "</h5>"},
	{"<h6>", "</h6>"},
}

func renderBlock(buf *bytes.Buffer, n Node) {
	switch n.Kind {
	case NodeHeader:
		if n.Level < 1 || n.Level > maxHeadingLevel {
			panic(internalError("header level " + strconv.Itoa(n.Level) + " out of range"))
		}
		buf.WriteString(headingTags[n.Level][0])
		renderInlines(buf, n.Children)
		buf.WriteString(headingTags[n.Level][1])
	case NodeParagraph:
		children := n.Children
		if last := len(children) - 1; last >= 0 && children[last].Kind == NodeLineBreak {
			children = children[:last]
		}
		buf.WriteString("<p>")
		renderInlines(buf, children)
		buf.WriteString("</p>")
	default:
		renderInline(buf, n)
	}
}

func renderInlines(buf *bytes.Buffer, nodes []Node) {
	for _, n := range nodes {
		renderInline(buf, n)
	}
}

func renderInline(buf *bytes.Buffer, n Node) {
	switch n.Kind {
	case NodeText, NodeDigit:
		buf.WriteString(n.Text)
	case NodeLineBreak:
		buf.WriteString("<br>")
	case NodeStrong:
		buf.WriteString("<strong>")
		renderInlines(buf, n.Children)
		buf.WriteString("</strong>")
	case NodeEmphasis:
		buf.WriteString("<em>")
		renderInlines(buf, n.Children)
		buf.WriteString("</em>")
	case NodeLink:
		buf.WriteString(`<a href="`)
		renderInlines(buf, n.URL)
		buf.WriteString(`">`)
		renderInlines(buf, n.Children)
		buf.WriteString("</a>")
	default:
		panic(internalError(fmt.Sprintf("%s node in inline position", n.Kind)))
	}
}
