package gohan

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseTree(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		want []Node
	}{
		{
			name: "empty",
			src:  "",
			want: nil,
		},
		{
			name: "only newlines",
			src:  "\n\n\n",
			want: nil,
		},
		{
			name: "heading",
			src:  "## Hi 2",
			want: []Node{HeaderNode(2, TextNode("Hi"), TextNode(" "), DigitNode("2"))},
		},
		{
			name: "empty heading",
			src:  "# ",
			want: []Node{HeaderNode(1)},
		},
		{
			name: "heading then paragraph",
			src:  "# A\n\nb",
			want: []Node{HeaderNode(1, TextNode("A")), ParagraphNode(TextNode("b"))},
		},
		{
			name: "heading continues on next line",
			src:  "# A\nb",
			want: []Node{HeaderNode(1, TextNode("A"), LineBreakNode(), TextNode("b"))},
		},
		{
			name: "seven hashes",
			src:  "####### x",
			want: []Node{ParagraphNode(
				TextNode("#"), TextNode("#"), TextNode("#"), TextNode("#"),
				TextNode("#"), TextNode("#"), TextNode("#"), TextNode(" "), TextNode("x"),
			)},
		},
		{
			name: "hash without space",
			src:  "#x",
			want: []Node{ParagraphNode(TextNode("#"), TextNode("x"))},
		},
		{
			name: "mid-line hash",
			src:  "a # b",
			want: []Node{ParagraphNode(TextNode("a"), TextNode(" "), TextNode("#"), TextNode(" "), TextNode("b"))},
		},
		{
			name: "indented hash",
			src:  " # b",
			want: []Node{ParagraphNode(TextNode(" "), TextNode("#"), TextNode(" "), TextNode("b"))},
		},
		{
			name: "heading ends paragraph",
			src:  "a\n# b",
			want: []Node{ParagraphNode(TextNode("a"), LineBreakNode()), HeaderNode(1, TextNode("b"))},
		},
		{
			name: "literal hash line stays in paragraph",
			src:  "a\n#b",
			want: []Node{ParagraphNode(TextNode("a"), LineBreakNode(), TextNode("#"), TextNode("b"))},
		},
		{
			name: "paragraphs",
			src:  "a\n\n\nb\n",
			want: []Node{ParagraphNode(TextNode("a")), ParagraphNode(TextNode("b"), LineBreakNode())},
		},
		{
			name: "link",
			src:  "[a](b)",
			want: []Node{ParagraphNode(LinkNode([]Node{TextNode("a")}, []Node{TextNode("b")}))},
		},
		{
			name: "empty link text",
			src:  "[](u)",
			want: []Node{ParagraphNode(LinkNode(nil, []Node{TextNode("u")}))},
		},
		{
			name: "incomplete link",
			src:  "[oops",
			want: []Node{ParagraphNode(TextNode("["), TextNode("oops"))},
		},
		{
			name: "link text cannot start a heading",
			src:  "[x\n# y](z)",
			want: []Node{ParagraphNode(LinkNode(
				[]Node{TextNode("x"), LineBreakNode(), TextNode("#"), TextNode(" "), TextNode("y")},
				[]Node{TextNode("z")},
			))},
		},
		{
			name: "strong",
			src:  "**x**",
			want: []Node{ParagraphNode(StrongNode(TextNode("x")))},
		},
		{
			name: "single stars",
			src:  "*x*",
			want: []Node{ParagraphNode(TextNode("*"), TextNode("x"), TextNode("*"))},
		},
		{
			name: "strong around link",
			src:  "**[a](b)**",
			want: []Node{ParagraphNode(StrongNode(LinkNode([]Node{TextNode("a")}, []Node{TextNode("b")})))},
		},
		{
			name: "strong inside link",
			src:  "[**a**](b)",
			want: []Node{ParagraphNode(LinkNode([]Node{StrongNode(TextNode("a"))}, []Node{TextNode("b")}))},
		},
		{
			name: "nested bracket degrades inside text",
			src:  "[a [b](c)",
			want: []Node{ParagraphNode(LinkNode(
				[]Node{TextNode("a"), TextNode(" "), TextNode("["), TextNode("b")},
				[]Node{TextNode("c")},
			))},
		},
		{
			name: "strong does not cross blank line",
			src:  "**a\n\nb**",
			want: []Node{
				ParagraphNode(TextNode("*"), TextNode("*"), TextNode("a")),
				ParagraphNode(TextNode("b"), TextNode("*"), TextNode("*")),
			},
		},
		{
			name: "digits stay separate",
			src:  "42",
			want: []Node{ParagraphNode(DigitNode("4"), DigitNode("2"))},
		},
		{
			name: "tab and symbols are text",
			src:  "a\t!_-.\\()]",
			want: []Node{ParagraphNode(
				TextNode("a"), TextNode("\t"), TextNode("!"), TextNode("_"), TextNode("-"),
				TextNode("."), TextNode("\\"), TextNode("("), TextNode(")"), TextNode("]"),
			)},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Parse(Scan(tc.src))
			if !reflect.DeepEqual(got, tc.want) {
				var g, w strings.Builder
				_ = DumpTree(&g, got, 0)
				_ = DumpTree(&w, tc.want, 0)
				t.Fatalf("Parse(%q) mismatch\n---want---\n%s---got---\n%s", tc.src, w.String(), g.String())
			}
		})
	}
}

func TestParseLinkChildrenAreInline(t *testing.T) {
	doc := Parse(Scan("# [a\n## b](c\n# d)\n\n[x](y)"))
	var walk func(nodes []Node, top bool)
	walk = func(nodes []Node, top bool) {
		for _, n := range nodes {
			if n.Kind.IsBlock() && !top {
				t.Fatalf("block node %s nested inside inline content", n.Kind)
			}
			if n.Kind == NodeHeader && (n.Level < 1 || n.Level > 6) {
				t.Fatalf("header level %d", n.Level)
			}
			walk(n.Children, false)
			walk(n.URL, false)
		}
	}
	walk(doc, true)
}

func TestParseWithoutEOFToken(t *testing.T) {
	toks := Scan("**a**")
	got := Parse(toks[:len(toks)-1])
	want := []Node{ParagraphNode(StrongNode(TextNode("a")))}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func FuzzRenderHTML(f *testing.F) {
	seeds := []string{
		"",
		"# a",
		"####### x",
		"[a](b)",
		"[oops",
		"**x**",
		"*x*",
		"**[**](**)**",
		"a\n\nb",
		"\xff\xfe#",
		"🍣 **🍣** [🍣](🍣)",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, src string) {
		out := RenderHTML(src)
		if out != RenderHTML(src) {
			t.Fatalf("non-deterministic output for %q", src)
		}
	})
}
