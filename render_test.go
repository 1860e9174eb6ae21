package gohan

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestRenderHTML(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"blank lines only", "\n\n", ""},
		{"heading", "# Hello", "<h1>Hello</h1>"},
		{"heading levels", "###### six", "<h6>six</h6>"},
		{"seven hashes", "####### x", "<p>####### x</p>"},
		{"hash without space", "#tag", "<p>#tag</p>"},
		{"mid-line hash", "a # b", "<p>a # b</p>"},
		{"heading keeps line break", "# A\nb", "<h1>A<br>b</h1>"},
		{"link", "[a](b)", `<p><a href="b">a</a></p>`},
		{"link in sentence", "see [docs](https://x.io/a_b) now", `<p>see <a href="https://x.io/a_b">docs</a> now</p>`},
		{"incomplete link", "[oops", "<p>[oops</p>"},
		{"bracket without paren", "[a] (b)", "<p>[a] (b)</p>"},
		{"strong", "**x**", "<p><strong>x</strong></p>"},
		{"single stars", "*x*", "<p>*x*</p>"},
		{"unclosed strong", "**x", "<p>**x</p>"},
		{"spaced strong", "** x **", "<p>** x **</p>"},
		{"line break", "a\nb", "<p>a<br>b</p>"},
		{"trailing newline", "a\n", "<p>a</p>"},
		{"paragraph break", "a\n\nb", "<p>a</p><p>b</p>"},
		{"strong across blank line", "**a\n\nb**", "<p>**a</p><p>b**</p>"},
		{"link across blank line", "[a\n\nb](c)", "<p>[a</p><p>b](c)</p>"},
		{"digits", "In 2024 we had 10", "<p>In 2024 we had 10</p>"},
		{"no escaping", "a <b> & \"c\"", "<p>a <b> & \"c\"</p>"},
		{"symbols", "a_b-c.d!e\\f (g)", "<p>a_b-c.d!e\\f (g)</p>"},
		{"emoji", "🍣 **🍣**", "<p>🍣 <strong>🍣</strong></p>"},
		{"heading then paragraph", "# T\n\nbody", "<h1>T</h1><p>body</p>"},
		{"paragraph then heading", "body\n## T", "<p>body</p><h2>T</h2>"},
		{"heading keeps trailing break", "a\n# b\n", "<p>a</p><h1>b<br></h1>"},
		{"consecutive headings", "# A\n# B", "<h1>A<br></h1><h1>B</h1>"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := RenderHTML(tc.in); got != tc.want {
				t.Fatalf("RenderHTML(%q)\n got: %q\nwant: %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRenderTotality(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"[", "]", "(", ")", "*", "**", "***", "****", "#", "# ", "#######",
		"[](", "[]()", "[[[[", "))))", "**[**]**(**)**", "\\", "!", "_", "-", ".",
		"\n", "\t", "\r\n", "\xff", "\xf0\x9f", "# \n# \n# ",
		"[**a](b**)", "**[a**](b)", "[a](**b**)",
	}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("RenderHTML(%q) panicked: %v", in, r)
				}
			}()
			_ = RenderHTML(in)
		}()
	}
}

func TestRenderEmphasis(t *testing.T) {
	doc := []Node{ParagraphNode(TextNode("a "), EmphasisNode(TextNode("b"), StrongNode(TextNode("c"))))}
	if got, want := Render(doc), "<p>a <em>b<strong>c</strong></em></p>"; got != want {
		t.Fatalf("Render emphasis = %q, want %q", got, want)
	}
}

func TestRenderSuppressesOnlyLastLineBreak(t *testing.T) {
	doc := []Node{ParagraphNode(TextNode("a"), LineBreakNode(), LineBreakNode())}
	if got, want := Render(doc), "<p>a<br></p>"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
	doc = []Node{ParagraphNode(LineBreakNode(), TextNode("a"))}
	if got, want := Render(doc), "<p><br>a</p>"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderLinkURLNodes(t *testing.T) {
	doc := []Node{ParagraphNode(LinkNode(
		[]Node{StrongNode(TextNode("x"))},
		[]Node{TextNode("/p"), DigitNode("4"), DigitNode("2")},
	))}
	if got, want := Render(doc), `<p><a href="/p42"><strong>x</strong></a></p>`; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderRejectsBlockInInlinePosition(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic for header inside strong")
		}
		if _, ok := r.(internalError); !ok {
			t.Fatalf("unexpected panic value %T: %v", r, r)
		}
	}()
	Render([]Node{ParagraphNode(StrongNode(Node{Kind: NodeHeader, Level: 1}))})
}

func TestHeaderNodeLevelRange(t *testing.T) {
	for _, level := range []int{0, 7} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("HeaderNode(%d) did not panic", level)
				}
			}()
			HeaderNode(level)
		}()
	}
}

func TestRenderHTMLConcurrent(t *testing.T) {
	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := fmt.Sprintf("# H%d\n\n**b%d** [l](u%d)\n", i, i, i)
			want := fmt.Sprintf(`<h1>H%d</h1><p><strong>b%d</strong> <a href="u%d">l</a></p>`, i, i, i)
			for j := 0; j < 200; j++ {
				if got := RenderHTML(in); got != want {
					errs <- fmt.Errorf("worker %d: got %q, want %q", i, got, want)
					return
				}
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestRenderHTMLLargeInput(t *testing.T) {
	in := strings.Repeat("para **bold** and [link](u)\n\n", 2000)
	out := RenderHTML(in)
	if n := strings.Count(out, "<p>"); n != 2000 {
		t.Fatalf("got %d paragraphs, want 2000", n)
	}
}

func TestRenderHTMLUnmatchedDelimitersScaleLinearly(t *testing.T) {
	inputs := map[string]string{
		"brackets":       strings.Repeat("[", 200000),
		"open links":     strings.Repeat("[a](", 50000),
		"bracket pairs":  strings.Repeat("[a]", 70000),
		"spaced closers": strings.Repeat("**a ", 50000),
	}
	for name, src := range inputs {
		start := time.Now()
		out := RenderHTML(src)
		if took := time.Since(start); took > 2*time.Second {
			t.Fatalf("%s: %d bytes took %s", name, len(src), took)
		}
		if want := "<p>" + src + "</p>"; out != want {
			t.Fatalf("%s: delimiters were not kept as text", name)
		}
	}
}
