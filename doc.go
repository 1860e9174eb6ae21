// Package gohan renders a small Markdown dialect to HTML.
//
// The pipeline has three stages, each usable on its own:
//
//	toks := gohan.Scan(src)    // positioned tokens, always ending in EOF
//	doc := gohan.Parse(toks)   // headers and paragraphs of inline nodes
//	html := gohan.Render(doc)  // HTML string
//
// RenderHTML runs all three. The dialect covers ATX headings (# to ######
// at column 1), paragraphs separated by blank lines, line breaks, strong text
// (**strong**) and links ([text](url)). Delimiters that cannot be matched
// before the next blank line are kept as literal text, so every input renders.
//
// Output is not escaped. Callers embedding untrusted input must escape it
// before rendering.
//
// Example:
//
//	err := gohan.RenderTo(gohan.RenderRequest{
//		Reader:  strings.NewReader("# Hello\n\nMarkdown **in**, HTML out.\n"),
//		Writer:  os.Stdout,
//		Options: []gohan.RenderOption{gohan.WithWrapper("article")},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
package gohan
