package gohan

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/unicode/norm"
)

// RenderRequest configures RenderTo.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Options []RenderOption
}

// RenderTo reads Markdown from Reader and writes HTML to Writer.
//
// Unlike RenderHTML it prepares the input first: front matter is removed and
// CRLF line endings become LF. Validation and NFC normalization are opt-in.
func RenderTo(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	cfg := newRenderConfig(req.Options)
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	html, err := renderSource(src, cfg)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err := io.WriteString(req.Writer, html); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}

// PrepareSource applies the input handling of RenderTo without rendering.
func PrepareSource(src []byte, opts ...RenderOption) ([]byte, error) {
	return prepareSource(src, newRenderConfig(opts))
}

func renderSource(src []byte, cfg renderConfig) (string, error) {
	src, err := prepareSource(src, cfg)
	if err != nil {
		return "", err
	}
	html := RenderHTML(string(src))
	if cfg.wrapper != "" {
		html = "<" + cfg.wrapper + ">" + html + "</" + cfg.wrapper + ">"
	}
	return html, nil
}

func prepareSource(src []byte, cfg renderConfig) ([]byte, error) {
	if cfg.validate {
		if err := ValidateInput(src); err != nil {
			return nil, err
		}
	}
	if cfg.frontMatter {
		src = stripFrontMatter(src)
	}
	src = trimBOM(src)
	if bytes.IndexByte(src, '\r') >= 0 {
		src = bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
	}
	if cfg.nfc {
		src = norm.NFC.Bytes(src)
	}
	return src, nil
}
