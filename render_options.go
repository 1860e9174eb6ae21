package gohan

// RenderOption configures RenderTo and FetchRender.
type RenderOption func(*renderConfig)

type renderConfig struct {
	validate    bool
	frontMatter bool
	nfc         bool
	wrapper     string
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{frontMatter: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithValidation rejects invalid UTF-8 and binary input instead of rendering it.
func WithValidation(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.validate = enabled
	}
}

// WithFrontMatter controls removal of a leading front matter block. It is
// enabled by default.
func WithFrontMatter(strip bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.frontMatter = strip
	}
}

// WithNFC normalizes input to Unicode NFC before scanning.
func WithNFC(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.nfc = enabled
	}
}

// WithWrapper wraps the rendered document in a single element, e.g. "article".
// An empty tag disables wrapping.
func WithWrapper(tag string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.wrapper = tag
	}
}
