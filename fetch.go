package gohan

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// FetchRequest configures FetchRender.
type FetchRequest struct {
	URL     string
	Client  *http.Client
	Writer  io.Writer
	Options []RenderOption
}

// FetchRender fetches Markdown over HTTP(S) and writes its HTML rendering.
func FetchRender(ctx context.Context, req FetchRequest) error {
	if req.URL == "" {
		return fmt.Errorf("fetch: URL is required")
	}
	if req.Writer == nil {
		return fmt.Errorf("fetch: Writer is nil")
	}
	body, err := FetchSource(ctx, req.Client, req.URL)
	if err != nil {
		return err
	}
	defer body.Close()
	return RenderTo(RenderRequest{
		Reader:  body,
		Writer:  req.Writer,
		Options: req.Options,
	})
}

// FetchSource GETs Markdown from an http or https URL. The caller closes the
// returned body. A nil client uses http.DefaultClient.
func FetchSource(ctx context.Context, client *http.Client, rawURL string) (io.ReadCloser, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return nil, fmt.Errorf("fetch: unsupported scheme %q", httpReq.URL.Scheme)
	}
	httpReq.Header.Set("Accept", "text/markdown, text/plain;q=0.9, */*;q=0.1")
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetch: request: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("fetch: %s: status %s", rawURL, resp.Status)
	}
	return resp.Body, nil
}
