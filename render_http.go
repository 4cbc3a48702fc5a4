package hivemarkup

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// URLRenderRequest configures RenderURL.
type URLRenderRequest struct {
	URL    string
	Client *http.Client
	// Encoding overrides the charset announced by the server. When both are
	// empty the post is tagged UTF8.
	Encoding Encoding
	// MaxInput caps the number of body bytes read. Zero means DefaultMaxOutput.
	MaxInput int64
	Options  []RenderOption
}

// RenderURL fetches a post over HTTP(S) and renders it.
func RenderURL(ctx context.Context, req URLRenderRequest) (Document, error) {
	if req.URL == "" {
		return Document{}, fmt.Errorf("render url: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return Document{}, fmt.Errorf("render url: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return Document{}, fmt.Errorf("render url: unsupported scheme %q", httpReq.URL.Scheme)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return Document{}, fmt.Errorf("render url: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Document{}, fmt.Errorf("render url: status %s", resp.Status)
	}
	limit := req.MaxInput
	if limit <= 0 {
		limit = DefaultMaxOutput
	}
	src, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return Document{}, fmt.Errorf("render url: read: %w", err)
	}
	enc := req.Encoding
	if enc == "" {
		enc = charsetOf(resp.Header.Get("Content-Type"))
	}
	return Render(src, enc, req.Options...)
}

func charsetOf(contentType string) Encoding {
	if contentType == "" {
		return UTF8
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil || params["charset"] == "" {
		return UTF8
	}
	return Encoding(params["charset"])
}
