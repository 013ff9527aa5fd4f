package assets

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Fetcher retrieves the raw bytes of a source.
type Fetcher interface {
	Fetch(ctx context.Context, source string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, source string) ([]byte, error)

// Fetch calls f(ctx, source).
func (f FetcherFunc) Fetch(ctx context.Context, source string) ([]byte, error) {
	return f(ctx, source)
}

// FSFetcher reads sources from a file system. Sources are slash-separated
// paths; a leading "/" or "./" is ignored.
type FSFetcher struct {
	FS fs.FS
}

// Fetch reads source from the file system.
func (f FSFetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := strings.TrimPrefix(strings.TrimPrefix(source, "./"), "/")
	return fs.ReadFile(f.FS, name)
}

// HTTPFetcher performs one GET per source. Relative sources are resolved
// against BaseURL.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client // nil uses a client with a 30s timeout
}

var defaultHTTPClient = &http.Client{Timeout: 30 * time.Second}

// Fetch downloads source. Any status other than 200 is an error.
func (f HTTPFetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	target, err := f.resolve(source)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	client := f.Client
	if client == nil {
		client = defaultHTTPClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %s", target, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func (f HTTPFetcher) resolve(source string) (string, error) {
	ref, err := url.Parse(source)
	if err != nil {
		return "", fmt.Errorf("invalid source %q: %w", source, err)
	}
	if f.BaseURL == "" || ref.IsAbs() {
		return ref.String(), nil
	}
	base, err := url.Parse(f.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", f.BaseURL, err)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return base.ResolveReference(ref).String(), nil
}
