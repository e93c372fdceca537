package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Veraticus/lunch-roulette/internal/common"
	"github.com/Veraticus/lunch-roulette/internal/config"
	"github.com/Veraticus/lunch-roulette/internal/model"
)

// maxDocumentBytes caps how much of a remote catalog is read.
const maxDocumentBytes = 8 << 20

const (
	// SourceEmbedded selects the catalog compiled into the binary.
	SourceEmbedded = "embedded"
	// SourceDemo selects a generated catalog.
	SourceDemo = "demo"
)

//go:embed data/restaurants.json
var embeddedCatalog []byte

// Source produces the raw restaurant list.
type Source interface {
	// Name identifies the source in logs and the UI.
	Name() string
	Fetch(ctx context.Context) ([]model.Restaurant, error)
}

// SourceOptions tune the sources built by NewSource.
type SourceOptions struct {
	HTTPClient *http.Client
	Retry      common.RetryOptions
	DemoCount  int
	DemoSeed   int64
}

// NewSource picks a Source for a configured location: "embedded", "demo",
// an http(s) URL, or a file path.
func NewSource(location string, opts SourceOptions) (Source, error) {
	switch {
	case location == "":
		return nil, fmt.Errorf("%w: catalog source", common.ErrMissingConfig)
	case location == SourceEmbedded:
		return EmbeddedSource{}, nil
	case location == SourceDemo:
		return DemoSource{Count: opts.DemoCount, Seed: opts.DemoSeed}, nil
	case strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://"):
		if _, err := url.Parse(location); err != nil {
			return nil, fmt.Errorf("%w: catalog url: %w", common.ErrInvalidConfig, err)
		}
		return &HTTPSource{
			URL:    location,
			Client: opts.HTTPClient,
			Retry:  opts.Retry,
		}, nil
	default:
		return FileSource{Path: config.ExpandPath(location)}, nil
	}
}

// EmbeddedSource serves the catalog bundled with the binary.
type EmbeddedSource struct{}

// Name implements Source.
func (EmbeddedSource) Name() string {
	return SourceEmbedded
}

// Fetch implements Source.
func (EmbeddedSource) Fetch(_ context.Context) ([]model.Restaurant, error) {
	return Decode(embeddedCatalog, FormatJSON)
}

// FileSource reads a JSON or YAML document from disk.
type FileSource struct {
	Path string
}

// Name implements Source.
func (s FileSource) Name() string {
	return s.Path
}

// Fetch implements Source.
func (s FileSource) Fetch(ctx context.Context) ([]model.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrCatalogUnavailable, err)
	}
	return Decode(data, FormatFromPath(s.Path))
}

// HTTPSource downloads a catalog document, retrying transient failures.
type HTTPSource struct {
	Client *http.Client
	URL    string
	Retry  common.RetryOptions
}

// Name implements Source.
func (s *HTTPSource) Name() string {
	return s.URL
}

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context) ([]model.Restaurant, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	var (
		body        []byte
		contentType string
	)
	err := common.WithRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, http.NoBody)
		if err != nil {
			return &common.RetryableError{Err: fmt.Errorf("creating request: %w", err)}
		}
		req.Header.Set("Accept", "application/json, application/yaml;q=0.9")
		req.Header.Set("User-Agent", "lunch/1.0")

		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer func() {
			_ = resp.Body.Close() //nolint:errcheck // best effort close
		}()

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("%w: HTTP %d", common.ErrRateLimit, resp.StatusCode)
		case resp.StatusCode >= http.StatusInternalServerError:
			return &common.RetryableError{Err: fmt.Errorf("HTTP %d", resp.StatusCode), Retryable: true}
		case resp.StatusCode != http.StatusOK:
			return &common.RetryableError{Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
		}

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
		if err != nil {
			return fmt.Errorf("reading body: %w", err)
		}
		body = data
		contentType = resp.Header.Get("Content-Type")
		return nil
	}, s.Retry)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrCatalogUnavailable, s.URL, err)
	}

	format := FormatFromPath(s.URL)
	if u, parseErr := url.Parse(s.URL); parseErr == nil {
		format = FormatFromPath(u.Path)
	}
	return Decode(body, FormatFromContentType(contentType, format))
}
