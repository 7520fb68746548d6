// Package fetch retrieves the three source documents from a configurable
// base location, which may be an http(s) URL or a local directory.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/additivelabs/additive-atlas/internal/common"
	"golang.org/x/sync/errgroup"
)

// Relative document paths under the base location, mirroring the processed
// data layout produced by the upstream preprocessing scripts.
const (
	ComparisonPath = "comparison/us_eu_comparison.csv"
	HighRiskPath   = "eu-food-additives/eu_high_risk_additives.csv"
	IndirectPath   = "us-food-additives/indirect-additives.csv"
)

// Documents holds the raw text of the three source documents.
type Documents struct {
	Comparison string
	HighRisk   string
	Indirect   string
}

// Client fetches documents relative to a base URL or directory.
type Client struct {
	httpClient *http.Client
	base       string
}

// NewClient creates a fetch client for the given base location. A base
// containing "://" is treated as a URL; anything else as a local directory.
func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// remote reports whether the client reads over HTTP rather than from disk.
func (c *Client) remote() bool {
	return strings.Contains(c.base, "://")
}

// Open returns a reader for one document plus its size in bytes when known
// (-1 otherwise). The caller owns the reader.
func (c *Client) Open(ctx context.Context, rel string) (io.ReadCloser, int64, error) {
	if c.remote() {
		return c.openHTTP(ctx, rel)
	}
	return c.openFile(rel)
}

func (c *Client) openHTTP(ctx context.Context, rel string) (io.ReadCloser, int64, error) {
	url := c.base + "/" + rel

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("request %s: %w", url, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, 0, fmt.Errorf("fetch %s: %w: status %d", url, common.ErrDocumentUnavailable, resp.StatusCode)
	}

	return resp.Body, resp.ContentLength, nil
}

func (c *Client) openFile(rel string) (io.ReadCloser, int64, error) {
	path := filepath.Join(c.base, filepath.FromSlash(rel))

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("stat %s: %w", path, err)
	}

	return f, info.Size(), nil
}

// Document fetches one document and decodes its body as text.
func (c *Client) Document(ctx context.Context, rel string) (string, error) {
	r, _, err := c.Open(ctx, rel)
	if err != nil {
		return "", err
	}
	defer r.Close()

	body, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", rel, err)
	}
	return string(body), nil
}

// All fetches the three documents concurrently and waits for every fetch to
// finish. The first failure cancels the others and is returned; callers
// never see a partially populated set.
func (c *Client) All(ctx context.Context) (*Documents, error) {
	var docs Documents

	g, ctx := errgroup.WithContext(ctx)
	fetchInto := func(rel string, dst *string) func() error {
		return func() error {
			start := time.Now()
			text, err := c.Document(ctx, rel)
			if err != nil {
				return err
			}
			slog.Debug("Fetched document",
				"document", rel,
				"bytes", len(text),
				"elapsed", time.Since(start))
			*dst = text
			return nil
		}
	}

	g.Go(fetchInto(ComparisonPath, &docs.Comparison))
	g.Go(fetchInto(HighRiskPath, &docs.HighRisk))
	g.Go(fetchInto(IndirectPath, &docs.Indirect))

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &docs, nil
}
