// Package feed fetches the pre-computed dashboard data products: JSON and CSV
// snapshots published to the repository by the upstream scripts. The feeds
// are read-only and consumed as-is; nothing here computes returns or scores.
package feed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Well-known feed paths under data/.
const (
	FearGreedPath    = "data/fear_greed_index.json"
	IndicatorsPath   = "data/economic_indicators.json"
	ReturnsPath      = "data/portfolio_return.json"
	AssetReturnsPath = "data/portfolio_assets_returns.json"
	HistoryPath      = "data/portfolio_details_history.csv"
)

// Client fetches feeds from the raw file host of one repository.
type Client struct {
	// BaseURL is the raw host prefix,
	// e.g. https://raw.githubusercontent.com/owner/repo/main. Tests point
	// it at a local server.
	BaseURL string

	http *http.Client
	// now stamps the cache-busting query parameter; replaceable in tests.
	now func() time.Time
}

// NewClient returns a client for the main branch of owner/repo.
func NewClient(owner, repo string) *Client {
	return &Client{
		BaseURL: fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/main", owner, repo),
		http:    http.DefaultClient,
		now:     time.Now,
	}
}

// get performs an HTTP GET with the cache-busting parameter the static host
// requires to bypass its CDN cache.
func (c *Client) get(path string) ([]byte, error) {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	addr := fmt.Sprintf("%s/%s%st=%d", c.BaseURL, path, sep, c.now().UnixMilli())

	resp, err := c.http.Get(addr)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch feed %q: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot fetch feed %q: %s", path, resp.Status)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("cannot read feed %q: %w", path, err)
	}
	return buf.Bytes(), nil
}

// jwget performs a GET and unmarshals the JSON response into data.
func (c *Client) jwget(path string, data any) error {
	body, err := c.get(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, data); err != nil {
		return fmt.Errorf("cannot decode feed %q: %w", path, err)
	}
	return nil
}
