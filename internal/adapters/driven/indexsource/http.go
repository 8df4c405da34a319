package indexsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driven"
)

// IndexFileName is the index's path under a published archive root.
const IndexFileName = "search-index.json"

// Ensure HTTP implements the interface.
var _ driven.IndexSource = (*HTTP)(nil)

// HTTP loads the search index over HTTP from a published archive.
// One GET against {baseURL}/search-index.json.
type HTTP struct {
	url    string
	client *http.Client
}

// NewHTTP creates an HTTP index source for the given archive base URL.
func NewHTTP(baseURL string) *HTTP {
	return &HTTP{
		url:    strings.TrimRight(baseURL, "/") + "/" + IndexFileName,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Load fetches and decodes the index.
func (h *HTTP) Load(ctx context.Context) ([]domain.IndexEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w: %w", domain.ErrIndexUnavailable, err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w: %w", h.url, domain.ErrIndexUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d: %w", h.url, resp.StatusCode, domain.ErrIndexUnavailable)
	}

	var entries []domain.IndexEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding %s: %w: %w", h.url, domain.ErrIndexUnavailable, err)
	}
	return entries, nil
}
