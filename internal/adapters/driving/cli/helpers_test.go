package cli

import (
	"context"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/core/ports/driving"
)

// mockBuildService implements driving.BuildService for tests.
type mockBuildService struct {
	buildFunc func(ctx context.Context, opts driving.BuildOptions) (*driving.BuildResult, error)
	calls     []driving.BuildOptions
}

func (m *mockBuildService) Build(ctx context.Context, opts driving.BuildOptions) (*driving.BuildResult, error) {
	m.calls = append(m.calls, opts)
	if m.buildFunc != nil {
		return m.buildFunc(ctx, opts)
	}
	return &driving.BuildResult{Indexed: 2, Cached: 1}, nil
}

// mockSearchEngine implements driving.SearchEngine for tests.
type mockSearchEngine struct {
	searchFunc func(ctx context.Context, query string) ([]domain.SearchResult, error)
}

func (m *mockSearchEngine) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return []domain.SearchResult{
		{Entry: domain.IndexEntry{Title: "Mar 2019 Meeting", URL: "/meetings/2019/03-14/"}, Score: 50, Snippet: "fixed the GC crash"},
	}, nil
}

// setupTestServices wires mock services and returns a cleanup that
// restores the previous configuration and flag state.
func setupTestServices() func() {
	prev := cfg
	cfg = &Config{
		Build:      &mockBuildService{},
		Search:     &mockSearchEngine{},
		CorpusDir:  "dev-meeting-log",
		SiteDir:    "_site",
		ListenAddr: "127.0.0.1:8797",
	}
	return func() {
		cfg = prev
		buildForce = false
		buildWatch = false
		searchJSON = false
		serveAddr = ""
	}
}
