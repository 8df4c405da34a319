// Package web serves the built site for local preview.
// It implements a driving adapter following hexagonal architecture principles.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/minutes-cli/internal/core/ports/driving"
	"github.com/custodia-labs/minutes-cli/internal/logger"
)

const (
	// shutdownTimeout bounds graceful shutdown.
	shutdownTimeout = 5 * time.Second

	// defaultRate is the request rate allowed per server.
	defaultRate = rate.Limit(50)

	// defaultBurst is the burst capacity of the request limiter.
	defaultBurst = 100
)

// Server serves the emitted site directory plus a small search API.
type Server struct {
	addr    string
	siteDir string
	engine  driving.SearchEngine
	limiter *rate.Limiter
	router  *mux.Router
}

// NewServer creates a preview server for the given site directory.
// engine may be nil, in which case the search API is not registered.
func NewServer(addr, siteDir string, engine driving.SearchEngine) *Server {
	s := &Server{
		addr:    addr,
		siteDir: siteDir,
		engine:  engine,
		limiter: rate.NewLimiter(defaultRate, defaultBurst),
	}
	s.router = s.buildRouter()
	return s
}

// WithRateLimit overrides the request limiter.
func (s *Server) WithRateLimit(r rate.Limit, burst int) *Server {
	s.limiter = rate.NewLimiter(r, burst)
	s.router = s.buildRouter()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Start runs the server until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Serving %s on http://%s", s.siteDir, s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}

func (s *Server) buildRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.throttle)

	r.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	if s.engine != nil {
		r.HandleFunc("/api/search", s.handleSearch).Methods("GET")
	}

	// Everything else is the static site, /search-index.json included.
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(s.siteDir)))

	return r
}

// throttle rejects requests once the limiter is exhausted.
func (s *Server) throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck // best-effort response write
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleSearch handles GET /api/search?q=term.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		http.Error(w, "missing query parameter q", http.StatusBadRequest)
		return
	}

	results, err := s.engine.Search(r.Context(), query)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck // best-effort response write
	json.NewEncoder(w).Encode(map[string]any{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}
