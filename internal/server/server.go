// Package server exposes a populated trie over HTTP.
//
// Routes:
//
//	GET  /healthz                          liveness and word count
//	GET  /api/v1/themes                    built-in fallback themes
//	GET  /api/v1/words                     every word, in traversal order
//	POST /api/v1/words                     insert {"words": [...]}
//	GET  /api/v1/complete?prefix=&limit=   prefix completions
//	GET  /api/v1/graph?prefix=             exported graph as JSON
//	GET  /api/v1/graph.dot?prefix=         Graphviz DOT source
//	GET  /api/v1/graph.svg?prefix=         rendered SVG
//
// Words and prefixes are case-folded before use. Inserts and reads may run
// concurrently; the trie serializes them.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/wordtrie/pkg/buildinfo"
	wterrors "github.com/matzehuels/wordtrie/pkg/errors"
	"github.com/matzehuels/wordtrie/pkg/graph"
	"github.com/matzehuels/wordtrie/pkg/render/nodelink"
	"github.com/matzehuels/wordtrie/pkg/trie"
	"github.com/matzehuels/wordtrie/pkg/words"
)

const (
	maxBodyBytes = 1 << 20
	renderLimit  = 30 * time.Second
)

// Server serves one trie.
type Server struct {
	trie   *trie.Trie
	theme  string
	origin words.Origin
	logger *log.Logger
	router chi.Router
}

// Options describes the word list the trie was built from.
type Options struct {
	Theme  string
	Origin words.Origin
	Logger *log.Logger
}

// New builds the router for t.
func New(t *trie.Trie, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{
		trie:   t,
		theme:  opts.Theme,
		origin: opts.Origin,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/themes", s.themes)
		r.Get("/words", s.listWords)
		r.Post("/words", s.insertWords)
		r.Get("/complete", s.complete)
		r.Get("/graph", s.graphJSON)
		r.Get("/graph.dot", s.graphDOT)
		r.Get("/graph.svg", s.graphSVG)
	})
	s.router = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return ctx.Err()
	}
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"words":  s.trie.Len(),
		"build":  buildinfo.Current(),
	})
}

func (s *Server) themes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"themes": words.Themes()})
}

type wordsResponse struct {
	Theme  string       `json:"theme"`
	Origin words.Origin `json:"origin"`
	Count  int          `json:"count"`
	Words  []string     `json:"words"`
}

func (s *Server) listWords(w http.ResponseWriter, r *http.Request) {
	all := s.trie.SearchPrefix("")
	writeJSON(w, http.StatusOK, wordsResponse{
		Theme:  s.theme,
		Origin: s.origin,
		Count:  len(all),
		Words:  all,
	})
}

type insertRequest struct {
	Words []string `json:"words"`
}

type insertResponse struct {
	Inserted int `json:"inserted"`
	Count    int `json:"count"`
}

func (s *Server) insertWords(w http.ResponseWriter, r *http.Request) {
	var req insertRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, wterrors.Wrap(wterrors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	list := words.Normalize(req.Words)
	if len(list) == 0 {
		writeError(w, wterrors.New(wterrors.ErrCodeInvalidInput, "no words to insert"))
		return
	}

	before := s.trie.Len()
	s.trie.Insert(list...)
	after := s.trie.Len()
	loggerFromContext(r.Context()).Info("inserted words", "inserted", after-before, "total", after)

	writeJSON(w, http.StatusOK, insertResponse{Inserted: after - before, Count: after})
}

type completeResponse struct {
	Prefix      string   `json:"prefix"`
	Suggestions []string `json:"suggestions"`
	Total       int      `json:"total"`
}

func (s *Server) complete(w http.ResponseWriter, r *http.Request) {
	prefix := words.Fold(r.URL.Query().Get("prefix"))
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(w, err)
		return
	}

	all := s.trie.SearchPrefix(prefix)
	shown := all
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	writeJSON(w, http.StatusOK, completeResponse{Prefix: prefix, Suggestions: shown, Total: len(all)})
}

func (s *Server) export(r *http.Request) *graph.Graph {
	return graph.Export(s.trie,
		graph.WithPrefix(words.Fold(r.URL.Query().Get("prefix"))),
		graph.WithMeta("theme", s.theme),
		graph.WithMeta("words", s.trie.Len()))
}

func (s *Server) graphJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := graph.WriteJSON(s.export(r), w); err != nil {
		loggerFromContext(r.Context()).Error("write graph", "error", err)
	}
}

func (s *Server) dot(r *http.Request) string {
	return nodelink.ToDOT(s.export(r), nodelink.Options{Theme: s.theme, WordCount: s.trie.Len()})
}

func (s *Server) graphDOT(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	_, _ = io.WriteString(w, s.dot(r))
}

func (s *Server) graphSVG(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), renderLimit)
	defer cancel()

	svg, err := nodelink.RenderSVG(ctx, s.dot(r))
	if err != nil {
		loggerFromContext(r.Context()).Warn("render svg", "error", err)
		writeError(w, wterrors.Wrap(wterrors.ErrCodeInternal, err, "render svg"))
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

// =============================================================================
// Helpers
// =============================================================================

func parseLimit(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, wterrors.New(wterrors.ErrCodeInvalidInput, "limit must be a non-negative integer, got %q", s)
	}
	return n, nil
}

type errorResponse struct {
	Error string        `json:"error"`
	Code  wterrors.Code `json:"code,omitempty"`
}

func writeError(w http.ResponseWriter, err error) {
	code := wterrors.GetCode(err)
	writeJSON(w, code.HTTPStatus(), errorResponse{Error: wterrors.UserMessage(err), Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
