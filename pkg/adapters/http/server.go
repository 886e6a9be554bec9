package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/aretw0/automata/pkg/automaton"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/regex"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Engine is the part of automata.Engine the HTTP surface needs.
type Engine interface {
	Definitions(ctx context.Context) ([]string, error)
	Definition(ctx context.Context, name string) (*domain.Definition, error)
	Save(ctx context.Context, def *domain.Definition) error
	Delete(ctx context.Context, name string) error
	Run(ctx context.Context, name string, word []domain.Symbol) (*domain.Trace, error)
	Determinize(ctx context.Context, name string) (*automaton.Automaton, error)
	Compile(name, pattern string) (*automaton.Automaton, error)
}

// DefaultMaxBodyBytes caps request bodies unless WithMaxBodyBytes says otherwise.
const DefaultMaxBodyBytes = 1 << 20

// Server serves the REST API over an Engine.
type Server struct {
	Engine   Engine
	logger   *slog.Logger
	gatherer prometheus.Gatherer
	maxBody  int64
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMaxBodyBytes sets the largest accepted request body.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		s.maxBody = n
	}
}

// WithMetrics exposes the gatherer's metrics on GET /metrics.
// Series are labelled by definition name, so every stored definition adds its own
// series; expose it only where the set of clients writing definitions is trusted.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{
		Engine:  engine,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxBody: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/health", server.GetHealth)
	r.Route("/definitions", func(r chi.Router) {
		r.Get("/", server.ListDefinitions)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", server.GetDefinition)
			r.Put("/", server.PutDefinition)
			r.Delete("/", server.DeleteDefinition)
			r.Post("/run", server.Run)
			r.Post("/dfa", server.Determinize)
			r.Get("/graph", server.GetGraph)
		})
	})
	r.Post("/compile", server.Compile)
	if server.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(server.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RunRequest carries the input word. Word is split into one symbol per rune;
// Symbols allows multi-character symbols and takes precedence.
type RunRequest struct {
	Word    string          `json:"word"`
	Symbols []domain.Symbol `json:"symbols,omitempty"`
}

func (r RunRequest) symbols() []domain.Symbol {
	if r.Symbols != nil {
		return r.Symbols
	}
	return domain.SymbolsOf(r.Word)
}

// CompileRequest asks for the Thompson NFA of Pattern.
type CompileRequest struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
	Save    bool   `json:"save"`
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListDefinitions handles GET /definitions.
func (s *Server) ListDefinitions(w http.ResponseWriter, r *http.Request) {
	names, err := s.Engine.Definitions(r.Context())
	if err != nil {
		s.fail(w, "list", err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"definitions": names})
}

// GetDefinition handles GET /definitions/{name}.
func (s *Server) GetDefinition(w http.ResponseWriter, r *http.Request) {
	def, err := s.Engine.Definition(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, "get", err)
		return
	}
	s.writeJSON(w, http.StatusOK, def)
}

// PutDefinition handles PUT /definitions/{name}. The path name wins over the body's.
func (s *Server) PutDefinition(w http.ResponseWriter, r *http.Request) {
	var def domain.Definition
	if !s.decode(w, r, "PutDefinition", &def) {
		return
	}
	def.Name = chi.URLParam(r, "name")

	if err := s.Engine.Save(r.Context(), &def); err != nil {
		s.fail(w, "put", err)
		return
	}
	s.writeJSON(w, http.StatusOK, &def)
}

// DeleteDefinition handles DELETE /definitions/{name}.
func (s *Server) DeleteDefinition(w http.ResponseWriter, r *http.Request) {
	if err := s.Engine.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.fail(w, "delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Run handles POST /definitions/{name}/run.
func (s *Server) Run(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	if !s.decode(w, r, "Run", &body) {
		return
	}

	trace, err := s.Engine.Run(r.Context(), chi.URLParam(r, "name"), body.symbols())
	if err != nil {
		s.fail(w, "run", err)
		return
	}
	s.writeJSON(w, http.StatusOK, trace)
}

// Determinize handles POST /definitions/{name}/dfa. With ?save=true the DFA is
// stored under its own name.
func (s *Server) Determinize(w http.ResponseWriter, r *http.Request) {
	dfa, err := s.Engine.Determinize(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, "dfa", err)
		return
	}
	def := dfa.Definition()
	if r.URL.Query().Get("save") == "true" {
		if err := s.Engine.Save(r.Context(), def); err != nil {
			s.fail(w, "dfa", err)
			return
		}
	}
	s.writeJSON(w, http.StatusOK, def)
}

// GetGraph handles GET /definitions/{name}/graph?format=mermaid|dot|table.
// An optional word query parameter highlights the states active after reading it.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	def, err := s.Engine.Definition(r.Context(), name)
	if err != nil {
		s.fail(w, "graph", err)
		return
	}

	var overlay *graph.Overlay
	if word, ok := r.URL.Query()["word"]; ok {
		trace, err := s.Engine.Run(r.Context(), name, domain.SymbolsOf(word[0]))
		if err != nil {
			s.fail(w, "graph", err)
			return
		}
		overlay = &graph.Overlay{Active: trace.Final()}
	}

	var out, contentType string
	switch format := r.URL.Query().Get("format"); format {
	case "", "mermaid":
		out, contentType = graph.GenerateMermaid(def, overlay), "text/vnd.mermaid"
	case "dot":
		out, contentType = graph.GenerateDot(def, overlay), "text/vnd.graphviz"
	case "table":
		out, contentType = graph.GenerateTable(def), "text/markdown"
	default:
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown format %q", format))
		return
	}

	w.Header().Set("Content-Type", contentType+"; charset=utf-8")
	_, _ = io.WriteString(w, out)
}

// Compile handles POST /compile.
func (s *Server) Compile(w http.ResponseWriter, r *http.Request) {
	var body CompileRequest
	if !s.decode(w, r, "Compile", &body) {
		return
	}
	if body.Name == "" {
		body.Name = body.Pattern
	}

	m, err := s.Engine.Compile(body.Name, body.Pattern)
	if err != nil {
		s.fail(w, "compile", err)
		return
	}
	def := m.Definition()
	if body.Save {
		if err := s.Engine.Save(r.Context(), def); err != nil {
			s.fail(w, "compile", err)
			return
		}
	}
	s.writeJSON(w, http.StatusOK, def)
}

// -- Helpers --

// decode reads a JSON body of at most maxBody bytes into v. On failure it has
// already written the response.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, op string, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		s.writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
	} else {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
	}
	s.logger.Warn(op+": invalid request body", "error", err)
	return false
}

func statusOf(err error) int {
	var syntax *regex.SyntaxError
	switch {
	case errors.Is(err, domain.ErrDefinitionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrStructural),
		errors.Is(err, domain.ErrUnknownSymbol),
		errors.Is(err, domain.ErrPrecondition),
		errors.As(err, &syntax):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "op", op, "error", err)
	} else {
		s.logger.Debug("request rejected", "op", op, "status", status, "error", err)
	}
	s.writeError(w, status, err.Error())
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}
