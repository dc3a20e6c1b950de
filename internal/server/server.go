// Package server exposes one editing session over HTTP for browser
// renderers.
//
// Every edit endpoint answers with the refreshed renderer view (package
// graph), so a client redraws from the response without a second request.
// Errors are JSON objects carrying the machine-readable code:
//
//	{"error": true, "code": "OUT_OF_RANGE", "message": "value 1.5 for (a, b) must be between 0.00 and 1.00"}
//
// The server owns a single session; a mutex keeps exactly one request
// touching it at a time.
package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/matzehuels/valdigraph/pkg/observability"
	"github.com/matzehuels/valdigraph/pkg/pipeline"
	"github.com/matzehuels/valdigraph/pkg/session"
	"github.com/matzehuels/valdigraph/pkg/store"
)

// maxDocumentBytes bounds uploaded documents.
const maxDocumentBytes = 32 << 20

// DefaultOrigins are the CORS origins allowed when none are configured.
var DefaultOrigins = []string{"http://localhost:*", "http://127.0.0.1:*"}

// Server serves one session.
type Server struct {
	mu      sync.Mutex
	sess    *session.Session
	logger  *log.Logger
	origins []string
	runner  *pipeline.Runner
	store   store.Store
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAllowedOrigins sets the CORS origins. Patterns may contain one "*".
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.origins = origins
		}
	}
}

// WithRunner sets the render runner. Without one, diagrams are rendered
// uncached.
func WithRunner(r *pipeline.Runner) Option {
	return func(s *Server) { s.runner = r }
}

// WithStore enables the snapshot endpoints.
func WithStore(st store.Store) Option {
	return func(s *Server) { s.store = st }
}

// New creates a server around sess.
func New(sess *session.Session, opts ...Option) *Server {
	s := &Server{
		sess:    sess,
		logger:  log.Default(),
		origins: DefaultOrigins,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.runner == nil {
		s.runner = pipeline.NewRunner(nil, s.logger)
	}
	return s
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/graph", s.getGraph)
		r.Post("/graph", s.newGraph)

		r.Get("/document", s.getDocument)
		r.Put("/document", s.putDocument)
		r.Get("/render", s.render)

		r.Route("/snapshots", func(r chi.Router) {
			r.Get("/", s.listSnapshots)
			r.Put("/{name}", s.saveSnapshot)
			r.Post("/{name}/open", s.openSnapshot)
			r.Delete("/{name}", s.deleteSnapshot)
		})

		r.Route("/nodes", func(r chi.Router) {
			r.Post("/", s.addNode)
			r.Put("/{id}", s.editNode)
			r.Delete("/{id}", s.deleteNode)
		})

		r.Route("/edges/{a}/{b}", func(r chi.Router) {
			r.Put("/", s.editEdge)
			r.Delete("/", s.deleteEdge)
			r.Post("/connect", s.connectEdge)
			r.Post("/invert", s.invertEdge)
			r.Get("/comparison", s.inspectEdge)
		})
	})

	return r
}

// requestLogger logs each request and reports it to the HTTP hooks.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		d := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), d)
		s.logger.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", d.Round(time.Microsecond),
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
	})
}

// withSession runs fn while holding the session lock.
func (s *Server) withSession(fn func(*session.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.sess)
}
