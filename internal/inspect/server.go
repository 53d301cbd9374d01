package inspect

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gobwas/glob"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/charm/pkg/project"
	"github.com/vango-dev/charm/pkg/scope"
)

// TagInfo describes one registered tag.
type TagInfo struct {
	Tag          string `json:"tag"`
	BaseName     string `json:"baseName"`
	Prefix       string `json:"prefix"`
	Suffix       string `json:"suffix"`
	BasePath     string `json:"basePath,omitempty"`
	DefinitionID string `json:"definitionId,omitempty"`
}

// Server serves the inspection API.
type Server struct {
	registry scope.Registry
	project  *project.Project
	gatherer prometheus.Gatherer
	logger   *slog.Logger
	router   chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithGatherer sets the metrics source (default: prometheus.DefaultGatherer).
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// New creates a Server for registry and p.
func New(registry scope.Registry, p *project.Project, opts ...Option) *Server {
	s := &Server{
		registry: registry,
		project:  p,
		gatherer: prometheus.DefaultGatherer,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/tags", s.listTags)
	r.Get("/tags/{tag}", s.getTag)
	r.Get("/suffixes", s.listSuffixes)
	r.Get("/icons", s.listIcons)
	r.Get("/icons/{name}", s.getIcon)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("inspect request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}

func (s *Server) listTags(w http.ResponseWriter, r *http.Request) {
	var matcher glob.Glob
	if pattern := r.URL.Query().Get("match"); pattern != "" {
		g, err := glob.Compile(pattern)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid match pattern: "+err.Error())
			return
		}
		matcher = g
	}

	infos := make([]TagInfo, 0)
	for _, tag := range s.registry.Tags() {
		if matcher != nil && !matcher.Match(tag) {
			continue
		}
		if info, ok := s.describe(tag); ok {
			infos = append(infos, info)
		}
	}
	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) getTag(w http.ResponseWriter, r *http.Request) {
	info, ok := s.describe(chi.URLParam(r, "tag"))
	if !ok {
		writeError(w, http.StatusNotFound, "tag not registered")
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) describe(tag string) (TagInfo, bool) {
	owner, ok := s.registry.LookupScope(tag)
	if !ok {
		return TagInfo{}, false
	}

	def, ok := s.registry.Definition(tag)
	if !ok {
		// Defined through another registry; only the owner is known.
		return TagInfo{Tag: tag, BaseName: owner.BaseName(tag), Prefix: owner.Prefix()}, true
	}
	return TagInfo{
		Tag:          def.Tag,
		BaseName:     def.BaseName,
		Prefix:       def.Prefix,
		Suffix:       def.Suffix,
		BasePath:     def.BasePath,
		DefinitionID: def.ID.String(),
	}, true
}

func (s *Server) listSuffixes(w http.ResponseWriter, r *http.Request) {
	suffixes := s.registry.Suffixes()
	if suffixes == nil {
		suffixes = []string{}
	}
	writeJSON(w, http.StatusOK, suffixes)
}

func (s *Server) listIcons(w http.ResponseWriter, r *http.Request) {
	icons := s.project.Get().Icons
	names := make([]string, 0, len(icons))
	for name := range icons {
		names = append(names, name)
	}
	sort.Strings(names)
	writeJSON(w, http.StatusOK, names)
}

func (s *Server) getIcon(w http.ResponseWriter, r *http.Request) {
	svg, ok := s.project.Icon(chi.URLParam(r, "name"))
	if !ok {
		writeError(w, http.StatusNotFound, "icon not found")
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write([]byte(svg))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
