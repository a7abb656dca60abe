package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/trackhist"
	"github.com/aretw0/trackhist/internal/logging"
	"github.com/aretw0/trackhist/internal/presentation/chart"
	"github.com/aretw0/trackhist/pkg/adapters/yoda"
	"github.com/aretw0/trackhist/pkg/domain"
	"github.com/aretw0/trackhist/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// Server implements the generated ServerInterface over a run store.
type Server struct {
	Store    ports.RunStore
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

var _ ServerInterface = (*Server)(nil)

// Option configures the Server.
type Option func(*Server)

// WithGatherer serves /metrics from the given gatherer instead of the default registry.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// NewHandler creates a new HTTP handler over the store.
func NewHandler(store ports.RunStore, opts ...Option) http.Handler {
	server := &Server{
		Store:    store,
		Gatherer: prometheus.DefaultGatherer,
		Logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			server.Logger.Error("Failed to load OpenAPI spec", "error", err)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(swaggerHTML))
	})
	r.Handle("/metrics", promhttp.HandlerFor(server.Gatherer, promhttp.HandlerOpts{}))

	handler := HandlerFromMux(server, r)
	return enableCORS(handler)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>trackhist API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, Health{Status: "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, Info{
		App:     "trackhist-http",
		Version: strings.TrimSpace(trackhist.Version),
	})
}

// ListRuns handles the GET /runs request.
func (s *Server) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := s.Store.List(r.Context())
	if err != nil {
		http.Error(w, "List error", http.StatusInternalServerError)
		s.Logger.Error("List runs failed", "error", err)
		return
	}
	if runs == nil {
		runs = []string{}
	}
	s.writeJSON(w, RunList{Runs: runs})
}

// GetRun handles the GET /runs/{runID} request.
func (s *Server) GetRun(w http.ResponseWriter, r *http.Request, runID RunID) {
	run, ok := s.loadRun(w, r, runID)
	if !ok {
		return
	}
	s.writeJSON(w, mapRunFromDomain(run))
}

// GetHistogram handles GET /runs/{runID}/histograms/{name}. A ".yoda", ".png"
// or ".mmd" suffix on the name selects the export format; JSON otherwise.
func (s *Server) GetHistogram(w http.ResponseWriter, r *http.Request, runID RunID, name string) {
	run, ok := s.loadRun(w, r, runID)
	if !ok {
		return
	}

	name, format := splitFormat(name)
	h, found := run.Histogram(name)
	if !found {
		http.Error(w, "Histogram not found", http.StatusNotFound)
		return
	}

	switch format {
	case "yoda":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := yoda.Encode(w, []domain.HistogramData{h}); err != nil {
			s.Logger.Error("YODA encode failed", "error", err, "run", run.ID, "histogram", name)
		}
	case "png":
		w.Header().Set("Content-Type", "image/png")
		if err := yoda.WritePNG(w, h); err != nil {
			s.Logger.Error("PNG render failed", "error", err, "run", run.ID, "histogram", name)
		}
	case "mmd":
		w.Header().Set("Content-Type", "text/vnd.mermaid; charset=utf-8")
		_, _ = w.Write([]byte(chart.GenerateMermaid(h)))
	default:
		s.writeJSON(w, mapHistogramFromDomain(h))
	}
}

func (s *Server) loadRun(w http.ResponseWriter, r *http.Request, runID string) (*domain.Run, bool) {
	if err := domain.ValidateRunID(runID); err != nil {
		http.Error(w, "Invalid run ID", http.StatusBadRequest)
		return nil, false
	}
	run, err := s.Store.Load(r.Context(), runID)
	if errors.Is(err, domain.ErrRunNotFound) {
		http.Error(w, "Run not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		http.Error(w, "Load error", http.StatusInternalServerError)
		s.Logger.Error("Load run failed", "error", err, "run", runID)
		return nil, false
	}
	return run, true
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("Response encode failed", "error", err)
	}
}

func splitFormat(name string) (string, string) {
	for _, ext := range []string{"yoda", "png", "mmd", "json"} {
		if base, ok := strings.CutSuffix(name, "."+ext); ok {
			return base, ext
		}
	}
	return name, "json"
}
