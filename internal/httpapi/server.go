package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/crillab/gophertable/bf"
	"github.com/crillab/gophertable/internal/report"
	"github.com/crillab/gophertable/table"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodySize bounds the size of submitted programs.
const maxBodySize = 64 << 10

// Request is the JSON body accepted by POST /table.
type Request struct {
	Program string `json:"program"`
}

// Response is the JSON rendering of a table.
type Response struct {
	Variables []string   `json:"variables"`
	Rows      [][]string `json:"rows"`
	Text      string     `json:"text"`
}

// ErrorResponse is the JSON rendering of a failure.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// Server exposes table generation over HTTP.
type Server struct {
	opts     []table.Option
	registry *prometheus.Registry
	metrics  *Metrics
	logger   *slog.Logger
}

// NewServer creates a server generating tables with opts.
// Its metrics are registered on a dedicated registry, served on /metrics.
func NewServer(logger *slog.Logger, opts ...table.Option) *Server {
	reg := prometheus.NewRegistry()
	return &Server{
		opts:     opts,
		registry: reg,
		metrics:  NewMetrics(reg),
		logger:   logger,
	}
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Post("/table", s.handleTable)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, "ok\n")
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	asJSON := strings.Contains(r.Header.Get("Accept"), "application/json")
	src, err := readProgram(w, r)
	if err != nil {
		s.fail(w, asJSON, http.StatusBadRequest, "request", err)
		return
	}
	prog, err := bf.ParseString(src)
	if err != nil {
		s.fail(w, asJSON, http.StatusBadRequest, report.KindParse, err)
		return
	}
	t, err := table.Generate(prog, append([]table.Option{table.WithLogger(s.logger)}, s.opts...)...)
	if err != nil {
		kind := report.Kind(err)
		status := http.StatusUnprocessableEntity
		if kind == report.KindInternal {
			status = http.StatusInternalServerError
		}
		s.fail(w, asJSON, status, kind, err)
		return
	}
	header := t.Header()
	s.metrics.success(len(header) - 1)
	if !asJSON {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, t.String())
		return
	}
	writeJSON(w, http.StatusOK, Response{
		Variables: header[:len(header)-1],
		Rows:      t.Data(),
		Text:      t.String(),
	})
}

// readProgram returns the program of the request: the "program" field of a JSON body,
// or the raw body otherwise.
func readProgram(w http.ResponseWriter, r *http.Request) (string, error) {
	body := http.MaxBytesReader(w, r.Body, maxBodySize)
	defer body.Close()
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req Request
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			return "", fmt.Errorf("invalid JSON body: %w", err)
		}
		return req.Program, nil
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("could not read body: %w", err)
	}
	return string(data), nil
}

func (s *Server) fail(w http.ResponseWriter, asJSON bool, status int, kind string, err error) {
	s.metrics.failure(kind)
	s.logger.Debug("table request failed", "kind", kind, "status", status, "error", err)
	if asJSON {
		writeJSON(w, status, ErrorResponse{Error: err.Error(), Kind: kind})
		return
	}
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
