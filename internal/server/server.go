// Package server exposes the finished aggregates over HTTP for the
// presentation layer: JSON under /api/report, health and Prometheus metrics
// endpoints, and an optional static asset directory.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/additivelabs/additive-atlas/internal/analysis"
)

// Server serves the regulation report. The pipeline runs per request, the
// same way the original page rebuilt its aggregates on every load; the
// report is small and the source documents may change underneath us.
type Server struct {
	source    analysis.Source
	metrics   *Metrics
	addr      string
	staticDir string
}

// New creates a report server. staticDir may be empty to disable static
// file serving.
func New(addr string, source analysis.Source, staticDir string) *Server {
	return &Server{
		addr:      addr,
		source:    source,
		staticDir: staticDir,
		metrics:   NewMetrics(),
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/report", s.metrics.Middleware("/api/report", http.HandlerFunc(s.handleReport)))
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", s.metrics.Handler())
	if s.staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))
	}
	return mux
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Report server listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// reportResponse is the JSON shape consumed by the chart frontend.
type reportResponse struct {
	CategoryTally  any `json:"categoryTally"`
	FoodCategories any `json:"foodCategorySummary"`
	HighRisk       any `json:"highRiskSubstances"`
	UsEntries      any `json:"usEntries"`
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	report, err := analysis.Load(r.Context(), s.source)
	s.metrics.RecordLoad(err, time.Since(start))
	if err != nil {
		slog.Error("Report load failed", "error", err)
		http.Error(w, "unable to load regulation datasets", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(reportResponse{
		CategoryTally:  report.CategoryTally,
		FoodCategories: report.FoodCategories,
		HighRisk:       report.HighRisk,
		UsEntries:      report.UsEntries,
	}); err != nil {
		slog.Error("Failed to encode report", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
