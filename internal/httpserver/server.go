// Package httpserver exposes the health-check endpoint container platforms
// probe to keep the bot process alive.
package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/blackmichael/photo-challenge-bot/internal/config"
)

// ReadinessReporter reports whether the bot's gateway session is connected.
type ReadinessReporter interface {
	Ready() bool
}

// Server is the HTTP health server.
type Server struct {
	cfg        *config.Config
	bot        ReadinessReporter
	logger     *slog.Logger
	httpServer *http.Server
}

// NewServer creates the health server for the given bot.
func NewServer(cfg *config.Config, bot ReadinessReporter, logger *slog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		bot:    bot,
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleHealth)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      withLogging(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for HTTP requests. It blocks until the server is
// shut down or an error occurs.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// handleHealth answers 200 while the process is up. The body distinguishes a
// connected gateway from one still connecting, which is a valid state during
// startup and must not fail the probe.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	bot := "connecting"
	if s.bot.Ready() {
		bot = "ready"
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"bot":    bot,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func withLogging(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration", time.Since(start),
		)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
