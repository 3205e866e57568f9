// Package server exposes the HTTP surface of the TTS façade: request
// validation, synthesis orchestration, voice catalog listing, and the
// best-effort activity logging side channel.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/lexiqai/tts-server/internal/activitylog"
	"github.com/lexiqai/tts-server/internal/config"
	"github.com/lexiqai/tts-server/internal/observability"
	"github.com/lexiqai/tts-server/internal/tts"
)

// Version is reported by / and /ready
const Version = "1.0.0"

// ActivityRecorder is the logging side channel. Record must never fail the
// caller; *activitylog.Recorder is the production implementation.
type ActivityRecorder interface {
	Record(ctx context.Context, entry activitylog.Entry)
}

// Server holds the process-wide collaborators. synth is nil when the Google
// client failed to initialize at startup: the server then runs degraded and
// every synthesis endpoint reports unavailable instead of crashing.
type Server struct {
	cfg      *config.Config
	synth    tts.Synthesizer
	recorder ActivityRecorder
	pool     *pgxpool.Pool // nil when activity logging is disabled
	logger   zerolog.Logger
}

// New wires a Server. Any of synth and pool may be nil; recorder must not be.
func New(cfg *config.Config, synth tts.Synthesizer, recorder ActivityRecorder, pool *pgxpool.Pool) *Server {
	return &Server{
		cfg:      cfg,
		synth:    synth,
		recorder: recorder,
		pool:     pool,
		logger:   observability.GetLogger(),
	}
}

// Routes builds the HTTP handler tree
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ready", s.handleReady)
	mux.HandleFunc("GET /voices", s.handleVoices)
	mux.HandleFunc("POST /tts", s.handleTTS)
	mux.HandleFunc("POST /tts/base64", s.handleTTSBase64)

	if s.cfg.MetricsEnabled {
		mux.Handle("GET /metrics", promhttp.Handler())
	}

	return s.withRequestID(mux)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
