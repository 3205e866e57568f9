package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/lexiqai/tts-server/internal/activitylog"
	"github.com/lexiqai/tts-server/internal/observability"
	"github.com/lexiqai/tts-server/internal/tts"
)

type rootResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{
		Message: "Google TTS Server",
		Version: Version,
		Endpoints: map[string]string{
			"tts":        "POST /tts - Text to speech synthesis",
			"tts_base64": "POST /tts/base64 - Text to speech synthesis (base64 JSON)",
			"voices":     "GET /voices - List available voices",
			"health":     "GET /health - Health check",
		},
	})
}

func (s *Server) handleVoices(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	if s.synth == nil {
		observability.RecordVoicesRequest("unavailable")
		writeError(w, http.StatusServiceUnavailable, clientUnavailableDetail)
		return
	}

	voices, err := s.synth.ListVoices(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch voice catalog")
		observability.RecordVoicesRequest("error")
		status, detail := translateVoicesError(err)
		writeError(w, status, detail)
		return
	}

	if len(voices) == 0 {
		// Valid but worth noticing: the catalog had nothing for the
		// supported languages
		logger.Warn().Msg("No voices found for supported languages")
	}
	if voices == nil {
		voices = []tts.VoiceInfo{}
	}

	observability.RecordVoicesRequest("success")
	writeJSON(w, http.StatusOK, voices)
}

// synthesize runs the shared request path of both synthesis endpoints:
// decode, validate, call the external capability, and record exactly one
// activity log entry for the attempt. On failure the entry is written before
// the error response, and a recorder failure never masks the original error.
func (s *Server) synthesize(w http.ResponseWriter, r *http.Request, activityType activitylog.ActivityType) ([]byte, bool) {
	logger := zerolog.Ctx(r.Context())

	req := tts.NewRequest()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON request body")
		return nil, false
	}

	// Validation failures are terminal and local: no activity log entry
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	if s.synth == nil {
		writeError(w, http.StatusServiceUnavailable, clientUnavailableDetail)
		return nil, false
	}

	logger.Info().
		Str("voice", req.Voice).
		Int("text_length", len(req.Text)).
		Str("activity_type", string(activityType)).
		Msg("Synthesizing speech")

	start := time.Now()
	audio, err := s.synth.Synthesize(r.Context(), req)
	if err != nil {
		logger.Error().Err(err).Str("voice", req.Voice).Msg("Synthesis failed")

		httpStatus, activityStatus, detail := translateSynthesisError(err)
		s.recorder.Record(r.Context(), activitylog.Entry{
			ServiceName:  s.cfg.ServiceName,
			ActivityType: activityType,
			Request:      req,
			Response:     map[string]any{"error": err.Error()},
			Status:       activityStatus,
		})
		observability.RecordSynthesis(string(activityType), string(activityStatus), time.Since(start), 0)

		writeError(w, httpStatus, detail)
		return nil, false
	}

	s.recorder.Record(r.Context(), activitylog.Entry{
		ServiceName:  s.cfg.ServiceName,
		ActivityType: activityType,
		Request:      req,
		Response:     map[string]any{"size": len(audio)},
		Status:       activitylog.StatusSuccess,
	})
	observability.RecordSynthesis(string(activityType), "success", time.Since(start), len(audio))

	return audio, true
}

func (s *Server) handleTTS(w http.ResponseWriter, r *http.Request) {
	audio, ok := s.synthesize(w, r, activitylog.TypeTTS)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition", "attachment; filename=speech.mp3")
	w.Header().Set("Content-Length", strconv.Itoa(len(audio)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(audio)
}

type base64Response struct {
	AudioBase64 string `json:"audio_base64"`
	ContentType string `json:"content_type"`
	// Size is the byte length of the decoded audio, not of the encoded string
	Size int `json:"size"`
}

func (s *Server) handleTTSBase64(w http.ResponseWriter, r *http.Request) {
	audio, ok := s.synthesize(w, r, activitylog.TypeTTSBase64)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, base64Response{
		AudioBase64: base64.StdEncoding.EncodeToString(audio),
		ContentType: "audio/mpeg",
		Size:        len(audio),
	})
}
