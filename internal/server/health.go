package server

import (
	"context"
	"net/http"
	"os"
	"time"
)

type healthResponse struct {
	Status            string `json:"status"`
	TTSClient         string `json:"tts_client"`
	GoogleCredentials bool   `json:"google_credentials"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.synth == nil {
		writeError(w, http.StatusServiceUnavailable, clientUnavailableDetail)
		return
	}

	_, hasCreds := os.LookupEnv("GOOGLE_APPLICATION_CREDENTIALS")
	writeJSON(w, http.StatusOK, healthResponse{
		Status:            "healthy",
		TTSClient:         "connected",
		GoogleCredentials: hasCreds,
	})
}

// DependencyStatus reports one collaborator's state in the readiness payload
type DependencyStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Service      string                      `json:"service"`
	Version      string                      `json:"version"`
	Timestamp    string                      `json:"timestamp"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}

// handleReady checks the process-wide collaborators. A missing TTS client
// makes the service not ready; a missing activity log pool does not, since
// logging is optional by configuration.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	dependencies := make(map[string]DependencyStatus)
	ready := true

	if s.synth != nil {
		dependencies["tts_client"] = DependencyStatus{Status: "healthy"}
	} else {
		dependencies["tts_client"] = DependencyStatus{
			Status:  "unhealthy",
			Message: "client not initialized",
		}
		ready = false
	}

	if s.pool != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := s.pool.Ping(ctx); err != nil {
			dependencies["activity_log"] = DependencyStatus{
				Status:  "unhealthy",
				Message: err.Error(),
			}
			ready = false
		} else {
			dependencies["activity_log"] = DependencyStatus{Status: "healthy"}
		}
	} else {
		dependencies["activity_log"] = DependencyStatus{Status: "disabled"}
	}

	resp := readinessResponse{
		Status:       "ready",
		Service:      s.cfg.ServiceName,
		Version:      Version,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Dependencies: dependencies,
	}

	status := http.StatusOK
	if !ready {
		resp.Status = "not_ready"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}
