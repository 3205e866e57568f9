package server

import (
	"fmt"
	"net/http"

	"github.com/lexiqai/tts-server/internal/activitylog"
	"github.com/lexiqai/tts-server/internal/tts"
)

const (
	clientUnavailableDetail = "TTS client not initialized. Check Google Cloud credentials."

	// Details for unclassified failures are intentionally generic; internal
	// error text never reaches the caller on the 500 path
	synthesisFailedDetail = "Text-to-speech synthesis failed"
	voicesFailedDetail    = "Failed to fetch voices"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Error: detail})
}

// translateSynthesisError maps an external synthesis failure onto the HTTP
// status, the activity log status, and the client-visible detail
func translateSynthesisError(err error) (int, activitylog.Status, string) {
	switch tts.Classify(err) {
	case tts.CategoryInvalidArgument:
		return http.StatusBadRequest,
			activitylog.StatusInvalidArgument,
			fmt.Sprintf("Invalid voice or parameters: %v", err)
	case tts.CategoryAPIError:
		return http.StatusServiceUnavailable,
			activitylog.StatusAPIError,
			fmt.Sprintf("Google TTS API error: %v", err)
	default:
		return http.StatusInternalServerError,
			activitylog.StatusError,
			synthesisFailedDetail
	}
}

// translateVoicesError maps a catalog fetch failure: any classified API
// failure reads as unavailable, everything else as an internal error
func translateVoicesError(err error) (int, string) {
	if tts.Classify(err) == tts.CategoryUnknown {
		return http.StatusInternalServerError, voicesFailedDetail
	}
	return http.StatusServiceUnavailable, fmt.Sprintf("Google API error: %v", err)
}
