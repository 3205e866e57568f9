package tts

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Bounds enforced on inbound synthesis requests, matching the Google TTS
// API's own limits for text length, speaking rate and pitch.
const (
	MaxTextLength = 5000
	MinSpeed      = 0.25
	MaxSpeed      = 4.0
	MinPitch      = -20.0
	MaxPitch      = 20.0

	DefaultSpeed = 1.0
	DefaultPitch = 0.0
)

// Request is one synthesis request as received on the wire
type Request struct {
	Text  string  `json:"text"`
	Voice string  `json:"voice"`
	Speed float64 `json:"speed"`
	Pitch float64 `json:"pitch"`
}

// NewRequest returns a Request with default speed and pitch, so fields
// omitted from the request body keep their documented defaults after decoding
func NewRequest() Request {
	return Request{
		Speed: DefaultSpeed,
		Pitch: DefaultPitch,
	}
}

// ValidationError describes a request field that failed validation
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validate normalizes the request and checks it against the synthesis
// bounds. Text is trimmed in place; the first failing constraint is
// returned as a *ValidationError. Validate has no other side effects.
func (r *Request) Validate() error {
	r.Text = strings.TrimSpace(r.Text)

	if r.Text == "" {
		return &ValidationError{Field: "text", Reason: "must not be empty"}
	}
	if n := utf8.RuneCountInString(r.Text); n > MaxTextLength {
		return &ValidationError{
			Field:  "text",
			Reason: fmt.Sprintf("must be at most %d characters, got %d", MaxTextLength, n),
		}
	}
	if r.Voice == "" {
		return &ValidationError{Field: "voice", Reason: "must not be empty"}
	}
	if r.Speed < MinSpeed || r.Speed > MaxSpeed {
		return &ValidationError{
			Field:  "speed",
			Reason: fmt.Sprintf("must be between %g and %g, got %g", MinSpeed, MaxSpeed, r.Speed),
		}
	}
	if r.Pitch < MinPitch || r.Pitch > MaxPitch {
		return &ValidationError{
			Field:  "pitch",
			Reason: fmt.Sprintf("must be between %g and %g, got %g", MinPitch, MaxPitch, r.Pitch),
		}
	}
	return nil
}

// VoiceInfo is the stable projection of one voice catalog entry
type VoiceInfo struct {
	Name              string `json:"name"`
	LanguageCode      string `json:"language_code"`
	Gender            string `json:"gender"`
	NaturalSampleRate int32  `json:"natural_sample_rate"`
}
