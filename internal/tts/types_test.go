package tts

import (
	"errors"
	"strings"
	"testing"
)

func validRequest() Request {
	req := NewRequest()
	req.Text = "Hello"
	req.Voice = "en-US-Wavenet-A"
	return req
}

func TestNewRequest_Defaults(t *testing.T) {
	req := NewRequest()

	if req.Speed != DefaultSpeed {
		t.Errorf("Expected default speed %g, got %g", DefaultSpeed, req.Speed)
	}
	if req.Pitch != DefaultPitch {
		t.Errorf("Expected default pitch %g, got %g", DefaultPitch, req.Pitch)
	}
}

func TestValidate_OK(t *testing.T) {
	req := validRequest()
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() failed on valid request: %v", err)
	}
}

func TestValidate_TrimsText(t *testing.T) {
	req := validRequest()
	req.Text = "  Hello world \n"

	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if req.Text != "Hello world" {
		t.Errorf("Expected trimmed text 'Hello world', got '%s'", req.Text)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
		field  string
	}{
		{"empty text", func(r *Request) { r.Text = "" }, "text"},
		{"whitespace text", func(r *Request) { r.Text = "   " }, "text"},
		{"text too long", func(r *Request) { r.Text = strings.Repeat("a", MaxTextLength+1) }, "text"},
		{"missing voice", func(r *Request) { r.Voice = "" }, "voice"},
		{"speed too low", func(r *Request) { r.Speed = 0.1 }, "speed"},
		{"speed too high", func(r *Request) { r.Speed = 4.5 }, "speed"},
		{"pitch too low", func(r *Request) { r.Pitch = -20.5 }, "pitch"},
		{"pitch too high", func(r *Request) { r.Pitch = 20.5 }, "pitch"},
		{"zero speed", func(r *Request) { r.Speed = 0 }, "speed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Expected failing field '%s', got '%s'", tt.field, verr.Field)
			}
		})
	}
}

func TestValidate_BoundaryValues(t *testing.T) {
	req := validRequest()
	req.Text = strings.Repeat("a", MaxTextLength)
	req.Speed = MinSpeed
	req.Pitch = MaxPitch
	if err := req.Validate(); err != nil {
		t.Errorf("Validate() rejected boundary values: %v", err)
	}

	req = validRequest()
	req.Speed = MaxSpeed
	req.Pitch = MinPitch
	if err := req.Validate(); err != nil {
		t.Errorf("Validate() rejected boundary values: %v", err)
	}
}

func TestValidate_RangesCheckedEvenWithBadText(t *testing.T) {
	// Trimming to empty must be caught before any external call, and an
	// out-of-range speed must be rejected regardless of other fields
	req := validRequest()
	req.Speed = 100

	err := req.Validate()
	if err == nil {
		t.Fatal("Expected validation error for out-of-range speed")
	}
}
