package tts

import (
	"context"
	"fmt"
	"time"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
)

// Synthesizer is the capability the HTTP layer depends on. *Client is the
// production implementation; tests substitute fakes.
type Synthesizer interface {
	// Synthesize converts text to MP3 audio bytes
	Synthesize(ctx context.Context, req Request) ([]byte, error)

	// ListVoices returns the filtered voice catalog
	ListVoices(ctx context.Context) ([]VoiceInfo, error)
}

// Client wraps the Google Cloud TTS client with the request shape and
// catalog filtering this service exposes
type Client struct {
	api                *texttospeech.Client
	supportedLanguages []string
	timeout            time.Duration
}

// NewClient creates a Google Cloud TTS client. Credentials come from the
// environment (GOOGLE_APPLICATION_CREDENTIALS or ambient ADC); construction
// fails when none can be resolved.
func NewClient(ctx context.Context, supportedLanguages []string, timeout time.Duration) (*Client, error) {
	api, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google TTS client: %w", err)
	}

	return &Client{
		api:                api,
		supportedLanguages: supportedLanguages,
		timeout:            timeout,
	}, nil
}

// Synthesize converts text to MP3 audio bytes using the voice named in the
// request. The language code is derived from the voice name; speed and pitch
// map onto the API's speaking rate and pitch. The call is bounded by the
// configured timeout.
func (c *Client) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{
				Text: req.Text,
			},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: ExtractLanguageCode(req.Voice),
			Name:         req.Voice,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
			SpeakingRate:  req.Speed,
			Pitch:         req.Pitch,
		},
	})
	if err != nil {
		return nil, err
	}

	return resp.GetAudioContent(), nil
}

// ListVoices fetches the full voice catalog and filters it to the supported
// languages. An empty result is not an error; callers decide whether to warn.
func (c *Client) ListVoices(ctx context.Context) ([]VoiceInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.ListVoices(ctx, &texttospeechpb.ListVoicesRequest{})
	if err != nil {
		return nil, err
	}

	return FilterVoices(resp.GetVoices(), c.supportedLanguages), nil
}

// Close releases the underlying API client
func (c *Client) Close() error {
	return c.api.Close()
}
