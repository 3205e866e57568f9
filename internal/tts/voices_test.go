package tts

import (
	"testing"

	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
)

func TestExtractLanguageCode(t *testing.T) {
	tests := []struct {
		voice string
		want  string
	}{
		{"en-US-Wavenet-A", "en-US"},
		{"ru-RU-Standard-B", "ru-RU"},
		{"he-IL-Wavenet-C", "he-IL"},
		{"en-GB", "en-GB"},
		{"x", "en-US"},
		{"", "en-US"},
		{"nohyphens", "en-US"},
	}

	for _, tt := range tests {
		if got := ExtractLanguageCode(tt.voice); got != tt.want {
			t.Errorf("ExtractLanguageCode(%q) = %q, want %q", tt.voice, got, tt.want)
		}
	}
}

func TestFilterVoices_FirstMatchWins(t *testing.T) {
	voices := []*texttospeechpb.Voice{
		{
			Name:                   "Multi-Voice",
			LanguageCodes:          []string{"fr-FR", "en-GB", "en-US"},
			SsmlGender:             texttospeechpb.SsmlVoiceGender_FEMALE,
			NaturalSampleRateHertz: 24000,
		},
	}

	got := FilterVoices(voices, []string{"en", "ru", "he"})
	if len(got) != 1 {
		t.Fatalf("Expected exactly 1 voice, got %d", len(got))
	}
	if got[0].LanguageCode != "en-GB" {
		t.Errorf("Expected first accepted locale 'en-GB', got '%s'", got[0].LanguageCode)
	}
	if got[0].Gender != "female" {
		t.Errorf("Expected gender 'female', got '%s'", got[0].Gender)
	}
	if got[0].NaturalSampleRate != 24000 {
		t.Errorf("Expected sample rate 24000, got %d", got[0].NaturalSampleRate)
	}
}

func TestFilterVoices_PreservesOrderAndSkipsUnsupported(t *testing.T) {
	voices := []*texttospeechpb.Voice{
		{Name: "A", LanguageCodes: []string{"en-US"}, SsmlGender: texttospeechpb.SsmlVoiceGender_MALE, NaturalSampleRateHertz: 24000},
		{Name: "B", LanguageCodes: []string{"de-DE"}, SsmlGender: texttospeechpb.SsmlVoiceGender_FEMALE, NaturalSampleRateHertz: 24000},
		{Name: "C", LanguageCodes: []string{"RU-ru"}, SsmlGender: texttospeechpb.SsmlVoiceGender_NEUTRAL, NaturalSampleRateHertz: 16000},
	}

	got := FilterVoices(voices, []string{"en", "ru", "he"})
	if len(got) != 2 {
		t.Fatalf("Expected 2 voices, got %d", len(got))
	}
	if got[0].Name != "A" || got[1].Name != "C" {
		t.Errorf("Expected order [A C], got [%s %s]", got[0].Name, got[1].Name)
	}
	// Prefix matching is case-insensitive but the emitted code is verbatim
	if got[1].LanguageCode != "RU-ru" {
		t.Errorf("Expected verbatim locale 'RU-ru', got '%s'", got[1].LanguageCode)
	}
	if got[1].Gender != "neutral" {
		t.Errorf("Expected gender 'neutral', got '%s'", got[1].Gender)
	}
}

func TestFilterVoices_Empty(t *testing.T) {
	got := FilterVoices(nil, []string{"en"})
	if got == nil {
		t.Fatal("Expected non-nil empty slice")
	}
	if len(got) != 0 {
		t.Errorf("Expected empty result, got %d entries", len(got))
	}
}

func TestFilterVoices_UnspecifiedGender(t *testing.T) {
	voices := []*texttospeechpb.Voice{
		{Name: "A", LanguageCodes: []string{"en-US"}, NaturalSampleRateHertz: 24000},
	}

	got := FilterVoices(voices, []string{"en"})
	if len(got) != 1 {
		t.Fatalf("Expected 1 voice, got %d", len(got))
	}
	if got[0].Gender != "unspecified" {
		t.Errorf("Expected gender 'unspecified', got '%s'", got[0].Gender)
	}
}
