package tts

import (
	"strings"

	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
)

// FallbackLanguageCode is used when a voice name carries no parseable locale
const FallbackLanguageCode = "en-US"

// ExtractLanguageCode derives a language code from a voice name.
// Voice names typically follow the pattern "en-US-Wavenet-A": the first two
// hyphen-separated segments form the locale. Names with fewer than two
// segments fall back to en-US.
func ExtractLanguageCode(voiceName string) string {
	parts := strings.Split(voiceName, "-")
	if len(parts) >= 2 {
		return parts[0] + "-" + parts[1]
	}
	return FallbackLanguageCode
}

// FilterVoices projects the raw voice catalog onto VoiceInfo entries for the
// supported language prefixes. Each catalog voice contributes at most one
// entry, keyed by the first of its locale codes whose lowercase 2-letter
// prefix is in the supported set. Catalog order is preserved; an empty
// result is valid.
func FilterVoices(voices []*texttospeechpb.Voice, supportedLanguages []string) []VoiceInfo {
	supported := make(map[string]struct{}, len(supportedLanguages))
	for _, lang := range supportedLanguages {
		supported[strings.ToLower(lang)] = struct{}{}
	}

	filtered := make([]VoiceInfo, 0, len(voices))
	for _, voice := range voices {
		for _, languageCode := range voice.GetLanguageCodes() {
			prefix := strings.ToLower(strings.SplitN(languageCode, "-", 2)[0])
			if _, ok := supported[prefix]; !ok {
				continue
			}
			filtered = append(filtered, VoiceInfo{
				Name:              voice.GetName(),
				LanguageCode:      languageCode,
				Gender:            genderString(voice.GetSsmlGender()),
				NaturalSampleRate: voice.GetNaturalSampleRateHertz(),
			})
			break // one entry per voice, first accepted locale wins
		}
	}
	return filtered
}

func genderString(gender texttospeechpb.SsmlVoiceGender) string {
	switch gender {
	case texttospeechpb.SsmlVoiceGender_MALE:
		return "male"
	case texttospeechpb.SsmlVoiceGender_FEMALE:
		return "female"
	case texttospeechpb.SsmlVoiceGender_NEUTRAL:
		return "neutral"
	default:
		return "unspecified"
	}
}
