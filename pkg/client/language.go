package client

import (
	// Packages
	"github.com/mutablelogic/go-voice/pkg/client/elevenlabs"
	"github.com/mutablelogic/go-voice/pkg/client/openai"
)

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// LanguageCode returns the two-letter (OpenAI) and three-letter (ElevenLabs)
// codes for a given language, or an empty string if the language
// is not recognized.
func LanguageCode(language string) (string, string) {
	_, code_openai := openai.LanguageCode(language)
	_, code_elevenlabs := elevenlabs.LanguageCode(language)
	if code_elevenlabs == "" && code_openai != "" {
		_, code_elevenlabs = elevenlabs.LanguageCode(code_openai)
	}
	if code_openai == "" && code_elevenlabs != "" {
		_, code_openai = openai.LanguageCode(code_elevenlabs)
	}
	return code_openai, code_elevenlabs
}
