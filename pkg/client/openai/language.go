package openai

import (
	"slices"
	"strings"

	// Packages
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	// Languages accepted by the transcription endpoint, as two-letter codes
	Languages = strings.Fields(`af ar hy az be bs bg ca zh hr cs da nl en et fi
		fr gl de el he hi hu is id it ja kn kk ko lv lt mk ms mr mi ne no fa pl pt
		ro ru sr sk sl es sw sv tl ta th tr uk ur vi cy`)

	// English language name to code
	languageName = make(map[string]string, len(Languages))
)

//////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func init() {
	namer := display.English.Languages()
	for _, code := range Languages {
		if name := namer.Name(language.Make(code)); name != "" {
			languageName[strings.ToLower(name)] = code
		}
	}
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// LanguageCode returns the english name and two-letter OpenAI language
// code for a language name or code, or empty strings if the language
// is not supported.
func LanguageCode(lang string) (string, string) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if code, exists := languageName[lang]; exists {
		return lang, code
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "", ""
	}
	base, _ := tag.Base()
	if code := base.String(); slices.Contains(Languages, code) {
		return strings.ToLower(display.English.Languages().Name(base)), code
	}
	return "", ""
}
