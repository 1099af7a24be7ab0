package elevenlabs

import (
	"strings"

	// Packages
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// LanguageCode returns the english name and three-letter ElevenLabs language
// code for a two or three-letter language code, or empty strings if the code
// is not recognized.
func LanguageCode(lang string) (string, string) {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return "", ""
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", ""
	}
	return strings.ToLower(display.English.Languages().Name(base)), base.ISO3()
}
