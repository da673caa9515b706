package models

// DefaultLanguage is the language selected when a session starts.
const DefaultLanguage = "English"

// Languages is the fixed set of translation targets offered to the user.
var Languages = []string{
	"English",
	"Spanish",
	"French",
	"German",
	"Hindi",
	"Marathi",
	"Japanese",
	"Chinese (Simplified)",
	"Korean",
	"Portuguese",
}

// IsSupportedLanguage reports whether name is one of [Languages].
func IsSupportedLanguage(name string) bool {
	for _, l := range Languages {
		if l == name {
			return true
		}
	}
	return false
}

// TranslateRequest is the body of a translation call on the JSON API.
type TranslateRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// TranslateResponse carries the translated text.
type TranslateResponse struct {
	Text string `json:"text"`
}
