package models

// ItemsResponse is the body of a list call on the JSON API.
type ItemsResponse struct {
	// Items holds every stored item in store order.
	Items []Item `json:"items"`

	// Length is len(Items), provided so clients can validate the payload
	// without iterating it.
	Length int `json:"length"`
}

// DeleteResponse reports whether a delete removed a row.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

// LanguagesResponse lists the offered translation targets.
type LanguagesResponse struct {
	Languages []string `json:"languages"`
	Default   string   `json:"default"`

	// TranslationEnabled is false when no credential is configured.
	TranslationEnabled bool `json:"translation_enabled"`
}

// ErrorResponse is the JSON error envelope written by API handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}
