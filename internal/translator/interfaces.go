package translator

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/translator_mock.go -package=mock

// Translator renders text in the target language.
type Translator interface {
	// Translate returns text translated into language.
	Translate(ctx context.Context, text, language string) (string, error)

	// Enabled reports whether a provider is configured.
	Enabled() bool
}
