package translator

import "context"

type unavailableTranslator struct{}

// NewUnavailable returns a [Translator] that always fails with
// [ErrUnavailable].
func NewUnavailable() Translator {
	return unavailableTranslator{}
}

func (unavailableTranslator) Translate(context.Context, string, string) (string, error) {
	return "", ErrUnavailable
}

func (unavailableTranslator) Enabled() bool {
	return false
}
