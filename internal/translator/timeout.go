package translator

import (
	"context"
	"time"
)

type timeoutTranslator struct {
	next    Translator
	timeout time.Duration
}

// WithTimeout bounds every call of next by timeout. A non-positive timeout
// returns next unchanged.
func WithTimeout(next Translator, timeout time.Duration) Translator {
	if timeout <= 0 {
		return next
	}
	return &timeoutTranslator{next: next, timeout: timeout}
}

func (t *timeoutTranslator) Translate(ctx context.Context, text, language string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	return t.next.Translate(ctx, text, language)
}

func (t *timeoutTranslator) Enabled() bool {
	return t.next.Enabled()
}
