package translator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

type breakerTranslator struct {
	next Translator
	cb   *gobreaker.CircuitBreaker
}

// WithBreaker opens a circuit after failures consecutive errors of next and
// rejects calls for cooldown. Rejections are reported as [ErrTranslation].
// Calls that fail with [ErrUnavailable] or a cancelled context do not count.
func WithBreaker(next Translator, failures uint32, cooldown time.Duration) Translator {
	if failures == 0 {
		return next
	}

	settings := gobreaker.Settings{
		Name:    "translator",
		Timeout: cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrUnavailable) || errors.Is(err, context.Canceled)
		},
	}

	return &breakerTranslator{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

func (b *breakerTranslator) Translate(ctx context.Context, text, language string) (string, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Translate(ctx, text, language)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", fmt.Errorf("%w: %w", ErrTranslation, err)
	}
	if err != nil {
		return "", err
	}

	return result.(string), nil
}

func (b *breakerTranslator) Enabled() bool {
	return b.next.Enabled()
}

// State exposes the breaker state for diagnostics.
func (b *breakerTranslator) State() gobreaker.State {
	return b.cb.State()
}
