package translator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTranslator returns the queued results in order.
type stubTranslator struct {
	results []error
	calls   int
	lastCtx context.Context
}

func (s *stubTranslator) Translate(ctx context.Context, text, language string) (string, error) {
	s.lastCtx = ctx
	err := s.results[min(s.calls, len(s.results)-1)]
	s.calls++
	if err != nil {
		return "", err
	}
	return language + ":" + text, nil
}

func (s *stubTranslator) Enabled() bool { return true }

func TestWithBreaker_ZeroFailuresReturnsNext(t *testing.T) {
	next := &stubTranslator{results: []error{nil}}
	assert.Same(t, Translator(next), WithBreaker(next, 0, time.Second))
}

func TestWithBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	boom := errors.New("quota")
	next := &stubTranslator{results: []error{
		errors.Join(ErrTranslation, boom),
		errors.Join(ErrTranslation, boom),
		nil,
	}}

	tr := WithBreaker(next, 2, time.Minute)

	for range 2 {
		_, err := tr.Translate(context.Background(), "Buy milk", "Korean")
		assert.ErrorIs(t, err, boom)
	}

	// open: the provider is not called
	_, err := tr.Translate(context.Background(), "Buy milk", "Korean")
	assert.ErrorIs(t, err, ErrTranslation)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 2, next.calls)
	assert.Equal(t, gobreaker.StateOpen, tr.(*breakerTranslator).State())
}

func TestWithBreaker_PassesThroughSuccess(t *testing.T) {
	next := &stubTranslator{results: []error{nil}}
	tr := WithBreaker(next, 3, time.Minute)

	got, err := tr.Translate(context.Background(), "Buy milk", "Hindi")
	require.NoError(t, err)
	assert.Equal(t, "Hindi:Buy milk", got)
	assert.True(t, tr.Enabled())
}

func TestWithBreaker_UnavailableDoesNotTrip(t *testing.T) {
	next := &stubTranslator{results: []error{ErrUnavailable}}
	tr := WithBreaker(next, 1, time.Minute)

	for range 3 {
		_, err := tr.Translate(context.Background(), "x", "Hindi")
		assert.ErrorIs(t, err, ErrUnavailable)
	}
	assert.Equal(t, 3, next.calls)
}

func TestWithTimeout(t *testing.T) {
	next := &stubTranslator{results: []error{nil}}
	assert.Same(t, Translator(next), WithTimeout(next, 0))

	tr := WithTimeout(next, time.Second)
	_, err := tr.Translate(context.Background(), "x", "Marathi")
	require.NoError(t, err)

	deadline, ok := next.lastCtx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
}

func TestNewUnavailable(t *testing.T) {
	tr := NewUnavailable()
	assert.False(t, tr.Enabled())

	_, err := tr.Translate(context.Background(), "x", "English")
	assert.ErrorIs(t, err, ErrUnavailable)
}
