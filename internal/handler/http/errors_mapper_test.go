package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-todo-keeper/internal/session"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/translator"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid id", ErrInvalidItemID, http.StatusBadRequest},
		{"invalid json", errors.Join(ErrInvalidJSON, errors.New("unexpected EOF")), http.StatusBadRequest},
		{"empty title", validators.ErrEmptyTitle, http.StatusBadRequest},
		{"bad priority", fmt.Errorf("%w: %w", validators.ErrInvalidPriority, errors.New("urgent")), http.StatusBadRequest},
		{"unknown language", validators.ErrUnknownLanguage, http.StatusBadRequest},
		{"unsupported session language", session.ErrUnsupportedLanguage, http.StatusBadRequest},
		{"not found", store.ErrItemNotFound, http.StatusNotFound},
		{"store unavailable", fmt.Errorf("%w: %w", store.ErrStoreUnavailable, errors.New("permission denied")), http.StatusServiceUnavailable},
		{"translation unavailable", translator.ErrUnavailable, http.StatusServiceUnavailable},
		{"translation failed", fmt.Errorf("%w: rate limited", translator.ErrTranslation), http.StatusBadGateway},
		{"query failure", fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("locked")), http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
