package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/session"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/translator"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidItemID: http.StatusBadRequest,
	ErrInvalidJSON:   http.StatusBadRequest,

	validators.ErrInvalidItem:      http.StatusBadRequest,
	session.ErrUnsupportedLanguage: http.StatusBadRequest,

	store.ErrItemNotFound:     http.StatusNotFound,
	store.ErrStoreUnavailable: http.StatusServiceUnavailable,

	translator.ErrUnavailable: http.StatusServiceUnavailable,
	translator.ErrTranslation: http.StatusBadGateway,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
