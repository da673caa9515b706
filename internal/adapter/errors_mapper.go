package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/translator"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// remoteError carries the server's message while matching the sentinel of
// the status code.
type remoteError struct {
	kind    error
	status  int
	message string
}

func (e *remoteError) Error() string {
	return e.message
}

func (e *remoteError) Unwrap() error {
	return e.kind
}

// mapHTTPError returns nil for 2xx responses. unavailable is the sentinel a
// 503 maps to, since the store and the translator both answer 503.
func mapHTTPError(resp *resty.Response, unavailable error) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp)

	var kind error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		kind = validators.ErrInvalidItem
	case http.StatusNotFound:
		kind = store.ErrItemNotFound
	case http.StatusServiceUnavailable:
		kind = unavailable
	case http.StatusBadGateway:
		kind = translator.ErrTranslation
	case http.StatusInternalServerError:
		kind = ErrInternalServerError
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, resp.StatusCode(), message)
	}

	return &remoteError{kind: kind, status: resp.StatusCode(), message: message}
}

func errorMessage(resp *resty.Response) string {
	var envelope models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}

	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		return body
	}
	return http.StatusText(resp.StatusCode())
}
