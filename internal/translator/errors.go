package translator

import "errors"

var (
	// ErrUnavailable is returned when no credential is configured.
	ErrUnavailable = errors.New("translation is unavailable: no API key configured")

	// ErrTranslation wraps any failure of a configured provider: network,
	// quota, rejected request or an empty/malformed response.
	ErrTranslation = errors.New("translation failed")

	ErrUnknownProvider = errors.New("unknown translation provider")
)
