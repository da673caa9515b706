// Package translator sends item text to a text-generation API and returns
// the translation.
//
// Every call is a single request/response exchange with no retries. When no
// credential is configured, [New] returns a translator that fails with
// [ErrUnavailable] before any network activity.
package translator
