// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter lets the terminal client work against a running web
// application instead of opening the store file itself.
//
// [ServerAdapter] satisfies both [service.ItemService] and
// [translator.Translator], so the controller cannot tell a remote session
// from a local one. HTTP statuses are mapped back to the sentinel errors of
// the store, validators and translator packages by mapHTTPError, so callers
// keep using [errors.Is] (e.g. [store.ErrItemNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/translator"
	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the remote counterpart of the local item service and
// translator.
type ServerAdapter interface {
	service.ItemService
	translator.Translator

	// Languages fetches the offered languages and whether the server can
	// translate. The answer also drives [translator.Translator.Enabled].
	Languages(ctx context.Context) (models.LanguagesResponse, error)

	// Version returns the server's build information.
	Version(ctx context.Context) (models.VersionResponse, error)
}
