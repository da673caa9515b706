package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/translator"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	translationEnabled atomic.Bool

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It normalises the base URL from cfg.HTTPAddress and bounds
// each request by cfg.RequestTimeout. No request is sent until the first
// call; translation reports disabled until [ServerAdapter.Languages] says
// otherwise.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpServerAdapter) itemRequest(ctx context.Context, id int64) *resty.Request {
	return h.request(ctx).SetPathParam("id", strconv.FormatInt(id, 10))
}

// send checks the transport error and the status of one exchange.
func (h *httpServerAdapter) send(funcName string, resp *resty.Response, err error, unavailable error) error {
	if err != nil {
		h.logger.Err(err).Str("func", funcName).Msg("request failed")
		return fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	}

	if err = mapHTTPError(resp, unavailable); err != nil {
		h.logger.Warn().Err(err).Str("func", funcName).Int("status", resp.StatusCode()).Msg("server rejected request")
		return err
	}

	return nil
}

// List implements [service.ItemService] via GET /api/items.
func (h *httpServerAdapter) List(ctx context.Context) ([]models.Item, error) {
	var result models.ItemsResponse

	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/api/items")
	if err = h.send("httpServerAdapter.List", resp, err, store.ErrStoreUnavailable); err != nil {
		return nil, err
	}

	if result.Length != len(result.Items) {
		return nil, fmt.Errorf("%w: list length %d, got %d items", ErrUnexpectedResponse, result.Length, len(result.Items))
	}
	if result.Items == nil {
		result.Items = []models.Item{}
	}

	return result.Items, nil
}

// Create implements [service.ItemService] via POST /api/items.
func (h *httpServerAdapter) Create(ctx context.Context, create models.ItemCreate) (models.Item, error) {
	var item models.Item

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(create).
		SetResult(&item).
		Post("/api/items")
	if err = h.send("httpServerAdapter.Create", resp, err, store.ErrStoreUnavailable); err != nil {
		return models.Item{}, err
	}

	return item, nil
}

// Get implements [service.ItemService] via GET /api/items/{id}.
func (h *httpServerAdapter) Get(ctx context.Context, id int64) (models.Item, error) {
	var item models.Item

	resp, err := h.itemRequest(ctx, id).
		SetResult(&item).
		Get("/api/items/{id}")
	if err = h.send("httpServerAdapter.Get", resp, err, store.ErrStoreUnavailable); err != nil {
		return models.Item{}, err
	}

	return item, nil
}

// Update implements [service.ItemService] via PATCH /api/items/{id}.
func (h *httpServerAdapter) Update(ctx context.Context, id int64, update models.ItemUpdate) (models.Item, error) {
	var item models.Item

	resp, err := h.itemRequest(ctx, id).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&item).
		Patch("/api/items/{id}")
	if err = h.send("httpServerAdapter.Update", resp, err, store.ErrStoreUnavailable); err != nil {
		return models.Item{}, err
	}

	return item, nil
}

// Complete implements [service.ItemService] as a partial update of the
// completed flag.
func (h *httpServerAdapter) Complete(ctx context.Context, id int64) (models.Item, error) {
	return h.Update(ctx, id, models.MarkCompleted())
}

// Delete implements [service.ItemService] via DELETE /api/items/{id}.
func (h *httpServerAdapter) Delete(ctx context.Context, id int64) (bool, error) {
	var result models.DeleteResponse

	resp, err := h.itemRequest(ctx, id).
		SetResult(&result).
		Delete("/api/items/{id}")
	if err = h.send("httpServerAdapter.Delete", resp, err, store.ErrStoreUnavailable); err != nil {
		return false, err
	}

	return result.Deleted, nil
}

// Translate implements [translator.Translator] via POST /api/translate.
func (h *httpServerAdapter) Translate(ctx context.Context, text, language string) (string, error) {
	var result models.TranslateResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TranslateRequest{Text: text, Language: language}).
		SetResult(&result).
		Post("/api/translate")
	if err = h.send("httpServerAdapter.Translate", resp, err, translator.ErrUnavailable); err != nil {
		return "", err
	}

	return result.Text, nil
}

// Enabled implements [translator.Translator] with the answer of the last
// successful [httpServerAdapter.Languages] call.
func (h *httpServerAdapter) Enabled() bool {
	return h.translationEnabled.Load()
}

func (h *httpServerAdapter) Languages(ctx context.Context) (models.LanguagesResponse, error) {
	var result models.LanguagesResponse

	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/api/languages")
	if err = h.send("httpServerAdapter.Languages", resp, err, translator.ErrUnavailable); err != nil {
		return models.LanguagesResponse{}, err
	}

	h.translationEnabled.Store(result.TranslationEnabled)
	return result, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var result models.VersionResponse

	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/api/version")
	if err = h.send("httpServerAdapter.Version", resp, err, store.ErrStoreUnavailable); err != nil {
		return models.VersionResponse{}, err
	}

	return result, nil
}
