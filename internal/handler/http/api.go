package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var errEmptyText = fmt.Errorf("%w: text is required", validators.ErrInvalidItem)

func itemIDFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidItemID
	}
	return id, nil
}

// writeError logs err and writes the JSON error envelope with the mapped status.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, status)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ItemService.List(r.Context())
	if err != nil {
		h.writeError(w, r, "*Handler.listItems", err)
		return
	}

	utils.WriteJSON(w, models.ItemsResponse{Items: items, Length: len(items)}, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var create models.ItemCreate
	if err := utils.ReadJSON(r, &create); err != nil {
		h.writeError(w, r, "*Handler.createItem", errors.Join(ErrInvalidJSON, err))
		return
	}

	item, err := h.services.ItemService.Create(r.Context(), create)
	if err != nil {
		h.writeError(w, r, "*Handler.createItem", err)
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, "*Handler.getItem", err)
		return
	}

	item, err := h.services.ItemService.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "*Handler.getItem", err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, "*Handler.updateItem", err)
		return
	}

	var update models.ItemUpdate
	if err = utils.ReadJSON(r, &update); err != nil {
		h.writeError(w, r, "*Handler.updateItem", errors.Join(ErrInvalidJSON, err))
		return
	}

	item, err := h.services.ItemService.Update(r.Context(), id, update)
	if err != nil {
		h.writeError(w, r, "*Handler.updateItem", err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

// removeItem answers 200 with {"deleted": false} for a missing id.
func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, "*Handler.removeItem", err)
		return
	}

	deleted, err := h.services.ItemService.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "*Handler.removeItem", err)
		return
	}
	h.sessions.EvictItem(id)

	utils.WriteJSON(w, models.DeleteResponse{Deleted: deleted}, http.StatusOK)
}

func (h *Handler) translate(w http.ResponseWriter, r *http.Request) {
	var req models.TranslateRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		h.writeError(w, r, "*Handler.translate", errors.Join(ErrInvalidJSON, err))
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		h.writeError(w, r, "*Handler.translate", errEmptyText)
		return
	}
	if err := validators.NewItemValidator().Validate(r.Context(), req.Language, validators.FieldLanguage); err != nil {
		h.writeError(w, r, "*Handler.translate", err)
		return
	}

	text, err := h.translator.Translate(r.Context(), req.Text, req.Language)
	if err != nil {
		h.writeError(w, r, "*Handler.translate", err)
		return
	}

	utils.WriteJSON(w, models.TranslateResponse{Text: text}, http.StatusOK)
}

func (h *Handler) getLanguages(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.LanguagesResponse{
		Languages:          models.Languages,
		Default:            models.DefaultLanguage,
		TranslationEnabled: h.translator.Enabled(),
	}, http.StatusOK)
}
