package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/controller"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/session"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// boardPage is the data of templates/board.html.
type boardPage struct {
	Board      controller.Board
	Priorities []models.Priority
	Today      string
	NoItems    string
}

func (h *Handler) showBoard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	sess := h.currentSession(r)

	// load failures are already queued as notices and rendered on the page
	board, _ := h.controller.Board(r.Context(), sess)

	page := boardPage{
		Board:      board,
		Priorities: models.Priorities,
		Today:      models.Today().String(),
		NoItems:    controller.MsgNoItems,
	}

	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, "board.html", page); err != nil {
		log.Err(err).Str("func", "*Handler.showBoard").Msg("error rendering board")
		http.Error(w, "error rendering page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// backToBoard ends every board mutation so the browser re-renders the full state.
func backToBoard(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	sess := h.currentSession(r)

	form := controller.AddForm{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Priority:    r.PostFormValue("priority"),
		DueDate:     r.PostFormValue("due_date"),
	}
	h.controller.Add(r.Context(), sess, form)

	backToBoard(w, r)
}

func (h *Handler) completeItem(w http.ResponseWriter, r *http.Request) {
	sess := h.currentSession(r)

	if id, ok := h.boardItemID(sess, r); ok {
		h.controller.Complete(r.Context(), sess, id)
	}

	backToBoard(w, r)
}

func (h *Handler) translateItem(w http.ResponseWriter, r *http.Request) {
	sess := h.currentSession(r)

	if id, ok := h.boardItemID(sess, r); ok {
		h.controller.Translate(r.Context(), sess, id)
	}

	backToBoard(w, r)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	sess := h.currentSession(r)

	if id, ok := h.boardItemID(sess, r); ok {
		if deleted, err := h.controller.Delete(r.Context(), sess, id); err == nil && deleted {
			h.sessions.EvictItem(id)
		}
	}

	backToBoard(w, r)
}

func (h *Handler) selectLanguage(w http.ResponseWriter, r *http.Request) {
	sess := h.currentSession(r)
	h.controller.SelectLanguage(sess, r.PostFormValue("language"))

	backToBoard(w, r)
}

// resetSession ends the session; the next request starts a fresh one with an
// empty translation cache.
func (h *Handler) resetSession(w http.ResponseWriter, r *http.Request) {
	sess := h.currentSession(r)
	h.sessions.Discard(sess.ID)
	clearSessionCookie(w)

	logger.FromRequest(r).Info().Str("session_id", sess.ID).Msg("session discarded")
	backToBoard(w, r)
}

func (h *Handler) boardItemID(sess *session.Session, r *http.Request) (int64, bool) {
	id, err := itemIDFromRequest(r)
	if err != nil {
		sess.AddNotice(session.LevelWarning, controller.MsgItemGone)
		return 0, false
	}
	return id, true
}
