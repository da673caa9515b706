package http

import (
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/session"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
)

const sessionCookieName = "todo_session"

// withSession attaches the caller's session id to the request context,
// starting a new session when the cookie is missing or unknown.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := h.sessionFromCookie(r)
		if sess == nil {
			sess = h.sessions.New()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			logger.FromRequest(r).Debug().Str("session_id", sess.ID).Msg("session started")
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSessionID(r.Context(), sess.ID)))
	})
}

func (h *Handler) sessionFromCookie(r *http.Request) *session.Session {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || !utils.IsUUID(cookie.Value) {
		return nil
	}

	sess, ok := h.sessions.Get(cookie.Value)
	if !ok {
		return nil
	}
	return sess
}

// currentSession returns the session attached by withSession. A request that
// bypassed the middleware gets a throwaway session.
func (h *Handler) currentSession(r *http.Request) *session.Session {
	if id, ok := utils.GetSessionIDFromContext(r.Context()); ok {
		if sess, ok := h.sessions.Get(id); ok {
			return sess
		}
	}
	return session.New(h.ids.Generate())
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
