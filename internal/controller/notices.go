package controller

import (
	"errors"

	"github.com/MKhiriev/go-todo-keeper/internal/session"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/translator"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
)

// User-facing messages.
const (
	MsgItemAdded         = "To-Do item added successfully!"
	MsgTitleRequired     = "Please enter a title for the To-Do item."
	MsgNoItems           = "No To-Do items yet! Add one above."
	MsgItemGone          = "That To-Do item no longer exists."
	MsgTranslationOff    = "Translation service not available. API key might be missing or invalid."
	msgTranslationFailed = "Translation error: "
	msgStoreUnavailable  = "The to-do store is unavailable: "
	msgOperationFailed   = "Something went wrong: "
)

// NoticeFor converts an operation error into the notice shown to the user.
func NoticeFor(err error) session.Notice {
	switch {
	case errors.Is(err, validators.ErrEmptyTitle):
		return session.Notice{Level: session.LevelWarning, Message: MsgTitleRequired}
	case errors.Is(err, validators.ErrInvalidItem):
		return session.Notice{Level: session.LevelWarning, Message: err.Error()}
	case errors.Is(err, store.ErrItemNotFound):
		return session.Notice{Level: session.LevelWarning, Message: MsgItemGone}
	case errors.Is(err, translator.ErrUnavailable):
		return session.Notice{Level: session.LevelError, Message: MsgTranslationOff}
	case errors.Is(err, translator.ErrTranslation):
		return session.Notice{Level: session.LevelError, Message: msgTranslationFailed + err.Error()}
	case errors.Is(err, store.ErrStoreUnavailable):
		return session.Notice{Level: session.LevelError, Message: msgStoreUnavailable + err.Error()}
	case errors.Is(err, session.ErrUnsupportedLanguage):
		return session.Notice{Level: session.LevelWarning, Message: err.Error()}
	default:
		return session.Notice{Level: session.LevelError, Message: msgOperationFailed + err.Error()}
	}
}

func report(sess *session.Session, err error) error {
	n := NoticeFor(err)
	sess.AddNotice(n.Level, n.Message)
	return err
}
