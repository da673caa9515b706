// Package tui is the terminal front end of the task list. It renders the
// same board as the web application and drives the same controller.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-todo-keeper/internal/controller"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/session"
	"github.com/MKhiriev/go-todo-keeper/internal/translator"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type TUI struct {
	controller *controller.Controller
	session    *session.Session
	buildInfo  models.AppBuildInfo
	refresh    func(context.Context) error
	logger     *logger.Logger
}

// languageSource is implemented by translators that learn their state from
// a remote server.
type languageSource interface {
	Languages(ctx context.Context) (models.LanguagesResponse, error)
}

// New prepares a terminal session over items. The session lives as long
// as the program runs.
func New(items service.ItemService, tr translator.Translator, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	t := &TUI{
		controller: controller.New(items, tr, logger),
		session:    session.New(utils.NewUUIDGenerator().Generate()),
		buildInfo:  buildInfo,
		logger:     logger,
	}
	if src, ok := tr.(languageSource); ok {
		t.refresh = func(ctx context.Context) error {
			_, err := src.Languages(ctx)
			return err
		}
	}
	return t
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	ctx = t.logger.WithContext(ctx)

	board := newBoardModel(ctx, t.controller, t.session)
	board.refresh = t.refresh

	root := NewRootModel(board, t.buildInfo)
	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
