// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package controller implements the front-end independent interaction flow
// of the task list. Every operation works on an explicit [session.Session]
// and is followed by a full [Controller.Board] reload in the caller.
//
// Failures are returned as errors and also queued on the session as notices,
// so redirect-based front ends can show them on the next render.
package controller

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/session"
	"github.com/MKhiriev/go-todo-keeper/internal/translator"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// AddForm is the raw input of the add-item form.
type AddForm struct {
	Title       string
	Description string
	// Priority is one of "", "None", "Low", "Medium", "High".
	Priority string
	// DueDate is empty or YYYY-MM-DD.
	DueDate string
}

type Controller struct {
	items      service.ItemService
	translator translator.Translator

	now    func() time.Time
	logger *logger.Logger
}

func New(items service.ItemService, tr translator.Translator, logger *logger.Logger) *Controller {
	return &Controller{
		items:      items,
		translator: tr,
		now:        time.Now,
		logger:     logger,
	}
}

// Board reloads the whole list and partitions it for rendering. Queued
// notices are drained into the board.
func (c *Controller) Board(ctx context.Context, sess *session.Session) (Board, error) {
	language := sess.Language()
	board := Board{
		Languages:          models.Languages,
		Language:           language,
		TranslationEnabled: c.translator.Enabled(),
	}

	items, err := c.items.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Controller.Board").Msg("failed to load items")
		report(sess, err)
		board.Notices = sess.TakeNotices()
		return board, err
	}

	pending, done := Partition(items)
	board.Pending = cards(pending, sess.Cache, language)
	board.Done = cards(done, sess.Cache, language)
	board.Notices = sess.TakeNotices()

	return board, nil
}

// Add creates an item from the form. A blank title fails with
// [ErrTitleRequired] before the store is touched; a due date before today
// fails with [ErrDueDateInPast].
func (c *Controller) Add(ctx context.Context, sess *session.Session, form AddForm) (models.Item, error) {
	create, err := c.parseForm(form)
	if err != nil {
		return models.Item{}, report(sess, err)
	}

	item, err := c.items.Create(ctx, create)
	if err != nil {
		return models.Item{}, report(sess, err)
	}

	sess.AddNotice(session.LevelSuccess, MsgItemAdded)
	return item, nil
}

func (c *Controller) parseForm(form AddForm) (models.ItemCreate, error) {
	title := strings.TrimSpace(form.Title)
	if title == "" {
		return models.ItemCreate{}, ErrTitleRequired
	}

	priority, err := models.ParsePriority(form.Priority)
	if err != nil {
		return models.ItemCreate{}, fmt.Errorf("%w: %w", validators.ErrInvalidPriority, err)
	}

	create := models.ItemCreate{
		Title:       title,
		Description: strings.TrimSpace(form.Description),
		Priority:    priority,
	}

	if raw := strings.TrimSpace(form.DueDate); raw != "" {
		due, err := models.ParseDate(raw)
		if err != nil {
			return models.ItemCreate{}, ErrInvalidDueDate
		}
		if due.Before(models.DateOf(c.now())) {
			return models.ItemCreate{}, ErrDueDateInPast
		}
		create.DueDate = &due
	}

	return create, nil
}

// Complete marks the item completed. There is no way back to pending.
func (c *Controller) Complete(ctx context.Context, sess *session.Session, id int64) (models.Item, error) {
	item, err := c.items.Complete(ctx, id)
	if err != nil {
		return models.Item{}, report(sess, err)
	}
	return item, nil
}

// Translate translates the composed item text into the session language and
// caches the result. Completion state is never changed.
func (c *Controller) Translate(ctx context.Context, sess *session.Session, id int64) (string, error) {
	if !c.translator.Enabled() {
		return "", report(sess, translator.ErrUnavailable)
	}

	item, err := c.items.Get(ctx, id)
	if err != nil {
		return "", report(sess, err)
	}

	language := sess.Language()
	text, err := c.translator.Translate(ctx, Compose(item), language)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Controller.Translate").Int64("item_id", id).Str("language", language).Msg("translation failed")
		return "", report(sess, err)
	}

	sess.Cache.Put(id, language, text)
	return text, nil
}

// Delete removes the item and drops its cached translations. A missing id
// reports false with a nil error.
func (c *Controller) Delete(ctx context.Context, sess *session.Session, id int64) (bool, error) {
	deleted, err := c.items.Delete(ctx, id)
	if err != nil {
		return false, report(sess, err)
	}

	sess.Cache.Evict(id)
	return deleted, nil
}

// SelectLanguage changes the session's target language.
func (c *Controller) SelectLanguage(sess *session.Session, language string) error {
	if err := sess.SetLanguage(language); err != nil {
		return report(sess, fmt.Errorf("%w: %q", err, language))
	}
	return nil
}
