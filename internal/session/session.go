// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the per-user interaction state: the translation
// cache, the selected language and pending notices.
//
// A [Session] is created when a user session starts and discarded when it
// ends. Nothing in it is persisted.
package session

import (
	"errors"
	"sync"

	"github.com/MKhiriev/go-todo-keeper/models"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Level classifies a notice for presentation.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is a one-shot message shown on the next render.
type Notice struct {
	Level   Level
	Message string
}

// Session is the state of one interactive session.
type Session struct {
	ID    string
	Cache *Cache

	mu       sync.Mutex
	language string
	notices  []Notice
}

// New creates a session with an empty cache and the default language.
func New(id string) *Session {
	return &Session{
		ID:       id,
		Cache:    NewCache(),
		language: models.DefaultLanguage,
	}
}

// Language returns the currently selected target language.
func (s *Session) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.language
}

// SetLanguage selects the target language for subsequent translations.
func (s *Session) SetLanguage(language string) error {
	if !models.IsSupportedLanguage(language) {
		return ErrUnsupportedLanguage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.language = language
	return nil
}

// AddNotice queues a message for the next render.
func (s *Session) AddNotice(level Level, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notices = append(s.notices, Notice{Level: level, Message: message})
}

// TakeNotices returns the queued notices and clears the queue.
func (s *Session) TakeNotices() []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	notices := s.notices
	s.notices = nil
	return notices
}
