package controller

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/session"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// Card is one rendered item with its position inside its section.
type Card struct {
	// Number counts from 1 within the Pending or Done section.
	Number int
	Item   models.Item

	// Translation is the cached translation for the session language.
	Translation    string
	HasTranslation bool
}

// Board is everything a front end needs to render the full page.
type Board struct {
	Pending []Card
	Done    []Card

	Languages          []string
	Language           string
	TranslationEnabled bool

	Notices []session.Notice
}

// Empty reports whether the store holds no items at all.
func (b Board) Empty() bool {
	return len(b.Pending) == 0 && len(b.Done) == 0
}

// Partition splits items by completion state. Both halves keep the input
// order.
func Partition(items []models.Item) (pending, done []models.Item) {
	pending = make([]models.Item, 0, len(items))
	done = make([]models.Item, 0)

	for _, item := range items {
		if item.Completed {
			done = append(done, item)
		} else {
			pending = append(pending, item)
		}
	}

	return pending, done
}

// Compose builds the text sent for translation:
//
//	title[ (Description: d)][ (Priority: p)][ (Due Date: yyyy-mm-dd)]
func Compose(item models.Item) string {
	var b strings.Builder
	b.WriteString(item.Title)

	if item.Description != "" {
		fmt.Fprintf(&b, " (Description: %s)", item.Description)
	}
	if item.Priority != models.PriorityNone {
		fmt.Fprintf(&b, " (Priority: %s)", item.Priority)
	}
	if item.DueDate != nil && !item.DueDate.IsZero() {
		fmt.Fprintf(&b, " (Due Date: %s)", item.DueDate)
	}

	return b.String()
}

func cards(items []models.Item, cache *session.Cache, language string) []Card {
	out := make([]Card, 0, len(items))
	for i, item := range items {
		text, ok := cache.Get(item.ID, language)
		out = append(out, Card{
			Number:         i + 1,
			Item:           item,
			Translation:    text,
			HasTranslation: ok,
		})
	}
	return out
}
