package tui

import "github.com/MKhiriev/go-todo-keeper/internal/controller"

type boardLoadedMsg struct {
	board controller.Board
	err   error
}

// mutationDoneMsg follows every write; the board is reloaded on receipt.
type mutationDoneMsg struct {
	err error
}

type itemAddedMsg struct {
	err error
}

type translatedMsg struct {
	err error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
