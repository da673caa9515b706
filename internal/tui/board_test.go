package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-todo-keeper/internal/controller"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/internal/session"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

var boardItems = []models.Item{
	{ID: 1, Title: "Buy milk", Priority: models.PriorityHigh},
	{ID: 2, Title: "Pay rent", Description: "before noon", Completed: true},
	{ID: 3, Title: "Call mom"},
}

func newTestBoard(t *testing.T) (boardModel, *mock.MockItemService, *mock.MockTranslator) {
	t.Helper()
	ctrl := gomock.NewController(t)

	items := mock.NewMockItemService(ctrl)
	tr := mock.NewMockTranslator(ctrl)

	c := controller.New(items, tr, logger.Nop())
	m := newBoardModel(context.Background(), c, session.New("tui-test"))
	m.today = func() models.Date { return models.Date{Year: 2026, Month: 10, Day: 19} }

	return m, items, tr
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// execCmd runs cmd and flattens batches. Spinner ticks are dropped.
func execCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, execCmd(t, c)...)
		}
		return out
	}
	if _, ok := msg.(spinner.TickMsg); ok {
		return nil
	}
	return []tea.Msg{msg}
}

// settle feeds the messages produced by cmd back into m until a step
// produces nothing more, which covers write → reload chains.
func settle(t *testing.T, m boardModel, cmd tea.Cmd) boardModel {
	t.Helper()
	for i := 0; cmd != nil && i < 5; i++ {
		msgs := execCmd(t, cmd)
		cmd = nil
		for _, msg := range msgs {
			var next tea.Cmd
			m, next = m.Update(msg)
			if next != nil {
				cmd = next
			}
		}
	}
	return m
}

func loadedBoard(t *testing.T, enabled bool, stored []models.Item) (boardModel, *mock.MockItemService, *mock.MockTranslator) {
	t.Helper()
	m, items, tr := newTestBoard(t)

	items.EXPECT().List(gomock.Any()).Return(stored, nil)
	tr.EXPECT().Enabled().Return(enabled).AnyTimes()

	m = settle(t, m, m.Init())
	require.False(t, m.loading)
	return m, items, tr
}

// ── Board rendering ──────────────────────────────────────────────────────────

func TestBoard_InitLoadsAndPartitions(t *testing.T) {
	m, _, _ := loadedBoard(t, true, boardItems)

	require.Len(t, m.board.Pending, 2)
	require.Len(t, m.board.Done, 1)

	view := m.View()
	assert.Contains(t, view, "Pending Tasks")
	assert.Contains(t, view, "Completed Tasks")
	assert.Contains(t, view, "1. Buy milk")
	assert.Contains(t, view, "2. Call mom")
	assert.Contains(t, view, "1. Pay rent")
	assert.Contains(t, view, "Priority: High")
	assert.Contains(t, view, "before noon")
	assert.Contains(t, view, "t: translate")
	assert.NotContains(t, view, "translation disabled")
}

func TestBoard_EmptyState(t *testing.T) {
	m, _, _ := loadedBoard(t, true, []models.Item{})

	assert.True(t, m.board.Empty())
	assert.Contains(t, m.View(), controller.MsgNoItems)
}

func TestBoard_TranslationDisabledHidesActions(t *testing.T) {
	m, _, _ := loadedBoard(t, false, boardItems)

	view := m.View()
	assert.Contains(t, view, "translation disabled")
	assert.NotContains(t, view, "t: translate")
}

func TestBoard_ReloadRefreshesTranslationState(t *testing.T) {
	m, items, tr := newTestBoard(t)

	enabled := false
	refreshed := 0
	m.refresh = func(context.Context) error {
		refreshed++
		enabled = true
		return nil
	}
	items.EXPECT().List(gomock.Any()).Return(boardItems, nil).Times(2)
	tr.EXPECT().Enabled().DoAndReturn(func() bool { return enabled }).AnyTimes()

	m = settle(t, m, m.Init())
	require.Zero(t, refreshed, "startup load uses the state known at launch")
	require.False(t, m.board.TranslationEnabled)
	require.Contains(t, m.View(), "translation disabled")

	m, cmd := m.Update(runes("r"))
	m = settle(t, m, cmd)

	assert.Equal(t, 1, refreshed)
	assert.True(t, m.board.TranslationEnabled)
	assert.Contains(t, m.View(), "t: translate")
}

func TestBoard_ReloadSurvivesRefreshFailure(t *testing.T) {
	m, items, tr := newTestBoard(t)
	m.refresh = func(context.Context) error { return errors.New("connection refused") }
	items.EXPECT().List(gomock.Any()).Return(boardItems, nil).Times(2)
	tr.EXPECT().Enabled().Return(false).AnyTimes()

	m = settle(t, m, m.Init())
	m, cmd := m.Update(runes("r"))
	m = settle(t, m, cmd)

	assert.False(t, m.loading)
	assert.False(t, m.board.TranslationEnabled)
	assert.Len(t, m.board.Pending, 2)
}

func TestBoard_StoreUnavailableShowsNotice(t *testing.T) {
	m, items, tr := newTestBoard(t)
	items.EXPECT().List(gomock.Any()).Return(nil, store.ErrStoreUnavailable)
	tr.EXPECT().Enabled().Return(false)

	m = settle(t, m, m.Init())

	assert.True(t, m.board.Empty())
	assert.Contains(t, m.View(), "The to-do store is unavailable")
}

func TestBoard_CursorStaysInRange(t *testing.T) {
	m, _, _ := loadedBoard(t, true, boardItems)

	m, _ = m.Update(keyOf(tea.KeyUp))
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < 5; i++ {
		m, _ = m.Update(runes("j"))
	}
	assert.Equal(t, 2, m.cursor)

	card, ok := m.current()
	require.True(t, ok)
	assert.Equal(t, int64(2), card.Item.ID, "cursor walks pending first, then done")

	m, _ = m.Update(boardLoadedMsg{board: controller.Board{Pending: []controller.Card{{Number: 1, Item: boardItems[0]}}}})
	assert.Equal(t, 0, m.cursor)
}

// ── Add ──────────────────────────────────────────────────────────────────────

func TestBoard_AddItem(t *testing.T) {
	m, items, _ := loadedBoard(t, true, boardItems)

	m, _ = m.Update(runes("a"))
	require.Equal(t, modeAdd, m.mode)

	m.form.inputs[inputTitle].SetValue("  Water plants ")
	m.form.inputs[inputDescription].SetValue("balcony")
	m.form = m.form.focusTo(focusPriority)
	m, _ = m.Update(keyOf(tea.KeyRight))
	m, _ = m.Update(keyOf(tea.KeyRight))

	items.EXPECT().Create(gomock.Any(), models.ItemCreate{
		Title:       "Water plants",
		Description: "balcony",
		Priority:    models.PriorityMedium,
	}).Return(models.Item{ID: 4, Title: "Water plants"}, nil)
	items.EXPECT().List(gomock.Any()).Return(append(boardItems, models.Item{ID: 4, Title: "Water plants"}), nil)

	m, cmd := m.Update(keyOf(tea.KeyEnter))
	m = settle(t, m, cmd)

	assert.Equal(t, modeList, m.mode)
	assert.Len(t, m.board.Pending, 3)
	assert.Contains(t, m.View(), controller.MsgItemAdded)
}

func TestBoard_AddBlankTitleKeepsForm(t *testing.T) {
	m, items, _ := loadedBoard(t, true, boardItems)

	m, _ = m.Update(runes("a"))
	m.form.inputs[inputTitle].SetValue("   ")

	items.EXPECT().List(gomock.Any()).Return(boardItems, nil)

	m, cmd := m.Update(keyOf(tea.KeyEnter))
	m = settle(t, m, cmd)

	assert.Equal(t, modeAdd, m.mode)
	assert.Contains(t, m.View(), controller.MsgTitleRequired)
}

func TestBoard_AddCancel(t *testing.T) {
	m, _, _ := loadedBoard(t, true, boardItems)

	m, _ = m.Update(runes("a"))
	m, cmd := m.Update(keyOf(tea.KeyEsc))

	assert.Nil(t, cmd)
	assert.Equal(t, modeList, m.mode)
}

func TestAddForm_Navigation(t *testing.T) {
	f := newAddFormModel(models.Date{Year: 2026, Month: 10, Day: 19})
	assert.Equal(t, inputTitle, f.focus)

	f, _ = f.Update(keyOf(tea.KeyShiftTab))
	assert.Equal(t, focusPriority, f.focus)

	f, _ = f.Update(keyOf(tea.KeyLeft))
	assert.Equal(t, 0, f.priority, "priority does not go below None")

	for i := 0; i < 10; i++ {
		f, _ = f.Update(keyOf(tea.KeyRight))
	}
	assert.Equal(t, len(models.Priorities)-1, f.priority)

	f, _ = f.Update(keyOf(tea.KeyTab))
	assert.Equal(t, inputTitle, f.focus)

	f.inputs[inputDueDate].SetValue("2026-12-01")
	assert.Equal(t, controller.AddForm{Priority: "High", DueDate: "2026-12-01"}, f.Value())
	assert.Contains(t, f.View(), "2026-10-19")
}

// ── Complete / Delete ────────────────────────────────────────────────────────

func TestBoard_CompletePending(t *testing.T) {
	m, items, _ := loadedBoard(t, true, boardItems)

	done := boardItems[0]
	done.Completed = true
	items.EXPECT().Complete(gomock.Any(), int64(1)).Return(done, nil)
	items.EXPECT().List(gomock.Any()).Return([]models.Item{done, boardItems[1], boardItems[2]}, nil)

	m, cmd := m.Update(runes("c"))
	m = settle(t, m, cmd)

	assert.Len(t, m.board.Pending, 1)
	assert.Len(t, m.board.Done, 2)
}

func TestBoard_CompleteOnDoneCardDoesNothing(t *testing.T) {
	m, _, _ := loadedBoard(t, true, boardItems)
	m.cursor = 2

	_, cmd := m.Update(runes("c"))
	assert.Nil(t, cmd)
}

func TestBoard_CompleteMissingItemShowsNotice(t *testing.T) {
	m, items, _ := loadedBoard(t, true, boardItems)

	items.EXPECT().Complete(gomock.Any(), int64(1)).Return(models.Item{}, store.ErrItemNotFound)
	items.EXPECT().List(gomock.Any()).Return(boardItems[1:], nil)

	m, cmd := m.Update(runes("c"))
	m = settle(t, m, cmd)

	assert.Contains(t, m.View(), controller.MsgItemGone)
}

func TestBoard_DeleteConfirmed(t *testing.T) {
	m, items, _ := loadedBoard(t, true, boardItems)
	m.session.Cache.Put(1, models.DefaultLanguage, "cached")

	m, cmd := m.Update(runes("d"))
	require.Nil(t, cmd)
	require.Equal(t, modeConfirmDelete, m.mode)
	assert.Contains(t, m.View(), `Delete "Buy milk"?`)

	items.EXPECT().Delete(gomock.Any(), int64(1)).Return(true, nil)
	items.EXPECT().List(gomock.Any()).Return(boardItems[1:], nil)

	m, cmd = m.Update(runes("y"))
	m = settle(t, m, cmd)

	assert.Equal(t, modeList, m.mode)
	assert.Len(t, m.board.Pending, 1)
	assert.Equal(t, 0, m.session.Cache.Len())
}

func TestBoard_DeleteDeclined(t *testing.T) {
	m, _, _ := loadedBoard(t, true, boardItems)

	m, _ = m.Update(runes("d"))
	m, cmd := m.Update(runes("n"))

	assert.Nil(t, cmd)
	assert.Equal(t, modeList, m.mode)
	assert.Zero(t, m.pendingDelete)
}

// ── Translate / Language / Copy ──────────────────────────────────────────────

func TestBoard_TranslateCachesResult(t *testing.T) {
	m, items, tr := loadedBoard(t, true, boardItems)

	items.EXPECT().Get(gomock.Any(), int64(1)).Return(boardItems[0], nil)
	tr.EXPECT().Translate(gomock.Any(), "Buy milk (Priority: High)", models.DefaultLanguage).Return("Buy milk!", nil)
	items.EXPECT().List(gomock.Any()).Return(boardItems, nil)

	m, cmd := m.Update(runes("t"))
	require.True(t, m.translating)
	assert.Contains(t, m.View(), "translating...")

	m = settle(t, m, cmd)

	assert.False(t, m.translating)
	require.True(t, m.board.Pending[0].HasTranslation)
	assert.Contains(t, m.View(), "Translated (English): Buy milk!")
	assert.False(t, m.board.Pending[0].Item.Completed)
}

func TestBoard_TranslateFailureShowsNotice(t *testing.T) {
	m, items, tr := loadedBoard(t, true, boardItems)

	items.EXPECT().Get(gomock.Any(), int64(1)).Return(boardItems[0], nil)
	tr.EXPECT().Translate(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("quota exceeded"))
	items.EXPECT().List(gomock.Any()).Return(boardItems, nil)

	m, cmd := m.Update(runes("t"))
	m = settle(t, m, cmd)

	assert.False(t, m.board.Pending[0].HasTranslation)
	assert.Contains(t, m.View(), "quota exceeded")
}

func TestBoard_SelectLanguage(t *testing.T) {
	m, items, _ := loadedBoard(t, true, boardItems)

	m, _ = m.Update(runes("L"))
	require.Equal(t, modeLanguage, m.mode)
	assert.Equal(t, models.DefaultLanguage, m.picker.Selected())

	m, _ = m.Update(keyOf(tea.KeyDown))
	items.EXPECT().List(gomock.Any()).Return(boardItems, nil)

	m, cmd := m.Update(keyOf(tea.KeyEnter))
	m = settle(t, m, cmd)

	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, models.Languages[1], m.session.Language())
	assert.Equal(t, models.Languages[1], m.board.Language)
}

func TestBoard_CopyTranslation(t *testing.T) {
	m, _, _ := loadedBoard(t, true, boardItems)

	var copied string
	m.copyFn = func(s string) error {
		copied = s
		return nil
	}

	_, cmd := m.Update(runes("y"))
	assert.Nil(t, cmd, "nothing to copy without a translation")

	m.board.Pending[0].Translation = "Compra leche"
	m.board.Pending[0].HasTranslation = true

	m, cmd = m.Update(runes("y"))
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())

	assert.Equal(t, "Compra leche", copied)
	assert.Equal(t, "Copied!", m.status)

	m, _ = m.Update(clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestBoard_CopyFailure(t *testing.T) {
	m, _, _ := loadedBoard(t, true, boardItems)
	m.copyFn = func(string) error { return errors.New("no clipboard") }
	m.board.Pending[0].Translation = "x"
	m.board.Pending[0].HasTranslation = true

	_, cmd := m.Update(runes("y"))
	m, _ = m.Update(cmd())

	assert.Contains(t, m.status, "no clipboard")
}

func TestBoard_QuitKey(t *testing.T) {
	m, _, _ := loadedBoard(t, true, boardItems)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "hello", fitText("hello", 0))
	assert.Equal(t, "hello", fitText("hello", 5))
	assert.Equal(t, "he...", fitText("hello world", 5))
	assert.Equal(t, "hel", fitText("hello", 3))
	assert.Equal(t, "приве...", fitText("привет мир", 8))
}
