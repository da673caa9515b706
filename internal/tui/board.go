package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-todo-keeper/internal/controller"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/session"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type boardMode int

const (
	modeList boardMode = iota
	modeAdd
	modeLanguage
	modeConfirmDelete
)

// boardModel is the single screen of the terminal front end. Every write
// goes through the controller and is followed by a full board reload.
type boardModel struct {
	ctx        context.Context
	controller *controller.Controller
	session    *session.Session

	board       controller.Board
	loading     bool
	translating bool
	cursor      int
	width       int

	mode          boardMode
	form          addFormModel
	picker        languagePickerModel
	confirm       confirmModel
	pendingDelete int64

	spinner spinner.Model
	status  string

	copyFn func(string) error
	today  func() models.Date

	// refresh re-reads server capabilities before an explicit reload.
	refresh func(context.Context) error
}

func newBoardModel(ctx context.Context, c *controller.Controller, sess *session.Session) boardModel {
	return boardModel{
		ctx:        ctx,
		controller: c,
		session:    sess,
		loading:    true,
		spinner:    spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		copyFn:     clipboard.WriteAll,
		today:      models.Today,
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.cmdLoadBoard()
}

// cards returns the pending cards followed by the done cards, which is the
// order the cursor walks.
func (m boardModel) cards() []controller.Card {
	out := make([]controller.Card, 0, len(m.board.Pending)+len(m.board.Done))
	out = append(out, m.board.Pending...)
	return append(out, m.board.Done...)
}

func (m boardModel) current() (controller.Card, bool) {
	cards := m.cards()
	if m.cursor < 0 || m.cursor >= len(cards) {
		return controller.Card{}, false
	}
	return cards[m.cursor], true
}

func (m boardModel) Update(msg tea.Msg) (boardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case boardLoadedMsg:
		m.loading = false
		m.board = msg.board
		if n := len(m.cards()); m.cursor >= n {
			m.cursor = n - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil
	case mutationDoneMsg:
		return m, m.reload()
	case itemAddedMsg:
		if msg.err == nil {
			m.mode = modeList
		}
		return m, m.reload()
	case translatedMsg:
		m.translating = false
		return m, m.reload()
	case copiedMsg:
		m.status = "Copied!"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.status = msg.err.Error()
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.translating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.mode {
	case modeAdd:
		return m.updateAdd(msg)
	case modeLanguage:
		return m.updateLanguage(msg)
	case modeConfirmDelete:
		return m.updateConfirm(msg)
	default:
		return m.updateList(msg)
	}
}

func (m boardModel) reload() tea.Cmd {
	return m.cmdLoadBoard()
}

func (m boardModel) updateList(msg tea.Msg) (boardModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.cursor < len(m.cards())-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.add):
		m.mode = modeAdd
		m.form = newAddFormModel(m.today())
	case key.Matches(keyMsg, keys.language):
		m.mode = modeLanguage
		m.picker = newLanguagePickerModel(m.board.Languages, m.board.Language)
	case key.Matches(keyMsg, keys.reload):
		return m, m.cmdRefreshBoard()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.complete):
		card, ok := m.current()
		if !ok || card.Item.Completed {
			return m, nil
		}
		return m, m.cmdComplete(card.Item.ID)
	case key.Matches(keyMsg, keys.translate):
		card, ok := m.current()
		if !ok || m.translating {
			return m, nil
		}
		m.translating = true
		return m, tea.Batch(m.spinner.Tick, m.cmdTranslate(card.Item.ID))
	case key.Matches(keyMsg, keys.delete):
		card, ok := m.current()
		if !ok {
			return m, nil
		}
		m.mode = modeConfirmDelete
		m.confirm.message = card.Item.Title
		m.pendingDelete = card.Item.ID
	case key.Matches(keyMsg, keys.copy):
		card, ok := m.current()
		if !ok || !card.HasTranslation {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.copyFn, card.Translation)
	}

	return m, nil
}

func (m boardModel) updateAdd(msg tea.Msg) (boardModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.mode = modeList
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m, m.cmdAdd(m.form.Value())
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m boardModel) updateLanguage(msg tea.Msg) (boardModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.mode = modeList
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.mode = modeList
			_ = m.controller.SelectLanguage(m.session, m.picker.Selected())
			return m, m.reload()
		}
	}

	m.picker = m.picker.Update(msg)
	return m, nil
}

func (m boardModel) updateConfirm(msg tea.Msg) (boardModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.mode = modeList
		return m, m.cmdDelete(m.pendingDelete)
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.mode = modeList
		m.pendingDelete = 0
	}
	return m, nil
}

func (m boardModel) View() string {
	var b strings.Builder

	for _, n := range m.board.Notices {
		b.WriteString(noticeStyles[n.Level].Render(n.Message))
		b.WriteString("\n")
	}
	if len(m.board.Notices) > 0 {
		b.WriteString("\n")
	}

	var hotKeys string
	switch m.mode {
	case modeAdd:
		b.WriteString(viewTitle("New To-Do"))
		b.WriteString(m.form.View())
		hotKeys = "tab: next field    ←/→: priority    enter: add    esc: cancel"
	case modeLanguage:
		b.WriteString(viewTitle("Translate to"))
		b.WriteString(m.picker.View())
		hotKeys = "↑/↓: choose    enter: select    esc: cancel"
	default:
		b.WriteString(m.viewCards())
		if m.mode == modeConfirmDelete {
			b.WriteString("\n")
			b.WriteString(m.confirm.View())
		}
		hotKeys = m.listHotKeys()
	}

	if m.translating {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" translating...")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	title := "TO-DO LIST    Language: " + m.board.Language
	if !m.board.TranslationEnabled && !m.loading {
		title += "    (translation disabled: no API key configured)"
	}

	return appStyle.Render(renderPage(title, b.String(), hotKeys))
}

func (m boardModel) listHotKeys() string {
	parts := []string{"↑/↓: move", "a: add", "c: complete"}
	if m.board.TranslationEnabled {
		parts = append(parts, "t: translate", "y: copy translation")
	}
	parts = append(parts, "d: delete", "L: language", "r: reload", "v: about", "q: quit")
	return strings.Join(parts, "    ")
}

func (m boardModel) viewCards() string {
	if m.loading {
		return "Loading..."
	}
	if m.board.Empty() {
		return controller.MsgNoItems
	}

	var b strings.Builder
	idx := 0

	b.WriteString(sectionStyle.Render("Pending Tasks"))
	b.WriteString("\n")
	for _, card := range m.board.Pending {
		b.WriteString(m.viewCard(card, idx == m.cursor))
		idx++
	}

	if len(m.board.Done) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Completed Tasks"))
		b.WriteString("\n")
		for _, card := range m.board.Done {
			b.WriteString(m.viewCard(card, idx == m.cursor))
			idx++
		}
	}

	return b.String()
}

func (m boardModel) viewCard(card controller.Card, selected bool) string {
	var b strings.Builder

	title := fmt.Sprintf("%d. %s", card.Number, fitText(card.Item.Title, m.width-12))
	if card.Item.Completed {
		title = doneStyle.Render(title)
	}
	if selected {
		b.WriteString(cursorStyle.Render("> "))
	} else {
		b.WriteString("  ")
	}
	b.WriteString(title)
	b.WriteString("\n")

	if card.Item.Description != "" {
		b.WriteString("     ")
		b.WriteString(card.Item.Description)
		b.WriteString("\n")
	}

	due := ""
	if card.Item.DueDate != nil {
		due = card.Item.DueDate.String()
	}
	fmt.Fprintf(&b, "     Priority: %s    Due: %s\n", valueOrDash(string(card.Item.Priority)), valueOrDash(due))

	if card.HasTranslation {
		b.WriteString("     ")
		b.WriteString(translatedStyle.Render("Translated (" + m.board.Language + "): " + card.Translation))
		b.WriteString("\n")
	}

	return b.String()
}

func (m boardModel) cmdLoadBoard() tea.Cmd {
	ctx, c, sess := m.ctx, m.controller, m.session
	return func() tea.Msg {
		board, err := c.Board(ctx, sess)
		return boardLoadedMsg{board: board, err: err}
	}
}

func (m boardModel) cmdRefreshBoard() tea.Cmd {
	if m.refresh == nil {
		return m.cmdLoadBoard()
	}

	ctx, c, sess, refresh := m.ctx, m.controller, m.session, m.refresh
	return func() tea.Msg {
		if err := refresh(ctx); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "boardModel.cmdRefreshBoard").Msg("capabilities refresh failed")
		}
		board, err := c.Board(ctx, sess)
		return boardLoadedMsg{board: board, err: err}
	}
}

func (m boardModel) cmdAdd(form controller.AddForm) tea.Cmd {
	ctx, c, sess := m.ctx, m.controller, m.session
	return func() tea.Msg {
		_, err := c.Add(ctx, sess, form)
		return itemAddedMsg{err: err}
	}
}

func (m boardModel) cmdComplete(id int64) tea.Cmd {
	ctx, c, sess := m.ctx, m.controller, m.session
	return func() tea.Msg {
		_, err := c.Complete(ctx, sess, id)
		return mutationDoneMsg{err: err}
	}
}

func (m boardModel) cmdTranslate(id int64) tea.Cmd {
	ctx, c, sess := m.ctx, m.controller, m.session
	return func() tea.Msg {
		_, err := c.Translate(ctx, sess, id)
		return translatedMsg{err: err}
	}
}

func (m boardModel) cmdDelete(id int64) tea.Cmd {
	ctx, c, sess := m.ctx, m.controller, m.session
	return func() tea.Msg {
		_, err := c.Delete(ctx, sess, id)
		return mutationDoneMsg{err: err}
	}
}

func cmdCopyToClipboard(copyFn func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
