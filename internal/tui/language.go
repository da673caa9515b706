package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type languagePickerModel struct {
	languages []string
	idx       int
}

func newLanguagePickerModel(languages []string, current string) languagePickerModel {
	m := languagePickerModel{languages: languages}
	for i, l := range languages {
		if l == current {
			m.idx = i
			break
		}
	}
	return m
}

func (m languagePickerModel) Selected() string {
	if len(m.languages) == 0 {
		return ""
	}
	return m.languages[m.idx]
}

func (m languagePickerModel) Update(msg tea.Msg) languagePickerModel {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.languages)-1 {
			m.idx++
		}
	}
	return m
}

func (m languagePickerModel) View() string {
	var b strings.Builder
	for i, l := range m.languages {
		if i == m.idx {
			b.WriteString(cursorStyle.Render("> " + l))
		} else {
			b.WriteString("  " + l)
		}
		b.WriteString("\n")
	}
	return b.String()
}
