package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-todo-keeper/internal/session"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#874BFD"))
	sectionStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	cursorStyle     = lipgloss.NewStyle().Bold(true)
	doneStyle       = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	translatedStyle = lipgloss.NewStyle().Italic(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	noticeStyles = map[session.Level]lipgloss.Style{
		session.LevelSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		session.LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		session.LevelWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		session.LevelError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
)
