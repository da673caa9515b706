package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// RootModel wraps the board:
// 1) handles global Ctrl+C quit
// 2) toggles the build info window with "v" while the list is shown
// 3) delegates all other messages to the board
type RootModel struct {
	board     boardModel
	buildInfo models.AppBuildInfo

	quitByUser    bool
	showBuildInfo bool
}

func NewRootModel(board boardModel, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		board:     board,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return r.board.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.board.mode == modeList {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	var cmd tea.Cmd
	r.board, cmd = r.board.Update(msg)
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	return r.board.View()
}
