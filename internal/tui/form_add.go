package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-todo-keeper/internal/controller"
	"github.com/MKhiriev/go-todo-keeper/models"
)

const (
	inputTitle = iota
	inputDescription
	inputDueDate
)

// focusPriority is the focus slot after the text inputs.
const focusPriority = 3

type addFormModel struct {
	inputs   []textinput.Model
	priority int
	focus    int
	today    models.Date
}

func newAddFormModel(today models.Date) addFormModel {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200
	title.Focus()

	description := textinput.New()
	description.Placeholder = "Description (optional)"
	description.CharLimit = 1000

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD (optional)"
	due.CharLimit = 10

	return addFormModel{
		inputs: []textinput.Model{title, description, due},
		today:  today,
	}
}

// Value collects the form into the controller's input.
func (f addFormModel) Value() controller.AddForm {
	return controller.AddForm{
		Title:       f.inputs[inputTitle].Value(),
		Description: f.inputs[inputDescription].Value(),
		Priority:    models.Priorities[f.priority].Label(),
		DueDate:     f.inputs[inputDueDate].Value(),
	}
}

func (f addFormModel) slots() int {
	return len(f.inputs) + 1
}

func (f addFormModel) focusTo(next int) addFormModel {
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Blur()
	}
	f.focus = (next + f.slots()) % f.slots()
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Focus()
	}
	return f
}

// Update handles navigation and typing. Submit and cancel are left to the
// caller.
func (f addFormModel) Update(msg tea.Msg) (addFormModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			return f.focusTo(f.focus + 1), nil
		case key.Matches(keyMsg, keys.backtab):
			return f.focusTo(f.focus - 1), nil
		}

		if f.focus == focusPriority {
			switch {
			case key.Matches(keyMsg, keys.left):
				if f.priority > 0 {
					f.priority--
				}
			case key.Matches(keyMsg, keys.right):
				if f.priority < len(models.Priorities)-1 {
					f.priority++
				}
			}
			return f, nil
		}
	}

	if f.focus >= len(f.inputs) {
		return f, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f addFormModel) View() string {
	var b strings.Builder

	labels := []string{"Title", "Description", "Due date"}
	for i, input := range f.inputs {
		b.WriteString(labels[i])
		b.WriteString(":\n")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	b.WriteString("Priority: ")
	for i, p := range models.Priorities {
		label := p.Label()
		if i == f.priority {
			label = "[" + label + "]"
			if f.focus == focusPriority {
				label = cursorStyle.Render(label)
			}
		} else {
			label = " " + label + " "
		}
		b.WriteString(label)
		b.WriteString(" ")
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Due date cannot be before " + f.today.String() + "."))

	return b.String()
}
