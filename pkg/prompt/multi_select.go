package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	checkedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

// multiSelectModel represents the Bubble Tea model for picking several items.
type multiSelectModel struct {
	title     string
	items     []string
	checked   []bool
	cursor    int
	confirmed bool
	quitting  bool
}

func initialMultiSelectModel(title string, items []string) multiSelectModel {
	return multiSelectModel{
		title:   title,
		items:   items,
		checked: make([]bool, len(items)),
	}
}

// Init initializes the model.
func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.confirmed = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case " ", "space", "x":
		if m.cursor < len(m.checked) {
			m.checked[m.cursor] = !m.checked[m.cursor]
		}
	case "a":
		m.toggleAll()
	}

	return m, nil
}

// toggleAll checks every item, or clears them all when they are already checked.
func (m *multiSelectModel) toggleAll() {
	all := true
	for _, c := range m.checked {
		if !c {
			all = false
			break
		}
	}
	for i := range m.checked {
		m.checked[i] = !all
	}
}

// selectedIndices returns the checked indices once the selection was confirmed.
func (m multiSelectModel) selectedIndices() []int {
	if !m.confirmed {
		return []int{}
	}

	indices := []int{}
	for i, c := range m.checked {
		if c {
			indices = append(indices, i)
		}
	}
	return indices
}

// View renders the UI.
func (m multiSelectModel) View() string {
	if m.quitting || m.confirmed {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("? "+m.title) + "\n\n")

	for i, item := range m.items {
		pointer := " "
		if m.cursor == i {
			pointer = cursorStyle.Render(">")
		}

		box := "[ ]"
		if m.checked[i] {
			box = checkedStyle.Render("[x]")
		}

		s.WriteString(pointer + " " + box + " " + item + "\n")
	}

	s.WriteString("\n" + helpStyle.Render("space: toggle, a: all, enter: confirm, q: cancel"))

	return s.String()
}
