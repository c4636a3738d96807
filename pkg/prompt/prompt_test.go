//go:build unit

package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func space() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

func press(t *testing.T, m multiSelectModel, msgs ...tea.Msg) multiSelectModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(multiSelectModel)
		require.True(t, ok)
	}
	return m
}

func TestMultiSelectModel_Update(t *testing.T) {
	items := []string{"feat-a (merged)", "feat-b (remote deleted)", "feat-c (merged + remote deleted) ⚠ dirty"}

	tests := []struct {
		name     string
		keys     []tea.Msg
		expected []int
	}{
		{
			name:     "confirm without toggling selects nothing",
			keys:     []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}},
			expected: []int{},
		},
		{
			name:     "toggle first and third",
			keys:     []tea.Msg{space(), tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, runes("x"), tea.KeyMsg{Type: tea.KeyEnter}},
			expected: []int{0, 2},
		},
		{
			name:     "toggle twice clears",
			keys:     []tea.Msg{space(), space(), tea.KeyMsg{Type: tea.KeyEnter}},
			expected: []int{},
		},
		{
			name:     "select all",
			keys:     []tea.Msg{runes("a"), tea.KeyMsg{Type: tea.KeyEnter}},
			expected: []int{0, 1, 2},
		},
		{
			name:     "select all twice clears",
			keys:     []tea.Msg{runes("a"), runes("a"), tea.KeyMsg{Type: tea.KeyEnter}},
			expected: []int{},
		},
		{
			name:     "cursor stays in bounds",
			keys:     []tea.Msg{tea.KeyMsg{Type: tea.KeyUp}, runes("j"), runes("j"), runes("j"), runes("j"), space(), tea.KeyMsg{Type: tea.KeyEnter}},
			expected: []int{2},
		},
		{
			name:     "cancel discards selection",
			keys:     []tea.Msg{space(), runes("q")},
			expected: []int{},
		},
		{
			name:     "ctrl+c discards selection",
			keys:     []tea.Msg{runes("a"), tea.KeyMsg{Type: tea.KeyCtrlC}},
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(t, initialMultiSelectModel("Select worktrees to remove", items), tt.keys...)
			assert.Equal(t, tt.expected, m.selectedIndices())
		})
	}
}

func TestMultiSelectModel_View(t *testing.T) {
	m := initialMultiSelectModel("Select worktrees to remove", []string{"feat-a (merged)", "feat-b (remote deleted)"})

	view := m.View()
	assert.Contains(t, view, "Select worktrees to remove")
	assert.Contains(t, view, "feat-a (merged)")
	assert.Contains(t, view, "feat-b (remote deleted)")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.View())
}

func TestRealPrompt_PromptMultiSelect_NoChoices(t *testing.T) {
	_, err := NewPrompt().PromptMultiSelect("Select", nil)
	assert.ErrorIs(t, err, ErrNoChoices)
}
