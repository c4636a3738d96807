package prompt

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptMultiSelect lets the user pick any number of items and returns their indices in ascending order.
	// Cancelling the prompt returns an empty selection.
	PromptMultiSelect(title string, items []string) ([]int, error)
}

type realPrompt struct {
	input  io.Reader
	output io.Writer
}

// NewPrompt creates a new Prompt instance reading the terminal.
func NewPrompt() Prompter {
	return &realPrompt{
		input:  os.Stdin,
		output: os.Stderr,
	}
}

// PromptMultiSelect runs the Bubble Tea multi-select program.
func (p *realPrompt) PromptMultiSelect(title string, items []string) ([]int, error) {
	if len(items) == 0 {
		return nil, ErrNoChoices
	}

	program := tea.NewProgram(
		initialMultiSelectModel(title, items),
		tea.WithInput(p.input),
		tea.WithOutput(p.output),
	)

	finalModel, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run selection program: %w", err)
	}

	model, ok := finalModel.(multiSelectModel)
	if !ok {
		return nil, ErrUnexpectedModelType
	}

	return model.selectedIndices(), nil
}
