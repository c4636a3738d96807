package fs

import (
	"fmt"
	"os/exec"
)

// ExecuteCommand executes a command with arguments in the background.
func (f *realFS) ExecuteCommand(command string, args ...string) error {
	cmd := exec.Command(command, args...)

	// Start command in background (don't wait for completion)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCommandStart, command, err)
	}

	// Reap the child once it exits.
	go func() { _ = cmd.Wait() }()

	return nil
}
