package ide

import (
	"fmt"

	"github.com/lerenn/arvore/pkg/fs"
)

const (
	// WarpName is the name identifier for the Warp terminal.
	WarpName = "warp"
	// WarpCommand is the launcher used to open Warp.
	WarpCommand = "open"
	// WarpApplication is the application name handed to the launcher.
	WarpApplication = "Warp"
)

// Warp represents the Warp terminal, opened through the macOS launcher.
type Warp struct {
	fs fs.FS
}

// NewWarp creates a new Warp instance.
func NewWarp(fs fs.FS) *Warp {
	return &Warp{
		fs: fs,
	}
}

// Name returns the name of the application.
func (w *Warp) Name() string {
	return WarpName
}

// DisplayName returns the human readable name of the application.
func (w *Warp) DisplayName() string {
	return WarpApplication
}

// IsInstalled checks if the launcher is available.
func (w *Warp) IsInstalled() bool {
	_, err := w.fs.Which(WarpCommand)
	return err == nil
}

// OpenRepository opens a Warp window at the specified path.
func (w *Warp) OpenRepository(path string) error {
	if err := w.fs.ExecuteCommand(WarpCommand, "-a", WarpApplication, path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrIDEExecutionFailed, WarpApplication, err)
	}
	return nil
}
