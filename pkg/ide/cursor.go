package ide

import (
	"fmt"

	"github.com/lerenn/arvore/pkg/fs"
)

const (
	// CursorName is the name identifier for the Cursor editor.
	CursorName = "cursor"
	// CursorCommand is the command to open Cursor.
	CursorCommand = "cursor"
	// CursorDisplayName is the human readable name of Cursor.
	CursorDisplayName = "Cursor"
)

// Cursor represents the Cursor editor.
type Cursor struct {
	fs fs.FS
}

// NewCursor creates a new Cursor instance.
func NewCursor(fs fs.FS) *Cursor {
	return &Cursor{
		fs: fs,
	}
}

// Name returns the name of the application.
func (c *Cursor) Name() string {
	return CursorName
}

// DisplayName returns the human readable name of the application.
func (c *Cursor) DisplayName() string {
	return CursorDisplayName
}

// IsInstalled checks if Cursor is installed on the system.
func (c *Cursor) IsInstalled() bool {
	_, err := c.fs.Which(CursorCommand)
	return err == nil
}

// OpenRepository opens Cursor with the specified path.
func (c *Cursor) OpenRepository(path string) error {
	if err := c.fs.ExecuteCommand(CursorCommand, path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrIDEExecutionFailed, CursorCommand, err)
	}
	return nil
}
