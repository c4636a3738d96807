// Package ide provides the external applications a worktree can be opened in.
package ide

import (
	"fmt"

	"github.com/lerenn/arvore/pkg/fs"
	"github.com/lerenn/arvore/pkg/logger"
)

// IDE interface defines the methods that all application implementations must provide.
type IDE interface {
	// Name returns the identifier of the application.
	Name() string

	// DisplayName returns the human readable name of the application.
	DisplayName() string

	// IsInstalled checks if the application is installed on the system.
	IsInstalled() bool

	// OpenRepository opens the application at the specified path.
	OpenRepository(path string) error
}

// ManagerInterface defines the interface for application management.
type ManagerInterface interface {
	// GetIDE returns the implementation for the given name.
	GetIDE(name string) (IDE, error)
	// OpenIDE opens the named application at the given path.
	OpenIDE(name, path string) error
}

// Manager manages application implementations.
type Manager struct {
	ides   map[string]IDE
	logger logger.Logger
}

// NewManager creates a new manager with Cursor and Warp registered.
func NewManager(fs fs.FS, l logger.Logger) *Manager {
	if l == nil {
		l = logger.NewNoopLogger()
	}

	m := &Manager{
		ides:   make(map[string]IDE),
		logger: l,
	}

	for _, ide := range []IDE{NewWarp(fs), NewCursor(fs)} {
		m.ides[ide.Name()] = ide
	}

	return m
}

// GetIDE returns the implementation for the given name.
func (m *Manager) GetIDE(name string) (IDE, error) {
	ide, exists := m.ides[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedIDE, name)
	}
	return ide, nil
}

// OpenIDE opens the named application at the given path.
func (m *Manager) OpenIDE(name, path string) error {
	ide, err := m.GetIDE(name)
	if err != nil {
		return err
	}

	if !ide.IsInstalled() {
		return fmt.Errorf("%w: %s", ErrIDENotInstalled, ide.DisplayName())
	}

	m.logger.Logf("Opening %s at path: %s", ide.DisplayName(), path)

	if err := ide.OpenRepository(path); err != nil {
		m.logger.Logf("Failed to open %s: %v", ide.DisplayName(), err)
		return err
	}

	return nil
}
