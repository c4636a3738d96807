// Package dependencies provides a centralized dependency container for arvore.
// Related dependencies are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"

	"github.com/lerenn/arvore/pkg/config"
	"github.com/lerenn/arvore/pkg/fs"
	"github.com/lerenn/arvore/pkg/git"
	"github.com/lerenn/arvore/pkg/ide"
	"github.com/lerenn/arvore/pkg/logger"
	"github.com/lerenn/arvore/pkg/prompt"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing         = errors.New("fs dependency is required but not set")
	ErrGitMissing        = errors.New("git dependency is required but not set")
	ErrConfigMissing     = errors.New("config dependency is required but not set")
	ErrLoggerMissing     = errors.New("logger dependency is required but not set")
	ErrPromptMissing     = errors.New("prompt dependency is required but not set")
	ErrIDEManagerMissing = errors.New("ide manager dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS         fs.FS
	Git        git.Git
	Config     config.Manager
	Logger     logger.Logger
	Prompt     prompt.Prompter
	IDEManager ide.ManagerInterface
}

// New creates a new Dependencies instance with defaults.
// Config is left nil as it depends on the config path chosen by the caller.
func New() *Dependencies {
	filesystem := fs.NewFS()
	noop := logger.NewNoopLogger()

	return &Dependencies{
		FS:         filesystem,
		Git:        git.NewGit(),
		Logger:     noop,
		Prompt:     prompt.NewPrompt(),
		IDEManager: ide.NewManager(filesystem, noop),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithIDEManager sets the application manager and returns the instance for chaining.
func (d *Dependencies) WithIDEManager(m ide.ManagerInterface) *Dependencies {
	d.IDEManager = m
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Git, ErrGitMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
		{d.IDEManager, ErrIDEManagerMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
