package arvore

import (
	"fmt"

	"github.com/lerenn/arvore/pkg/ide"
)

// OpenWorktreeOpts contains optional parameters for OpenWorktree.
// Without any flag the worktree is opened in every application.
type OpenWorktreeOpts struct {
	Cursor bool
	Warp   bool
	All    bool
}

// OpenWorktree opens the worktree of branch and returns the display names of
// the applications launched.
func (a *realArvore) OpenWorktree(branch string, opts ...OpenWorktreeOpts) ([]string, error) {
	options := extractOpenWorktreeOptions(opts)

	if branch == "" {
		return nil, ErrBranchNameEmpty
	}

	repo, err := a.openRepository()
	if err != nil {
		return nil, err
	}

	worktreePath := repo.worktreePath(branch)
	if !a.pathExists(worktreePath) {
		return nil, fmt.Errorf("%w: %s", ErrWorktreeNotFound, worktreePath)
	}

	return a.openInApplications(worktreePath, options.applications())
}

// applications returns the names of the applications selected by the options.
func (o OpenWorktreeOpts) applications() []string {
	var names []string
	if o.All || o.Warp || !o.Cursor {
		names = append(names, ide.WarpName)
	}
	if o.All || o.Cursor || !o.Warp {
		names = append(names, ide.CursorName)
	}
	return names
}

// allApplications returns every application a worktree can be opened in.
func allApplications() []string {
	return OpenWorktreeOpts{All: true}.applications()
}

// openInApplications opens path in each named application, stopping at the first failure.
func (a *realArvore) openInApplications(path string, names []string) ([]string, error) {
	opened := make([]string, 0, len(names))
	for _, name := range names {
		app, err := a.deps.IDEManager.GetIDE(name)
		if err != nil {
			return opened, err
		}

		a.VerbosePrint("Opening %s in %s", path, app.DisplayName())
		if err := a.deps.IDEManager.OpenIDE(name, path); err != nil {
			return opened, fmt.Errorf("failed to open %s: %w", app.DisplayName(), err)
		}
		opened = append(opened, app.DisplayName())
	}
	return opened, nil
}

// extractOpenWorktreeOptions merges options, a flag set in any of them stays set.
func extractOpenWorktreeOptions(opts []OpenWorktreeOpts) OpenWorktreeOpts {
	var result OpenWorktreeOpts
	for _, opt := range opts {
		result.Cursor = result.Cursor || opt.Cursor
		result.Warp = result.Warp || opt.Warp
		result.All = result.All || opt.All
	}
	return result
}
