package arvore

import (
	"fmt"

	"github.com/lerenn/arvore/pkg/cleanup"
	"github.com/lerenn/arvore/pkg/git"
)

// CleanSelectionTitle is the title of the selection prompt.
const CleanSelectionTitle = "Select worktrees to remove"

// CleanOpts contains optional parameters for Clean.
type CleanOpts struct {
	// DryRun returns the candidates without prompting or removing anything.
	DryRun bool
	// OnFetch is called once the repository is found, before the remotes are fetched.
	OnFetch func()
	// OnCandidates is called with the candidates before the selection prompt.
	OnCandidates func(candidates []cleanup.Candidate)
}

// CleanFailure is a candidate whose removal failed.
type CleanFailure struct {
	Candidate cleanup.Candidate
	Err       error
}

// CleanResult summarizes a clean run.
type CleanResult struct {
	Candidates []cleanup.Candidate
	Selected   []cleanup.Candidate
	Removed    []cleanup.Candidate
	Failures   []CleanFailure
}

// Clean removes the worktrees whose branch is merged into the main branch or
// was deleted on the remote, among those the user selects.
func (a *realArvore) Clean(opts ...CleanOpts) (CleanResult, error) {
	options := extractCleanOptions(opts)

	repo, err := a.openRepository()
	if err != nil {
		return CleanResult{}, err
	}

	if options.OnFetch != nil {
		options.OnFetch()
	}

	candidates, err := a.cleanCandidates(repo)
	if err != nil {
		return CleanResult{}, err
	}

	result := CleanResult{Candidates: candidates}
	if len(candidates) == 0 {
		a.VerbosePrint("No worktrees to clean up")
		return result, nil
	}

	if options.OnCandidates != nil {
		options.OnCandidates(candidates)
	}

	if options.DryRun {
		return result, nil
	}

	labels := make([]string, 0, len(candidates))
	for _, c := range candidates {
		labels = append(labels, c.Label())
	}

	indices, err := a.deps.Prompt.PromptMultiSelect(CleanSelectionTitle, labels)
	if err != nil {
		return result, fmt.Errorf("failed to select worktrees: %w", err)
	}

	for _, i := range indices {
		if i >= 0 && i < len(candidates) {
			result.Selected = append(result.Selected, candidates[i])
		}
	}
	if len(result.Selected) == 0 {
		return result, nil
	}

	for _, c := range result.Selected {
		a.VerbosePrint("Removing %s at %s (force: %t)", c.Branch, c.Path, c.Dirty)
		if err := a.deps.Git.RemoveWorktree(repo.root, c.Path, c.Dirty); err != nil {
			result.Failures = append(result.Failures, CleanFailure{Candidate: c, Err: err})
			continue
		}
		result.Removed = append(result.Removed, c)
	}

	if err := a.deps.Git.PruneWorktrees(repo.root); err != nil {
		return result, fmt.Errorf("failed to prune worktrees: %w", err)
	}

	return result, nil
}

// cleanCandidates fetches the remote state and selects the removable worktrees.
func (a *realArvore) cleanCandidates(repo repository) ([]cleanup.Candidate, error) {
	a.VerbosePrint("Fetching and pruning remotes")
	if err := a.deps.Git.FetchPrune(repo.root); err != nil {
		return nil, fmt.Errorf("failed to fetch remotes: %w", err)
	}

	mainBranch, err := a.deps.Git.GetMainBranch(repo.root)
	if err != nil {
		return nil, err
	}
	a.VerbosePrint("Main branch: %s", mainBranch)

	merged, err := a.deps.Git.MergedBranches(repo.root, mainBranch)
	if err != nil {
		return nil, fmt.Errorf("failed to list merged branches: %w", err)
	}

	worktrees, err := a.deps.Git.ListWorktrees(repo.root)
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %w", err)
	}

	return cleanup.SelectCandidates(cleanup.SelectCandidatesParams{
		Worktrees:      worktrees,
		MainBranch:     mainBranch,
		MergedBranches: merged,
		RemoteBranchExists: func(branch string) (bool, error) {
			return a.deps.Git.BranchExistsOnRemote(git.BranchExistsOnRemoteParams{
				RepoPath:   repo.root,
				RemoteName: git.DefaultRemote,
				Branch:     branch,
			})
		},
		PathExists: a.pathExists,
		IsDirty:    a.deps.Git.IsDirty,
	})
}

// extractCleanOptions merges options, later options overriding earlier ones.
func extractCleanOptions(opts []CleanOpts) CleanOpts {
	var result CleanOpts
	for _, opt := range opts {
		result.DryRun = result.DryRun || opt.DryRun
		if opt.OnFetch != nil {
			result.OnFetch = opt.OnFetch
		}
		if opt.OnCandidates != nil {
			result.OnCandidates = opt.OnCandidates
		}
	}
	return result
}
