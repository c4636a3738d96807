package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultRemote is the remote queried for remote branches.
const DefaultRemote = "origin"

const headsPrefix = "refs/heads/"

// run executes git with args in dir and returns its trimmed standard output.
// A non-zero exit is reported as ErrCommandFailed carrying git's standard error.
func (g *realGit) run(dir string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		message := strings.TrimSpace(stderr.String())
		if message == "" {
			message = err.Error()
		}
		return "", fmt.Errorf("%w: %s (command: git %s)", ErrCommandFailed, message, strings.Join(args, " "))
	}

	return strings.TrimSpace(stdout.String()), nil
}
