package ide

import "errors"

var (
	// ErrIDENotInstalled is returned when an application is not installed on the system.
	ErrIDENotInstalled = errors.New("IDE not installed")

	// ErrUnsupportedIDE is returned when an application is not supported.
	ErrUnsupportedIDE = errors.New("unsupported IDE")

	// ErrIDEExecutionFailed is returned when the launch command fails.
	ErrIDEExecutionFailed = errors.New("failed to execute IDE command")
)
