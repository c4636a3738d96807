// Package prompt provides interactive prompt functionality for arvore.
package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrNoChoices           = errors.New("no choices available")
	ErrUnexpectedModelType = errors.New("unexpected model type")
)
