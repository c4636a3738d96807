package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	ErrConfigFileRead  = errors.New("failed to read config file")
	// Environment errors.
	ErrHomeDirNotFound = errors.New("cannot determine home directory")
)
