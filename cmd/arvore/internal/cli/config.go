// Package cli provides configuration and construction helpers shared by the arvore commands.
package cli

import (
	"github.com/lerenn/arvore/pkg/config"
)

var (
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// GetConfigPath returns the config file path: the --config flag when set,
// ~/.config/arvore/config.yaml otherwise.
func GetConfigPath() (string, error) {
	if ConfigPath != "" {
		return config.ExpandTilde(ConfigPath)
	}
	return config.DefaultConfigPath()
}

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() (config.Manager, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return config.NewManager(path), nil
}
