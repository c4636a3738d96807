// Package config provides configuration management functionality for arvore.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lerenn/arvore/configs"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	// GetConfig loads the configuration, falling back to defaults when the file
	// or the worktree_base key is absent.
	GetConfig() (Config, error)
	// DefaultConfig returns the configuration used without a config file.
	DefaultConfig() (Config, error)
	// GetConfigPath returns the embedded config path.
	GetConfigPath() string
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(configPath string) Manager {
	return &realManager{
		configPath: configPath,
	}
}

// DefaultConfigPath returns ~/.config/arvore/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHomeDirNotFound, err)
	}
	return filepath.Join(homeDir, ".config", "arvore", "config.yaml"), nil
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	data, err := os.ReadFile(c.configPath)
	if os.IsNotExist(err) {
		return c.DefaultConfig()
	}
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if config.WorktreeBase == "" {
		config.WorktreeBase = DefaultWorktreeBase
	}

	// Expand tildes in configuration paths
	if err := config.expandTildes(); err != nil {
		return Config{}, fmt.Errorf("failed to expand tildes in configuration: %w", err)
	}

	return config, nil
}

// DefaultConfig returns the default configuration embedded in the binary.
func (c *realManager) DefaultConfig() (Config, error) {
	var config Config
	if err := yaml.Unmarshal(configs.DefaultConfigYAML, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if config.WorktreeBase == "" {
		config.WorktreeBase = DefaultWorktreeBase
	}

	if err := config.expandTildes(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}
