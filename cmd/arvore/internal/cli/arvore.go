package cli

import (
	"github.com/lerenn/arvore/pkg/arvore"
	"github.com/lerenn/arvore/pkg/dependencies"
	"github.com/lerenn/arvore/pkg/ide"
	"github.com/lerenn/arvore/pkg/logger"
)

// NewArvore creates an Arvore instance working on the current directory.
func NewArvore() (arvore.Arvore, error) {
	configManager, err := NewConfigManager()
	if err != nil {
		return nil, err
	}

	deps := dependencies.New().WithConfig(configManager)
	if Verbose {
		verboseLogger := logger.NewVerboseLogger()
		deps = deps.
			WithLogger(verboseLogger).
			WithIDEManager(ide.NewManager(deps.FS, verboseLogger))
	}

	return arvore.NewArvore(arvore.NewArvoreParams{
		Dependencies: deps,
	})
}
