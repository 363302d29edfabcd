package workspace

import (
	"fmt"
	"os"

	"github.com/renato0307/simclean/internal/config"
	"github.com/renato0307/simclean/internal/logging"
	"github.com/renato0307/simclean/internal/ports"
)

// Workspace implements ports.Workspace for the CoreSimulator device directory
type Workspace struct {
	resolve func() (string, error)
}

// Verify interface compliance at compile time
var _ ports.Workspace = (*Workspace)(nil)

// NewWorkspace creates a Workspace rooted at config.DevicesDir
func NewWorkspace() *Workspace {
	return NewWorkspaceWithResolver(config.DevicesDir)
}

// NewWorkspaceWithResolver creates a Workspace with a custom directory resolver (for testing)
func NewWorkspaceWithResolver(resolve func() (string, error)) *Workspace {
	return &Workspace{resolve: resolve}
}

// Enter implements ports.Workspace.Enter
func (w *Workspace) Enter() (string, error) {
	dir, err := w.resolve()
	if err != nil {
		return "", fmt.Errorf("failed to resolve device directory: %w", err)
	}

	if err := os.Chdir(dir); err != nil {
		return "", fmt.Errorf("failed to enter device directory: %w", err)
	}

	logging.Logger.Debug("Entered device directory", "path", dir)
	return dir, nil
}
