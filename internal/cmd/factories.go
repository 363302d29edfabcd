package cmd

import (
	"io"

	adapterdisk "github.com/renato0307/simclean/internal/adapters/disk"
	adaptersimctl "github.com/renato0307/simclean/internal/adapters/simctl"
	adapterworkspace "github.com/renato0307/simclean/internal/adapters/workspace"
	"github.com/renato0307/simclean/internal/services"
	"github.com/renato0307/simclean/internal/ui"
)

// Container holds all dependencies for the application
type Container struct {
	CleanerService *services.CleanerService
}

// NewContainer creates a new Container with all dependencies wired.
// Progress output goes to out.
func NewContainer(out io.Writer) *Container {
	deviceManager := adaptersimctl.NewClient()
	diskUsage := adapterdisk.NewUsage()
	prompter := ui.NewPrompter()
	workspace := adapterworkspace.NewWorkspace()

	return &Container{
		CleanerService: services.NewCleanerService(deviceManager, diskUsage, prompter, workspace, out),
	}
}
