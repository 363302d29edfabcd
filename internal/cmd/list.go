package cmd

import (
	"context"

	"github.com/renato0307/simclean/internal/logging"
)

// ListCmd prints every simulator device
type ListCmd struct{}

// Run executes the list command
func (l *ListCmd) Run(container *Container) error {
	logging.Logger.Info("Executing list command")

	devices, err := container.CleanerService.List(context.Background())
	if err != nil {
		return fail("failed to list devices", err)
	}

	logging.Logger.Debug("List command finished", "devices", devices.Len())
	return nil
}
