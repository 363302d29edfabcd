package cmd

import (
	"context"

	"github.com/renato0307/simclean/internal/logging"
)

// CleanCmd runs the interactive wipe/recreate workflow
type CleanCmd struct{}

// Run executes the clean command
func (c *CleanCmd) Run(container *Container) error {
	logging.Logger.Info("Executing clean command")

	result, err := container.CleanerService.Clean(context.Background())
	if err != nil {
		return fail("failed to clean devices", err)
	}

	if result.Cancelled {
		logging.Logger.Info("Clean cancelled by user")
		return nil
	}

	logging.Logger.Info("Clean command finished",
		"victims", len(result.Victims),
		"recreated", result.Recreated,
		"devices", result.Devices.Len())
	return nil
}
