package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/renato0307/simclean/internal/config"
	"github.com/renato0307/simclean/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d" env:"SIMCLEAN_DEBUG"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)" env:"SIMCLEAN_DEBUG_FILE"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000" env:"SIMCLEAN_MAX_LOG_FILES"`

	Clean CleanCmd `cmd:"" help:"Select simulator devices, wipe them and optionally recreate them (default)" default:"1"`
	List  ListCmd  `cmd:"list" help:"List simulator devices with their on-disk size"`

	// Internal fields (not flags)
	Container *Container `kong:"-"`
}

// AfterApply initializes logging after CLI parsing and wires the container
func (c *CLI) AfterApply(kctx *kong.Context) error {
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes inherit the same debug settings and log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv(config.EnvDebug, "1")
		if logFilePath != "" {
			os.Setenv(config.EnvDebugFile, logFilePath)
		}
	}
	if c.MaxLogFiles != config.DefaultMaxLogFiles {
		os.Setenv(config.EnvMaxLogFiles, strconv.Itoa(c.MaxLogFiles))
	}

	c.Container = NewContainer(os.Stdout)
	kctx.Bind(c.Container)

	logging.Logger.Debug("CLI initialized", "command", kctx.Command())
	return nil
}

// fail logs err and returns it wrapped for display by main
func fail(action string, err error) error {
	logging.Logger.Error("Command failed", "action", action, "error", err)
	return fmt.Errorf("%s: %w", action, err)
}
