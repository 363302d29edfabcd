package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Environment variables shared between the CLI flags and the logger
const (
	EnvDebug       = "SIMCLEAN_DEBUG"
	EnvDebugFile   = "SIMCLEAN_DEBUG_FILE"
	EnvMaxLogFiles = "SIMCLEAN_MAX_LOG_FILES"
)

// DefaultMaxLogFiles is the default number of log files kept by rotation
const DefaultMaxLogFiles = 1000

// devicesSubdir is where CoreSimulator keeps one directory per device udid
var devicesSubdir = filepath.Join("Library", "Developer", "CoreSimulator", "Devices")

// DevicesDir returns ~/Library/Developer/CoreSimulator/Devices
func DevicesDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, devicesSubdir), nil
}

// LogDir returns the OS-specific log directory
func LogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		// macOS: ~/Library/Logs/simclean
		return filepath.Join(homeDir, "Library", "Logs", "simclean"), nil
	case "linux":
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "simclean"), nil
	default:
		return filepath.Join(homeDir, ".simclean", "logs"), nil
	}
}
