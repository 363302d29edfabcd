package process

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/renato0307/simclean/internal/logging"
	"github.com/renato0307/simclean/internal/ports"
)

// Runner runs an external command to completion and returns its stdout
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Run executes name with args and blocks until it exits.
// A failed start or a non-zero exit is reported as ports.ErrCommandFailed.
func Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	logging.Logger.Debug("Running command", "command", name, "args", args)

	output, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		var stderr string
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr = strings.TrimSpace(string(exitErr.Stderr))
		}
		logging.Logger.Error("Command failed", "command", name, "args", args, "error", err, "stderr", stderr)
		if stderr != "" {
			return nil, fmt.Errorf("%w: %s %s: %v\nOutput: %s", ports.ErrCommandFailed, name, strings.Join(args, " "), err, stderr)
		}
		return nil, fmt.Errorf("%w: %s %s: %v", ports.ErrCommandFailed, name, strings.Join(args, " "), err)
	}

	return output, nil
}
