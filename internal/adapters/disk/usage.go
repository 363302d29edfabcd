package disk

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/renato0307/simclean/internal/adapters/process"
	"github.com/renato0307/simclean/internal/domain"
	"github.com/renato0307/simclean/internal/ports"
)

// Usage implements ports.DiskUsage using `du -sh`
type Usage struct {
	run process.Runner
}

// Verify interface compliance at compile time
var _ ports.DiskUsage = (*Usage)(nil)

// NewUsage creates a Usage that shells out to du
func NewUsage() *Usage {
	return NewUsageWithRunner(process.Run)
}

// NewUsageWithRunner creates a Usage using a custom command runner (for testing)
func NewUsageWithRunner(run process.Runner) *Usage {
	return &Usage{run: run}
}

// Size implements ports.DiskUsage.Size
func (u *Usage) Size(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DirectoryNotFound, nil
		}
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}

	output, err := u.run(ctx, "du", "-sh", path)
	if err != nil {
		return "", fmt.Errorf("failed to measure %s: %w", path, err)
	}

	return parseSize(string(output)), nil
}

// parseSize returns the size column of du output ("1.2G\t/path" -> "1.2G")
func parseSize(output string) string {
	fields := strings.Fields(output)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
