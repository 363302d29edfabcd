package ports

import "context"

// DiskUsage reports how much space a device directory takes
type DiskUsage interface {
	// Size returns a human-readable size for path, or domain.DirectoryNotFound
	// when path does not exist
	Size(ctx context.Context, path string) (string, error)
}
