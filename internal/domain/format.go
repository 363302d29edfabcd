package domain

import "fmt"

// DirectoryNotFound is reported as the size of a device without on-disk data
const DirectoryNotFound = "Directory not found"

// SelectionRow formats a device for the selection menu:
// name (30 cols), runtime (15 cols), state (10 cols), size
func SelectionRow(d Device, size string) string {
	return fmt.Sprintf("%-30s %-15s %-10s %s", d.Name, d.RuntimeVersion(), d.State, size)
}

// ListingRow formats a device for the final listing:
// name (30 cols), runtime (10 cols), size
func ListingRow(d Device, size string) string {
	return fmt.Sprintf("%-30s %-10s %s", d.Name, d.RuntimeVersion(), size)
}

// ProgressLine formats the per-device line printed while deleting or recreating
func ProgressLine(d Device) string {
	return fmt.Sprintf("  %s [%s]...", d.Name, d.RuntimeVersion())
}
