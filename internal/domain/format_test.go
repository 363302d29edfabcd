package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionRow_FixedWidthColumns(t *testing.T) {
	d := Device{
		Name:    "iPhone 15",
		Runtime: "com.apple.CoreSimulator.SimRuntime.iOS-17-0",
		State:   "Shutdown",
	}

	row := SelectionRow(d, "1.2G")

	assert.Equal(t, "iPhone 15"+strings.Repeat(" ", 21)+" iOS-17-0"+strings.Repeat(" ", 7)+" Shutdown   1.2G", row)
}

func TestSelectionRow_LongNameIsNotTruncated(t *testing.T) {
	d := Device{Name: strings.Repeat("x", 40), Runtime: "a.b", State: "Booted"}

	row := SelectionRow(d, DirectoryNotFound)

	assert.True(t, strings.HasPrefix(row, strings.Repeat("x", 40)+" b"))
	assert.True(t, strings.HasSuffix(row, "Directory not found"))
}

func TestListingRow(t *testing.T) {
	d := Device{Name: "iPad Air", Runtime: "com.apple.CoreSimulator.SimRuntime.iOS-17-0"}

	row := ListingRow(d, "512K")

	assert.Equal(t, "iPad Air"+strings.Repeat(" ", 22)+" iOS-17-0   512K", row)
}

func TestProgressLine(t *testing.T) {
	d := Device{Name: "iPhone 15", Runtime: "com.apple.CoreSimulator.SimRuntime.iOS-17-0"}

	assert.Equal(t, "  iPhone 15 [iOS-17-0]...", ProgressLine(d))
}
