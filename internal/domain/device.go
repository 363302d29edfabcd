package domain

import (
	"fmt"
	"strings"
)

// Device is a simulator device as reported by the device manager
type Device struct {
	DeviceType string // e.g. com.apple.CoreSimulator.SimDeviceType.iPhone-15
	Name       string // Display name, not unique
	Runtime    string // Runtime identifier the device was listed under
	State      string // Booted, Shutdown, ...
	UDID       string // Unique identifier, also the on-disk directory name
}

// RuntimeVersion returns the part of the runtime identifier shown to users
func (d Device) RuntimeVersion() string {
	return RuntimeSuffix(d.Runtime)
}

// RuntimeSuffix returns the substring after the last '.' of a runtime identifier.
// Identifiers without a '.' are returned unchanged.
func RuntimeSuffix(runtime string) string {
	if i := strings.LastIndex(runtime, "."); i >= 0 {
		return runtime[i+1:]
	}
	return runtime
}

// DeviceList is an ordered snapshot of the devices known to the device manager.
// A new DeviceList is built on every enumeration and never mutated afterwards.
type DeviceList struct {
	devices []Device
}

// NewDeviceList creates a snapshot holding a copy of devices
func NewDeviceList(devices []Device) *DeviceList {
	return &DeviceList{devices: append([]Device(nil), devices...)}
}

// Len returns the number of devices in the snapshot
func (l *DeviceList) Len() int {
	return len(l.devices)
}

// At returns the device at index i
func (l *DeviceList) At(i int) Device {
	return l.devices[i]
}

// All returns a copy of the devices in the snapshot
func (l *DeviceList) All() []Device {
	return append([]Device(nil), l.devices...)
}

// Pick resolves selected row indices into Victims.
// The devices are copied, so the result stays valid after the next enumeration.
func (l *DeviceList) Pick(indices []int) (Victims, error) {
	victims := make(Victims, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(l.devices) {
			return nil, fmt.Errorf("%w: %d (have %d devices)", ErrIndexOutOfRange, i, len(l.devices))
		}
		victims = append(victims, l.devices[i])
	}
	return victims, nil
}

// Victims are the devices selected for deletion and optional recreation
type Victims []Device
