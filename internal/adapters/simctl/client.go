package simctl

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/renato0307/simclean/internal/adapters/process"
	"github.com/renato0307/simclean/internal/domain"
	"github.com/renato0307/simclean/internal/logging"
	"github.com/renato0307/simclean/internal/ports"
)

// Client implements ports.DeviceManager on top of `xcrun simctl`
type Client struct {
	run process.Runner
}

// Verify interface compliance at compile time
var _ ports.DeviceManager = (*Client)(nil)

// NewClient creates a Client that shells out to xcrun
func NewClient() *Client {
	return NewClientWithRunner(process.Run)
}

// NewClientWithRunner creates a Client using a custom command runner (for testing)
func NewClientWithRunner(run process.Runner) *Client {
	return &Client{run: run}
}

func (c *Client) simctl(ctx context.Context, args ...string) ([]byte, error) {
	return c.run(ctx, "xcrun", append([]string{"simctl"}, args...)...)
}

// ListDevices implements ports.DeviceManager.ListDevices
func (c *Client) ListDevices(ctx context.Context) ([]domain.Device, error) {
	output, err := c.simctl(ctx, "list", "devices", "--json")
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	devices, err := decodeDeviceList(output)
	if err != nil {
		return nil, err
	}

	logging.Logger.Debug("Listed simulator devices", "count", len(devices))
	return devices, nil
}

// DeleteDevice implements ports.DeviceManager.DeleteDevice
func (c *Client) DeleteDevice(ctx context.Context, udid string) error {
	if _, err := c.simctl(ctx, "delete", udid); err != nil {
		return fmt.Errorf("failed to delete device %s: %w", udid, err)
	}
	logging.Logger.Info("Device deleted", "udid", udid)
	return nil
}

// CreateDevice implements ports.DeviceManager.CreateDevice
func (c *Client) CreateDevice(ctx context.Context, name, deviceType, runtime string) (string, error) {
	output, err := c.simctl(ctx, "create", name, deviceType, runtime)
	if err != nil {
		return "", fmt.Errorf("failed to create device %q: %w", name, err)
	}
	udid := strings.TrimSpace(string(output))
	logging.Logger.Info("Device created", "name", name, "device_type", deviceType, "runtime", runtime, "udid", udid)
	return udid, nil
}

// listResponse is the shape of `simctl list devices --json`
type listResponse struct {
	Devices map[string][]listedDevice `json:"devices"`
}

type listedDevice struct {
	DeviceTypeIdentifier *string `json:"deviceTypeIdentifier"`
	Name                 *string `json:"name"`
	State                *string `json:"state"`
	UDID                 *string `json:"udid"`
}

// decodeDeviceList flattens the runtime -> devices mapping into one list.
// Runtimes are visited in lexical order; devices keep their order within a runtime.
func decodeDeviceList(data []byte) ([]domain.Device, error) {
	var resp listResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedDeviceList, err)
	}
	if resp.Devices == nil {
		return nil, fmt.Errorf("%w: missing \"devices\" object", domain.ErrMalformedDeviceList)
	}

	runtimes := make([]string, 0, len(resp.Devices))
	for runtime := range resp.Devices {
		runtimes = append(runtimes, runtime)
	}
	slices.Sort(runtimes)

	var devices []domain.Device
	for _, runtime := range runtimes {
		for i, d := range resp.Devices[runtime] {
			device, err := d.toDomain(runtime)
			if err != nil {
				return nil, fmt.Errorf("%w: %s[%d]: %v", domain.ErrMalformedDeviceList, runtime, i, err)
			}
			devices = append(devices, device)
		}
	}

	return devices, nil
}

func (d listedDevice) toDomain(runtime string) (domain.Device, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{"name", d.Name},
		{"state", d.State},
		{"udid", d.UDID},
		{"deviceTypeIdentifier", d.DeviceTypeIdentifier},
	}
	for _, f := range fields {
		if f.value == nil {
			return domain.Device{}, fmt.Errorf("missing field %q", f.name)
		}
	}

	return domain.Device{
		DeviceType: *d.DeviceTypeIdentifier,
		Name:       *d.Name,
		Runtime:    runtime,
		State:      *d.State,
		UDID:       *d.UDID,
	}, nil
}
