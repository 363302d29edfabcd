package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/renato0307/simclean/internal/domain"
	"github.com/renato0307/simclean/internal/logging"
	"github.com/renato0307/simclean/internal/ports"
)

// CleanResult summarizes one pass of the clean workflow
type CleanResult struct {
	Cancelled bool               // User quit or submitted an empty selection
	Devices   *domain.DeviceList // Devices after the final enumeration
	Recreated bool
	Victims   domain.Victims
}

// CleanerService wipes simulator devices and optionally recreates them.
// Every stage takes the output of the previous one; nothing is shared between runs.
type CleanerService struct {
	deviceManager ports.DeviceManager
	diskUsage     ports.DiskUsage
	out           io.Writer
	prompter      ports.DevicePrompter
	workspace     ports.Workspace
}

// NewCleanerService creates a new CleanerService writing progress to out
func NewCleanerService(
	deviceManager ports.DeviceManager,
	diskUsage ports.DiskUsage,
	prompter ports.DevicePrompter,
	workspace ports.Workspace,
	out io.Writer,
) *CleanerService {
	return &CleanerService{
		deviceManager: deviceManager,
		diskUsage:     diskUsage,
		out:           out,
		prompter:      prompter,
		workspace:     workspace,
	}
}

// Clean runs the whole workflow: enter the device directory, enumerate,
// select, delete, optionally recreate, then print the fresh device list.
// A cancelled or empty selection returns a result with Cancelled set and no error.
func (s *CleanerService) Clean(ctx context.Context) (*CleanResult, error) {
	logging.Logger.Info("Starting clean workflow")

	dir, err := s.workspace.Enter()
	if err != nil {
		return nil, err
	}

	devices, err := s.Enumerate(ctx)
	if err != nil {
		return nil, err
	}

	victims, err := s.SelectVictims(ctx, dir, devices)
	if err != nil {
		return nil, err
	}
	if len(victims) == 0 {
		logging.Logger.Info("Nothing selected, exiting")
		return &CleanResult{Cancelled: true, Devices: devices}, nil
	}

	fmt.Fprintln(s.out, "\nDeleting device data:")
	if err := s.DeleteVictims(ctx, victims); err != nil {
		return nil, err
	}

	recreate, err := s.prompter.ConfirmRecreate()
	if err != nil {
		return nil, err
	}
	if recreate {
		fmt.Fprintln(s.out, "Recreating following devices:")
		if err := s.RecreateVictims(ctx, victims); err != nil {
			return nil, err
		}
	}

	fmt.Fprintln(s.out, "Device data cleared. \nNew devices state:")
	fmt.Fprintln(s.out)

	refreshed, err := s.Enumerate(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.PrintListing(ctx, dir, refreshed); err != nil {
		return nil, err
	}

	logging.Logger.Info("Clean workflow finished", "victims", len(victims), "recreated", recreate)
	return &CleanResult{
		Devices:   refreshed,
		Recreated: recreate,
		Victims:   victims,
	}, nil
}

// List enters the device directory and prints every device with its size
func (s *CleanerService) List(ctx context.Context) (*domain.DeviceList, error) {
	dir, err := s.workspace.Enter()
	if err != nil {
		return nil, err
	}

	devices, err := s.Enumerate(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.PrintListing(ctx, dir, devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// Enumerate returns a fresh snapshot of the devices known to the device manager
func (s *CleanerService) Enumerate(ctx context.Context) (*domain.DeviceList, error) {
	devices, err := s.deviceManager.ListDevices(ctx)
	if err != nil {
		return nil, err
	}
	logging.Logger.Debug("Enumerated devices", "count", len(devices))
	return domain.NewDeviceList(devices), nil
}

// SelectionRows formats every device in the snapshot for the selection menu
func (s *CleanerService) SelectionRows(ctx context.Context, dir string, devices *domain.DeviceList) ([]string, error) {
	rows := make([]string, 0, devices.Len())
	for _, device := range devices.All() {
		size, err := s.imageSize(ctx, dir, device)
		if err != nil {
			return nil, err
		}
		rows = append(rows, domain.SelectionRow(device, size))
	}
	return rows, nil
}

// SelectVictims asks the user which devices to wipe.
// Returns no victims when the user cancels or selects nothing.
func (s *CleanerService) SelectVictims(ctx context.Context, dir string, devices *domain.DeviceList) (domain.Victims, error) {
	rows, err := s.SelectionRows(ctx, dir, devices)
	if err != nil {
		return nil, err
	}

	indices, confirmed, err := s.prompter.SelectDevices(rows)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, nil
	}

	return devices.Pick(indices)
}

// DeleteVictims deletes every victim through the device manager, stopping at the first failure
func (s *CleanerService) DeleteVictims(ctx context.Context, victims domain.Victims) error {
	for _, device := range victims {
		fmt.Fprintln(s.out, domain.ProgressLine(device))
		if err := s.deviceManager.DeleteDevice(ctx, device.UDID); err != nil {
			return err
		}
	}
	return nil
}

// RecreateVictims creates a new device for every victim using its original
// name, device type and runtime
func (s *CleanerService) RecreateVictims(ctx context.Context, victims domain.Victims) error {
	if _, err := s.workspace.Enter(); err != nil {
		return err
	}

	for _, device := range victims {
		fmt.Fprintln(s.out, domain.ProgressLine(device))
		udid, err := s.deviceManager.CreateDevice(ctx, device.Name, device.DeviceType, device.Runtime)
		if err != nil {
			return err
		}
		logging.Logger.Debug("Recreated device", "name", device.Name, "old_udid", device.UDID, "new_udid", udid)
	}
	return nil
}

// PrintListing prints one row per device: name, runtime and size
func (s *CleanerService) PrintListing(ctx context.Context, dir string, devices *domain.DeviceList) error {
	for _, device := range devices.All() {
		size, err := s.imageSize(ctx, dir, device)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, domain.ListingRow(device, size))
	}
	return nil
}

func (s *CleanerService) imageSize(ctx context.Context, dir string, device domain.Device) (string, error) {
	return s.diskUsage.Size(ctx, filepath.Join(dir, device.UDID))
}
