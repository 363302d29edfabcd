package ports

import (
	"context"
	"errors"

	"github.com/renato0307/simclean/internal/domain"
)

// ErrCommandFailed is returned when an external command exits unsuccessfully
var ErrCommandFailed = errors.New("external command failed")

// DeviceManager lists, deletes and creates simulator devices
type DeviceManager interface {
	// CreateDevice creates a device and returns its new udid
	CreateDevice(ctx context.Context, name, deviceType, runtime string) (string, error)
	DeleteDevice(ctx context.Context, udid string) error
	ListDevices(ctx context.Context) ([]domain.Device, error)
}
