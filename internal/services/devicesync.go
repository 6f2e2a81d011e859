package services

import (
	"context"
	"errors"
	"time"
)

// Simulated smartwatch integration. No real device protocol exists: the
// connect flow waits a fixed artificial delay and always succeeds. It
// deliberately shares no error types with the ingestion pipeline.

// ErrUnknownDevice is returned for a device id not in the supported list.
var ErrUnknownDevice = errors.New("unknown device")

// KnownDevices are the devices offered by the connect dialog.
var KnownDevices = []string{"apple-watch", "google-fit", "fitbit", "demo", "simulated"}

// ConnectDelay is the artificial pairing delay.
const ConnectDelay = 1500 * time.Millisecond

// DeviceConnection is the result of a (simulated) successful pairing.
type DeviceConnection struct {
	Device      string    `json:"device"`
	Status      string    `json:"status"`
	ConnectedAt time.Time `json:"connected_at"`
}

type DeviceSync struct {
	delay time.Duration
}

func NewDeviceSync() *DeviceSync {
	return &DeviceSync{delay: ConnectDelay}
}

// Connect simulates pairing with a wearable. It honors ctx cancellation
// during the artificial delay but otherwise cannot fail for a known device.
func (d *DeviceSync) Connect(ctx context.Context, device string) (*DeviceConnection, error) {
	known := false
	for _, k := range KnownDevices {
		if k == device {
			known = true
			break
		}
	}
	if !known {
		return nil, ErrUnknownDevice
	}

	select {
	case <-time.After(d.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return &DeviceConnection{
		Device:      device,
		Status:      "connected",
		ConnectedAt: time.Now().UTC(),
	}, nil
}
