//go:build !darwin
// +build !darwin

package capturedarwin

import (
	"fmt"

	"github.com/kushview/rt/sdk/contracts"
)

type DummyCaptureClient struct {
	logger contracts.Logger
}

func NewCaptureClient(options *contracts.CaptureOptions) (contracts.Capture, error) {
	options.Logger.Info("Using dummy capture client for non-macOS system")
	return &DummyCaptureClient{
		logger: options.Logger,
	}, nil
}

func (m *DummyCaptureClient) ListDevices() ([]contracts.DeviceInfo, error) {
	m.logger.Warn("ListDevices called on dummy capture client")
	return nil, fmt.Errorf("MIDI capture is not available on this platform")
}

func (m *DummyCaptureClient) SelectDevice(deviceID int) error {
	m.logger.Warn("SelectDevice called on dummy capture client")
	return fmt.Errorf("MIDI capture is not available on this platform")
}

func (m *DummyCaptureClient) StartCapture(packets chan contracts.Packet) {
	m.logger.Warn("StartCapture called on dummy capture client")
}

func (m *DummyCaptureClient) Stop() error {
	m.logger.Warn("Stop called on dummy capture client")
	return nil
}
