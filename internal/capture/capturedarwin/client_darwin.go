//go:build darwin
// +build darwin

package capturedarwin

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/youpy/go-coremidi"

	"github.com/kushview/rt/sdk/contracts"
)

// Error definitions for MIDI connection and handling issues.
var (
	ErrNoMIDIDevices        = errors.New("no MIDI devices found")
	ErrInvalidMIDIDevice    = errors.New("invalid MIDI device")
	ErrMIDIConnectionError  = errors.New("error connecting to MIDI device")
	ErrCreateInputPort      = errors.New("error creating input port")
	ErrIncompleteMIDIPacket = errors.New("incomplete MIDI packet")
)

// internalPortConnection is an interface for handling disconnection from a MIDI port.
type internalPortConnection interface {
	Disconnect()
}

// Client captures MIDI input on Darwin (macOS) systems via CoreMIDI,
// delivering raw packets to a channel for the recorder to consume.
type Client struct {
	logger        contracts.Logger
	packets       atomic.Value // Atomic storage for the packet channel.
	client        coremidi.Client
	inputPort     coremidi.InputPort
	portConn      internalPortConnection
	commandFilter *contracts.CommandFilter
	mu            sync.Mutex
	capturing     bool
	wg            sync.WaitGroup
}

// NewCaptureClient initializes a CoreMIDI capture client.
func NewCaptureClient(options *contracts.CaptureOptions) (contracts.Capture, error) {
	client, err := coremidi.NewClient(options.ClientName)
	if err != nil {
		return nil, err
	}
	options.Logger.Info("CoreMIDI capture client created")

	return &Client{
		logger:        options.Logger,
		client:        client,
		commandFilter: options.CommandFilter,
	}, nil
}

// ListDevices retrieves and returns available MIDI input devices.
// If no devices are found, an error is logged and returned.
func (m *Client) ListDevices() ([]contracts.DeviceInfo, error) {
	sources, err := coremidi.AllSources()
	if err != nil {
		return nil, fmt.Errorf("error listing MIDI sources: %w", err)
	}
	if len(sources) == 0 {
		m.logger.Warn(ErrNoMIDIDevices.Error())
		return nil, ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, len(sources))
	for i, source := range sources {
		sourceEntity := source.Entity()
		devices[i] = contracts.DeviceInfo{
			Name:         source.Name(),
			EntityName:   sourceEntity.Name(),
			Manufacturer: sourceEntity.Manufacturer(),
		}
	}
	return devices, nil
}

// SelectDevice selects a MIDI input device by ID and connects to it.
// If a device is already connected, it disconnects first.
func (m *Client) SelectDevice(deviceID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sources, err := coremidi.AllSources()
	if err != nil {
		return fmt.Errorf("error retrieving MIDI sources: %w", err)
	}
	if deviceID < 0 || deviceID >= len(sources) {
		m.logger.Error(ErrInvalidMIDIDevice.Error())
		return ErrInvalidMIDIDevice
	}

	if m.portConn != nil {
		m.portConn.Disconnect()
		m.portConn = nil
	}

	source := sources[deviceID]
	m.logger.Info("MIDI device selected",
		m.logger.Field().Int("deviceID", deviceID),
		m.logger.Field().String("deviceName", source.Name()))

	m.inputPort, err = coremidi.NewInputPort(m.client, "Input Port", m.handlePacket)
	if err != nil {
		m.logger.Error(ErrCreateInputPort.Error())
		return fmt.Errorf("%w: %v", ErrCreateInputPort, err)
	}

	m.portConn, err = m.inputPort.Connect(source)
	if err != nil {
		m.logger.Error(ErrMIDIConnectionError.Error())
		return fmt.Errorf("%w: %v", ErrMIDIConnectionError, err)
	}

	m.logger.Info("MIDI device successfully connected")
	return nil
}

// handlePacket converts incoming CoreMIDI packets, applies the command
// filter, and delivers them to the packet channel without blocking.
func (m *Client) handlePacket(source coremidi.Source, packet coremidi.Packet) {
	m.wg.Add(1)
	defer m.wg.Done()

	packets, _ := m.packets.Load().(chan contracts.Packet)
	if packets == nil {
		m.logger.Warn("packet channel not initialized or of invalid type")
		return
	}

	if len(packet.Data) < 3 {
		m.logger.Warn(ErrIncompleteMIDIPacket.Error())
		return
	}

	event := contracts.Packet{
		Timestamp: uint64(time.Now().UTC().UnixNano()),
		Status:    packet.Data[0],
		Data1:     packet.Data[1],
		Data2:     packet.Data[2],
	}

	if m.commandFilter != nil && !isCommandAllowed(event.Status, m.commandFilter.Commands) {
		return
	}
	select {
	case packets <- event:
	default:
		m.logger.Warn("Packet channel full; dropping MIDI event")
	}
}

// isCommandAllowed verifies a status byte against the filter, ignoring the
// channel nibble.
func isCommandAllowed(status byte, allowed []byte) bool {
	for _, command := range allowed {
		if status&0xf0 == command&0xf0 {
			return true
		}
	}
	return false
}

// StartCapture begins delivering packets to the given channel.
// Ensures any ongoing capture is stopped before starting a new one.
func (m *Client) StartCapture(packets chan contracts.Packet) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if packets == nil {
		m.logger.Error("StartCapture called with nil packet channel")
		return
	}

	if m.capturing {
		m.logger.Warn("Capture already started; stopping existing capture")
		m.stopLocked()
	}

	m.logger.Info("Starting MIDI capture")
	m.packets.Store(packets)
	m.capturing = true
}

// Stop halts capturing, disconnects from the device, and waits for ongoing
// packet handling to complete. Idempotent; after a Stop the device must be
// selected again before capture can restart.
func (m *Client) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
	return nil
}

// stopLocked does the work of Stop. Callers must hold m.mu; Stop and the
// restart path in StartCapture both funnel through here so neither ever
// re-locks the mutex it already holds.
func (m *Client) stopLocked() {
	if !m.capturing {
		return
	}
	m.logger.Info("Stopping MIDI capture")
	m.capturing = false

	if m.portConn != nil {
		m.portConn.Disconnect()
		m.portConn = nil
	}

	// Store a fresh unread channel so late callbacks never write to
	// the caller's channel after Stop returns.
	m.packets.Store(make(chan contracts.Packet))

	m.logger.Info("MIDI capture stopped")
	m.wg.Wait()
}
