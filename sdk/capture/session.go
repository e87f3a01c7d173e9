package capture

import (
	"github.com/kushview/rt/sdk/contracts"
	"github.com/kushview/rt/sdk/midi"
	"github.com/kushview/rt/sdk/rt"
)

// packetQueueDepth bounds how many packets can sit between the driver
// callback and the recorder before the driver starts dropping.
const packetQueueDepth = 128

// Session bundles a platform capture client with a recorder feeding a
// double-buffered event stream, the usual arrangement for getting hardware
// input into a processing loop.
type Session struct {
	client   contracts.Capture
	buffers  *rt.DoubleBuffer
	recorder *rt.Recorder
	packets  chan contracts.Packet
}

// NewSession creates a capture session at the given sample rate. Buffer
// sizing, logging and packet filtering come from the options.
func NewSession(sampleRate float64, opts ...contracts.Option) (*Session, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	client, err := NewClient(&options)
	if err != nil {
		return nil, err
	}

	buffers := rt.NewDoubleBuffer(options.BufferCapacity)
	return &Session{
		client:   client,
		buffers:  buffers,
		recorder: rt.NewRecorder(buffers, sampleRate, options.Logger),
		packets:  make(chan contracts.Packet, packetQueueDepth),
	}, nil
}

// Client returns the underlying platform capture client, for device
// listing and selection.
func (s *Session) Client() contracts.Capture {
	return s.client
}

// Start begins recording captured packets into the event buffers.
func (s *Session) Start() {
	s.recorder.Start(s.packets)
	s.client.StartCapture(s.packets)
}

// Swap hands the events recorded since the previous Swap to the caller.
// See rt.DoubleBuffer.
func (s *Session) Swap() *midi.EventBuffer {
	return s.buffers.Swap()
}

// Stop shuts down the driver and the recorder.
func (s *Session) Stop() error {
	err := s.client.Stop()
	s.recorder.Stop()
	return err
}
