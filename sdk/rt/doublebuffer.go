package rt

import (
	"sync"

	"github.com/kushview/rt/sdk/midi"
)

// DoubleBuffer coordinates the classic two-buffer handoff between a control
// side that accumulates MIDI events and a processing side that consumes
// them. The producer inserts into the front buffer; Swap hands the filled
// front to the consumer and gives the producer the (cleared) buffer the
// consumer just finished with. The mutex only guards the instant of
// exchange and producer writes, so neither side ever reads and writes the
// same storage.
type DoubleBuffer struct {
	mu    sync.Mutex
	front *midi.EventBuffer
	back  *midi.EventBuffer
}

// NewDoubleBuffer creates a buffer pair, each side reserving the given
// byte capacity up front.
func NewDoubleBuffer(capacity int) *DoubleBuffer {
	return &DoubleBuffer{
		front: midi.NewEventBuffer(capacity),
		back:  midi.NewEventBuffer(capacity),
	}
}

// Insert adds an event to the producer-side buffer.
func (d *DoubleBuffer) Insert(frame int32, payload []byte) {
	d.mu.Lock()
	d.front.Insert(frame, payload)
	d.mu.Unlock()
}

// InsertPacked adds a packed 3-byte message to the producer-side buffer.
func (d *DoubleBuffer) InsertPacked(frame int32, word uint32) {
	d.mu.Lock()
	d.front.InsertPacked(frame, word)
	d.mu.Unlock()
}

// Swap is called by the consumer. It clears the buffer the consumer
// finished with, exchanges it for the producer's filled buffer, and
// returns the filled one for iteration. The returned buffer belongs to the
// consumer until the next Swap.
func (d *DoubleBuffer) Swap() *midi.EventBuffer {
	d.mu.Lock()
	d.back.Clear()
	d.front.Swap(d.back)
	d.mu.Unlock()
	return d.back
}
