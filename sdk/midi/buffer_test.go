package midi

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect drains a fresh cursor into (frame, payload) pairs.
func collect(t *testing.T, b *EventBuffer) (frames []int32, payloads [][]byte) {
	t.Helper()
	for c := b.Iter(); c.Next(); {
		frames = append(frames, c.Frame())
		payload := make([]byte, len(c.Data()))
		copy(payload, c.Data())
		payloads = append(payloads, payload)
	}
	return frames, payloads
}

func TestEventBufferRoundTrip(t *testing.T) {
	b := NewEventBuffer(0)
	b.Insert(10, []byte{0x90, 0x40, 0x7f})

	frames, payloads := collect(t, b)
	require.Len(t, frames, 1)
	assert.Equal(t, int32(10), frames[0])
	assert.Equal(t, []byte{0x90, 0x40, 0x7f}, payloads[0])
	assert.Equal(t, 3+6, b.Used())
}

func TestEventBufferOrdering(t *testing.T) {
	b := NewEventBuffer(64)
	for _, frame := range []int32{9, 1, 5, 3, 7, -2, 0} {
		b.Insert(frame, []byte{0x90, byte(frame & 0x7f), 0x40})
	}

	frames, _ := collect(t, b)
	require.Len(t, frames, 7)
	for i := 1; i < len(frames); i++ {
		assert.LessOrEqual(t, frames[i-1], frames[i])
	}
	assert.Equal(t, int32(-2), frames[0])
}

func TestEventBufferOrderingRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := NewEventBuffer(0)
	for i := 0; i < 200; i++ {
		b.Insert(int32(rng.Intn(64)), []byte{0xb0, byte(i), byte(i)})
	}

	frames, _ := collect(t, b)
	require.Len(t, frames, 200)
	for i := 1; i < len(frames); i++ {
		assert.LessOrEqual(t, frames[i-1], frames[i])
	}
	assert.LessOrEqual(t, b.Used(), b.Capacity())
}

func TestEventBufferStableForEqualFrames(t *testing.T) {
	b := NewEventBuffer(0)
	b.Insert(5, []byte{0x90, 0x01, 0x40})
	b.Insert(5, []byte{0x90, 0x02, 0x40})
	b.Insert(5, []byte{0x90, 0x03, 0x40})

	_, payloads := collect(t, b)
	require.Len(t, payloads, 3)
	assert.Equal(t, byte(0x01), payloads[0][1])
	assert.Equal(t, byte(0x02), payloads[1][1])
	assert.Equal(t, byte(0x03), payloads[2][1])
}

func TestEventBufferInterleavedPayloadLengths(t *testing.T) {
	b := NewEventBuffer(0)
	sysex := []byte{0xf0, 0x7e, 0x00, 0x09, 0x01, 0xf7}
	b.Insert(20, []byte{0x80, 0x40, 0x00})
	b.Insert(10, sysex)
	b.Insert(15, []byte{0x90, 0x40, 0x64})

	frames, payloads := collect(t, b)
	require.Equal(t, []int32{10, 15, 20}, frames)
	assert.Equal(t, sysex, payloads[0])
	assert.Len(t, payloads[1], 3)
	assert.Len(t, payloads[2], 3)
}

func TestEventBufferClear(t *testing.T) {
	b := NewEventBuffer(128)
	b.Insert(1, []byte{0x90, 0x40, 0x64})
	b.Insert(2, []byte{0x80, 0x40, 0x00})
	capacity := b.Capacity()

	b.Clear()

	frames, _ := collect(t, b)
	assert.Empty(t, frames)
	assert.Zero(t, b.Used())
	assert.Equal(t, capacity, b.Capacity())
}

func TestEventBufferSwap(t *testing.T) {
	a := NewEventBuffer(64)
	a.Insert(1, []byte{0x90, 0x40, 0x64})

	b := NewEventBuffer(256)
	b.Insert(5, []byte{0x80, 0x40, 0x00})
	b.Insert(9, []byte{0xb0, 0x07, 0x7f})

	capA, capB := a.Capacity(), b.Capacity()
	a.Swap(b)

	framesA, _ := collect(t, a)
	framesB, _ := collect(t, b)
	assert.Equal(t, []int32{5, 9}, framesA)
	assert.Equal(t, []int32{1}, framesB)
	assert.Equal(t, capB, a.Capacity())
	assert.Equal(t, capA, b.Capacity())
}

func TestEventBufferCursorBounds(t *testing.T) {
	b := NewEventBuffer(0)
	assert.Equal(t, 0, b.Begin())
	assert.Equal(t, 0, b.End())
	assert.Equal(t, 0, b.Next(0))

	b.Insert(3, []byte{0x90, 0x40, 0x64})
	assert.Equal(t, 9, b.End())
	assert.Equal(t, 9, b.Next(0))
	// Advancing past the end clamps rather than running off the arena.
	assert.Equal(t, 9, b.Next(9))
	assert.Equal(t, 9, b.Next(100))
}

func TestEventBufferIterRestarts(t *testing.T) {
	b := NewEventBuffer(0)
	b.Insert(1, []byte{0x90, 0x40, 0x64})
	b.Insert(2, []byte{0x80, 0x40, 0x00})

	first, _ := collect(t, b)
	second, _ := collect(t, b)
	assert.Equal(t, first, second)
}

func TestEventBufferInsertPacked(t *testing.T) {
	b := NewEventBuffer(0)
	b.InsertPacked(10, NoteOn(1, 0x3c, 0x64))

	frames, payloads := collect(t, b)
	require.Len(t, frames, 1)
	assert.Equal(t, int32(10), frames[0])
	assert.Equal(t, []byte{0x90, 0x3c, 0x64}, payloads[0])
}

func TestEventBufferIgnoresEmptyPayload(t *testing.T) {
	b := NewEventBuffer(0)
	b.Insert(1, nil)
	b.Insert(2, []byte{})

	assert.Zero(t, b.Used())
}

func TestEventBufferIgnoresOversizedPayload(t *testing.T) {
	b := NewEventBuffer(0)
	b.Insert(3, []byte{0x90, 0x40, 0x64})
	used := b.Used()

	// One byte past what the 16-bit length field can encode is dropped
	// whole rather than truncated into a corrupt record.
	b.Insert(1, make([]byte, math.MaxUint16+1))
	assert.Equal(t, used, b.Used())

	// The largest encodable payload still round-trips.
	b.Insert(5, make([]byte, math.MaxUint16))
	frames, payloads := collect(t, b)
	require.Equal(t, []int32{3, 5}, frames)
	assert.Len(t, payloads[1], math.MaxUint16)
}

func TestEventBufferInitialCapacity(t *testing.T) {
	b := NewEventBuffer(512)
	assert.Equal(t, 512, b.Capacity())
	assert.Zero(t, b.Used())

	// Inserts within the reservation never reallocate.
	for i := 0; i < 50; i++ {
		b.Insert(int32(i), []byte{0x90, byte(i), 0x40})
	}
	assert.Equal(t, 512, b.Capacity())
	assert.Equal(t, 50*9, b.Used())

	b = NewEventBuffer(-5)
	assert.Zero(t, b.Capacity())
}

func TestEventBufferInsertMessage(t *testing.T) {
	b := NewEventBuffer(0)
	m := NewMessage()
	m.Update([]byte{0x91, 0x3c, 0x64})
	b.InsertMessage(4, m.AsMessage())

	c := b.Iter()
	require.True(t, c.Next())
	assert.Equal(t, int32(4), c.Frame())
	assert.Equal(t, []byte{0x91, 0x3c, 0x64}, []byte(c.Message()))
	assert.False(t, c.Next())
}
