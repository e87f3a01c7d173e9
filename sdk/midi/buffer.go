package midi

import (
	"encoding/binary"
	"math"
)

// Encoded event record layout inside an EventBuffer:
//
//	offset 0: frame   (4 bytes, signed 32-bit, little-endian)
//	offset 4: length  (2 bytes, unsigned 16-bit, little-endian)
//	offset 6: payload (length bytes)
//
// Records are packed with no padding and kept in ascending frame order.
const (
	frameSize  = 4
	lengthSize = 2
	headerSize = frameSize + lengthSize
)

// EventBuffer is a growable byte arena holding a sequence of timestamped,
// variable-length MIDI events in ascending frame order.
//
// An EventBuffer carries no locks. The intended pattern is single-writer,
// single-reader double buffering: Insert and Clear belong to the producer,
// Iter, Begin, End and Next to the consumer, and Swap is the one cross-side
// operation, performed only when both sides agree neither buffer is in use.
type EventBuffer struct {
	data []byte
}

// NewEventBuffer creates an event buffer with the given initial byte
// capacity. Zero is valid and defers allocation to the first insert.
// Real-time producers should reserve enough capacity up front so that
// Insert never reallocates on the audio thread.
func NewEventBuffer(capacity int) *EventBuffer {
	if capacity < 0 {
		capacity = 0
	}
	return &EventBuffer{data: make([]byte, 0, capacity)}
}

// Insert adds an event at the position that keeps the buffer sorted by
// ascending frame. Events with equal frames stay in insertion order. The
// payload is copied; empty payloads and payloads longer than 65535 bytes
// are ignored.
//
// When free capacity runs out the arena grows with the usual amortized
// append policy, so a long run of inserts reallocates O(log n) times
// rather than every call. Growth still must not happen on a real-time
// thread; size the buffer with NewEventBuffer instead.
func (b *EventBuffer) Insert(frame int32, payload []byte) {
	if len(payload) == 0 || len(payload) > math.MaxUint16 {
		return
	}

	pos := 0
	for pos < len(b.data) {
		if b.frameAt(pos) > frame {
			break
		}
		pos += headerSize + int(b.lengthAt(pos))
	}

	needed := headerSize + len(payload)
	used := len(b.data)
	b.data = append(b.data, make([]byte, needed)...)
	copy(b.data[pos+needed:], b.data[pos:used])

	binary.LittleEndian.PutUint32(b.data[pos:], uint32(frame))
	binary.LittleEndian.PutUint16(b.data[pos+frameSize:], uint16(len(payload)))
	copy(b.data[pos+headerSize:], payload)
}

// InsertPacked inserts a 3-byte message packed into an integer word as
// produced by Controller, NoteOn and NoteOff.
func (b *EventBuffer) InsertPacked(frame int32, word uint32) {
	var bytes [4]byte
	binary.LittleEndian.PutUint32(bytes[:], word)
	b.Insert(frame, bytes[:3])
}

// Clear removes all events. Capacity is retained for reuse across cycles.
func (b *EventBuffer) Clear() {
	b.data = b.data[:0]
}

// Used returns the number of bytes occupied by encoded events.
func (b *EventBuffer) Used() int {
	return len(b.data)
}

// Capacity returns the allocated byte capacity, not the event count.
func (b *EventBuffer) Capacity() int {
	return cap(b.data)
}

// Swap exchanges the storage of two buffers, contents and capacity both.
// This is the zero-copy handoff used for double buffering.
func (b *EventBuffer) Swap(other *EventBuffer) {
	b.data, other.data = other.data, b.data
}

// Begin returns the byte offset of the first event record.
func (b *EventBuffer) Begin() int {
	return 0
}

// End returns the byte offset one past the last event record.
func (b *EventBuffer) End() int {
	return len(b.data)
}

// Next returns the offset of the record after the one at pos, clamped to
// End so a cursor can never step past the valid region.
func (b *EventBuffer) Next(pos int) int {
	if pos < 0 || pos+headerSize > len(b.data) {
		return len(b.data)
	}
	next := pos + headerSize + int(b.lengthAt(pos))
	if next > len(b.data) {
		return len(b.data)
	}
	return next
}

func (b *EventBuffer) frameAt(pos int) int32 {
	return int32(binary.LittleEndian.Uint32(b.data[pos:]))
}

func (b *EventBuffer) lengthAt(pos int) uint16 {
	return binary.LittleEndian.Uint16(b.data[pos+frameSize:])
}

// Iter returns a cursor positioned before the first event. A cursor walks
// the buffer lazily in stored order and cannot be restarted mid-stream;
// call Iter again for a fresh traversal. The buffer must not be mutated
// while a cursor is live.
func (b *EventBuffer) Iter() Cursor {
	return Cursor{buf: b}
}

// Cursor is a forward-only cursor over an EventBuffer, in the style of
// bufio.Scanner: call Next until it returns false, reading Frame and Data
// after each successful advance.
type Cursor struct {
	buf   *EventBuffer
	pos   int
	frame int32
	data  []byte
}

// Next advances to the next event. It returns false when the cursor is
// exhausted or the remaining bytes do not hold a complete record.
func (c *Cursor) Next() bool {
	b := c.buf
	if c.pos+headerSize > len(b.data) {
		c.data = nil
		return false
	}
	length := int(b.lengthAt(c.pos))
	if c.pos+headerSize+length > len(b.data) {
		c.data = nil
		return false
	}
	c.frame = b.frameAt(c.pos)
	c.data = b.data[c.pos+headerSize : c.pos+headerSize+length]
	c.pos += headerSize + length
	return true
}

// Frame returns the frame of the current event.
func (c *Cursor) Frame() int32 {
	return c.frame
}

// Data returns the payload of the current event as a view into the arena,
// valid until the buffer is mutated.
func (c *Cursor) Data() []byte {
	return c.data
}
