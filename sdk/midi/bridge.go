package midi

import (
	gomidi "gitlab.com/gomidi/midi/v2"
)

// Interop with gitlab.com/gomidi/midi/v2, so hosts already speaking gomidi
// messages can feed and drain event buffers without re-encoding.

// InsertMessage inserts a gomidi message at the given frame.
func (b *EventBuffer) InsertMessage(frame int32, msg gomidi.Message) {
	b.Insert(frame, []byte(msg))
}

// Message returns the current event's payload as a gomidi message. The
// bytes are copied, so the result stays valid after the buffer is mutated.
func (c *Cursor) Message() gomidi.Message {
	out := make([]byte, len(c.data))
	copy(out, c.data)
	return gomidi.Message(out)
}

// AsMessage returns the message bytes as a gomidi message, copied.
func (m *Message) AsMessage() gomidi.Message {
	out := make([]byte, m.size)
	copy(out, m.data())
	return gomidi.Message(out)
}
