package midi

import "errors"

// inlineCapacity is the number of message bytes stored without a heap
// allocation. Channel voice messages are at most 3 bytes, so the heap path
// only triggers for sysex and other long payloads.
const inlineCapacity = 8

// ErrChannelRange is returned by SetChannel for channels outside 1..16.
var ErrChannelRange = errors.New("midi: channel out of range 1..16")

// Message holds a single mutable MIDI message and its timestamp. Short
// messages live in an inline array; longer ones are promoted to a heap
// slice. The zero value is not a valid message, use NewMessage.
type Message struct {
	inline    [inlineCapacity]byte
	heap      []byte
	allocated bool
	size      int
	time      float64
}

// NewMessage returns a Message initialized to the 2-byte empty sysex
// sentinel (0xF0 0xF7) with a zero timestamp.
func NewMessage() *Message {
	m := &Message{}
	m.inline[0] = 0xf0
	m.inline[1] = 0xf7
	m.size = 2
	return m
}

// data returns the active storage, sized to the valid bytes.
func (m *Message) data() []byte {
	if m.allocated {
		return m.heap[:m.size]
	}
	return m.inline[:m.size]
}

// Bytes returns the raw bytes of the message. The slice aliases the
// message's storage and is valid until the next Update.
func (m *Message) Bytes() []byte {
	return m.data()
}

// Len returns the number of valid bytes in the message.
func (m *Message) Len() int {
	return m.size
}

// Time returns the message timestamp. The unit is defined by the caller.
func (m *Message) Time() float64 {
	return m.time
}

// SetTime sets the message timestamp.
func (m *Message) SetTime(t float64) {
	m.time = t
}

// Update replaces the message contents with a copy of bytes, promoting the
// storage to the heap when the payload no longer fits inline. An empty
// input is a no-op.
func (m *Message) Update(bytes []byte) {
	if len(bytes) == 0 {
		return
	}

	switch {
	case len(bytes) <= inlineCapacity && !m.allocated:
		copy(m.inline[:], bytes)
	case m.allocated && len(bytes) <= cap(m.heap):
		m.heap = m.heap[:cap(m.heap)]
		copy(m.heap, bytes)
	default:
		m.heap = make([]byte, len(bytes))
		copy(m.heap, bytes)
		m.allocated = true
	}

	m.size = len(bytes)
}

// Channel returns the 1-based channel of a channel-voice message, or 0 for
// system messages.
func (m *Message) Channel() int {
	data := m.data()
	if data[0]&0xf0 == 0xf0 {
		return 0
	}
	return int(data[0]&0x0f) + 1
}

// SetChannel changes the channel of a channel-voice message, preserving the
// command nibble. Channels outside 1..16 violate the contract and return
// ErrChannelRange with the message untouched. System messages have no
// channel and ignore the request.
func (m *Message) SetChannel(channel int) error {
	if channel < 1 || channel > 16 {
		return ErrChannelRange
	}
	data := m.data()
	if data[0]&0xf0 == 0xf0 {
		return nil
	}
	data[0] = data[0]&0xf0 | byte(channel-1)
	return nil
}

// IsNoteOn reports whether the message is a note-on with nonzero velocity.
// A note-on with velocity 0 means note-off on the wire and reports false.
func (m *Message) IsNoteOn() bool {
	data := m.data()
	return data[0]&0xf0 == 0x90 && len(data) > 2 && data[2] != 0
}

// IsNoteOff reports whether the status nibble is note-off (0x8). It does
// not treat velocity-0 note-ons as note-offs; callers needing exact MIDI
// semantics check both predicates.
func (m *Message) IsNoteOff() bool {
	return m.data()[0]&0xf0 == 0x80
}
