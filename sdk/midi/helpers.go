package midi

// Status bytes for the channel-voice messages the helpers build.
const (
	StatusNoteOff    byte = 0x80
	StatusNoteOn     byte = 0x90
	StatusController byte = 0xb0
)

// pack3 packs a 3-byte channel-voice message into a single integer word in
// byte order [status, data1, data2, 0], little-endian. No range validation
// is performed; out-of-range channels or data silently produce malformed
// bytes.
func pack3(status byte, channel, data1, data2 int) uint32 {
	return uint32(status|byte(channel-1)) |
		uint32(byte(data1))<<8 |
		uint32(byte(data2))<<16
}

// Controller packs a control-change message for channel 1..16.
func Controller(channel, controller, value int) uint32 {
	return pack3(StatusController, channel, controller, value)
}

// NoteOn packs a note-on message for channel 1..16.
func NoteOn(channel, note, velocity int) uint32 {
	return pack3(StatusNoteOn, channel, note, velocity)
}

// NoteOff packs a note-off message for channel 1..16.
func NoteOff(channel, note, velocity int) uint32 {
	return pack3(StatusNoteOff, channel, note, velocity)
}
