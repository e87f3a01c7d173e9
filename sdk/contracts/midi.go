package contracts

// Packet is a single short MIDI event as delivered by a platform capture
// driver: the raw bytes of a 3-byte channel-voice message plus the time it
// arrived.
type Packet struct {
	Timestamp uint64 // Nanoseconds since the Unix epoch, UTC.
	Status    byte   // Status byte (command nibble plus channel nibble).
	Data1     byte   // First data byte (note or controller number).
	Data2     byte   // Second data byte (velocity or controller value).
}

// Capture defines an interface for platform MIDI capture drivers.
type Capture interface {
	Stop() error                        // Stops capturing and releases driver resources.
	ListDevices() ([]DeviceInfo, error) // Lists all available MIDI input devices.
	SelectDevice(deviceID int) error    // Selects a MIDI input device by its ID.
	StartCapture(packets chan Packet)   // Starts capturing and sends packets to the channel.
}
