package contracts

// CommandFilter allows callers to specify which MIDI status bytes a capture
// driver should deliver. An empty filter delivers everything.
type CommandFilter struct {
	Commands []byte // Status bytes to keep, channel nibble ignored.
}

// CaptureOptions defines the configuration options for a capture driver.
type CaptureOptions struct {
	Logger         Logger         // Logger for events and errors.
	LogLevel       LogLevel       // Level of logging to use.
	ClientName     string         // Name registered with the platform MIDI service.
	CommandFilter  *CommandFilter // Optional filter for captured packets.
	BufferCapacity int            // Initial byte capacity for event buffers fed by the driver.
}

// Option is a function that modifies CaptureOptions.
type Option func(*CaptureOptions)

// WithLogger sets the logger for the capture driver.
func WithLogger(l Logger) Option {
	return func(opts *CaptureOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the capture driver.
func WithLogLevel(level LogLevel) Option {
	return func(opts *CaptureOptions) {
		opts.LogLevel = level
	}
}

// WithClientName sets the name the driver registers with the platform MIDI service.
func WithClientName(name string) Option {
	return func(opts *CaptureOptions) {
		opts.ClientName = name
	}
}

// WithCommandFilter sets the packet filter for the capture driver.
func WithCommandFilter(filter CommandFilter) Option {
	return func(opts *CaptureOptions) {
		opts.CommandFilter = &filter
	}
}

// WithBufferCapacity sets the initial byte capacity of event buffers created
// on behalf of the driver. Pre-reserving avoids reallocation while capturing.
func WithBufferCapacity(capacity int) Option {
	return func(opts *CaptureOptions) {
		opts.BufferCapacity = capacity
	}
}
