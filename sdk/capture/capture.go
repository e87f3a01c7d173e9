package capture

import (
	"github.com/kushview/rt/sdk/contracts"
)

// NewCaptureClient creates a platform MIDI capture client with the
// specified options. It applies default options and initializes the
// driver for the current operating system.
//
// Returns:
//   - contracts.Capture: an instance of the capture client.
//   - error: an error, if any occurred during creation.
func NewCaptureClient(opts ...contracts.Option) (contracts.Capture, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	client, err := NewClient(&options)
	if err != nil {
		return nil, err
	}

	return client, nil
}
