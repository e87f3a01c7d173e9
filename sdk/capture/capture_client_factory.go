package capture

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/kushview/rt/internal/capture/capturedarwin"
	"github.com/kushview/rt/internal/capture/capturewindows"
	"github.com/kushview/rt/sdk/contracts"
)

// ErrUnsupportedOS is returned when the operating system has no capture driver.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// clientInitializers maps OS names to corresponding capture client initializers.
var clientInitializers = map[string]func(*contracts.CaptureOptions) (contracts.Capture, error){
	"darwin":  capturedarwin.NewCaptureClient,  // macOS (Darwin) CoreMIDI driver.
	"windows": capturewindows.NewCaptureClient, // Windows winmm driver.
}

// NewClient initializes a capture client based on the current operating
// system, returning ErrUnsupportedOS when no driver exists for it.
func NewClient(opts *contracts.CaptureOptions) (contracts.Capture, error) {
	if initializer, exists := clientInitializers[runtime.GOOS]; exists {
		return initializer(opts)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, runtime.GOOS)
}
