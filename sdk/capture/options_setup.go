package capture

import (
	"github.com/kushview/rt/internal/logger"
	"github.com/kushview/rt/sdk/contracts"
)

// defaultBufferCapacity leaves room for a few hundred short events before
// any reallocation.
const defaultBufferCapacity = 4096

// applyDefaultOptions sets default values for CaptureOptions if not
// explicitly provided.
func applyDefaultOptions(opts ...contracts.Option) (contracts.CaptureOptions, error) {
	options := &contracts.CaptureOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.LogLevel == 0 {
		options.LogLevel = contracts.InfoLevel
	}
	if options.ClientName == "" {
		options.ClientName = "Kushview RT"
	}
	if options.BufferCapacity <= 0 {
		options.BufferCapacity = defaultBufferCapacity
	}

	options.Logger.SetLevel(options.LogLevel)
	return *options, nil
}
