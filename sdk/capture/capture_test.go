package capture

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kushview/rt/sdk/contracts"
)

func TestApplyDefaultOptions(t *testing.T) {
	options, err := applyDefaultOptions()
	require.NoError(t, err)
	assert.NotNil(t, options.Logger)
	assert.Equal(t, contracts.InfoLevel, options.LogLevel)
	assert.Equal(t, "Kushview RT", options.ClientName)
	assert.Equal(t, defaultBufferCapacity, options.BufferCapacity)
}

func TestApplyOptionsOverride(t *testing.T) {
	options, err := applyDefaultOptions(
		contracts.WithClientName("Test Host"),
		contracts.WithBufferCapacity(1024),
		contracts.WithCommandFilter(contracts.CommandFilter{Commands: []byte{0x90}}),
	)
	require.NoError(t, err)
	assert.Equal(t, "Test Host", options.ClientName)
	assert.Equal(t, 1024, options.BufferCapacity)
	require.NotNil(t, options.CommandFilter)
	assert.Equal(t, []byte{0x90}, options.CommandFilter.Commands)
}

func TestNewClientUnsupportedOS(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skipf("platform %s has a capture driver", runtime.GOOS)
	}

	options, err := applyDefaultOptions()
	require.NoError(t, err)

	_, err = NewClient(&options)
	assert.ErrorIs(t, err, ErrUnsupportedOS)
}

func TestNewSessionUnsupportedOS(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skipf("platform %s has a capture driver", runtime.GOOS)
	}

	_, err := NewSession(48000)
	assert.ErrorIs(t, err, ErrUnsupportedOS)
}
