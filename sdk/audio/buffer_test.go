package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer(2, 64)
	assert.Equal(t, 2, b.Channels())
	assert.Equal(t, 64, b.Length())
	assert.True(t, b.Cleared())

	empty := NewBuffer(0, 0)
	assert.Zero(t, empty.Channels())
	assert.Zero(t, empty.Length())
}

func TestBufferSetAndGet(t *testing.T) {
	b := NewBuffer(2, 8)
	b.SetSample(1, 3, 0.5)
	assert.False(t, b.Cleared())
	assert.Equal(t, Sample(0.5), b.Sample(1, 3))

	// Out of range access is safe on both paths.
	assert.Zero(t, b.Sample(5, 0))
	assert.Zero(t, b.Sample(0, 100))
	b.SetSample(5, 0, 1.0)
	b.SetSample(0, -1, 1.0)
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer(2, 8)
	b.SetSample(0, 0, 1.0)
	b.SetSample(1, 7, -1.0)

	b.Clear()
	assert.True(t, b.Cleared())
	assert.Zero(t, b.Sample(0, 0))
	assert.Zero(t, b.Sample(1, 7))
}

func TestBufferClearChannelRange(t *testing.T) {
	b := NewBuffer(1, 8)
	for i := 0; i < 8; i++ {
		b.SetSample(0, i, 1.0)
	}

	b.ClearChannelRange(0, 2, 3)
	assert.Equal(t, Sample(1.0), b.Sample(0, 1))
	assert.Zero(t, b.Sample(0, 2))
	assert.Zero(t, b.Sample(0, 4))
	assert.Equal(t, Sample(1.0), b.Sample(0, 5))
}

func TestBufferApplyGain(t *testing.T) {
	b := NewBuffer(1, 4)
	for i := 0; i < 4; i++ {
		b.SetSample(0, i, 2.0)
	}

	b.ApplyGain(0, 1, 2, 0.5)
	assert.Equal(t, Sample(2.0), b.Sample(0, 0))
	assert.Equal(t, Sample(1.0), b.Sample(0, 1))
	assert.Equal(t, Sample(1.0), b.Sample(0, 2))
	assert.Equal(t, Sample(2.0), b.Sample(0, 3))
}

func TestBufferReferTo(t *testing.T) {
	external := [][]Sample{
		make([]Sample, 16),
		make([]Sample, 16),
	}

	b := NewBuffer(0, 0)
	b.ReferTo(external, 16)
	require.Equal(t, 2, b.Channels())
	require.Equal(t, 16, b.Length())

	// Writes through the buffer land in the caller's storage.
	b.SetSample(0, 4, 0.25)
	assert.Equal(t, Sample(0.25), external[0][4])
}

func TestBufferDuplicate(t *testing.T) {
	source := [][]Sample{{1, 2, 3, 4}}

	b := NewBuffer(0, 0)
	b.Duplicate(source, 4)
	require.Equal(t, 1, b.Channels())
	assert.Equal(t, Sample(3), b.Sample(0, 2))

	// Deep copy: later writes do not touch the source.
	b.SetSample(0, 2, 9)
	assert.Equal(t, Sample(3), source[0][2])
}

func TestBufferDuplicateAfterReferTo(t *testing.T) {
	external := [][]Sample{{9, 9, 9, 9}}
	b := NewBuffer(0, 0)
	b.ReferTo(external, 4)

	// Duplicating with matching dimensions must still land in owned
	// storage, leaving the referenced slices untouched.
	source := [][]Sample{{1, 2, 3, 4}}
	b.Duplicate(source, 4)
	assert.Equal(t, Sample(2), b.Sample(0, 1))
	assert.Equal(t, []Sample{9, 9, 9, 9}, external[0])

	b.SetSample(0, 1, 7)
	assert.Equal(t, Sample(9), external[0][1])
	assert.Equal(t, Sample(2), source[0][1])
}

func TestBufferResize(t *testing.T) {
	b := NewBuffer(1, 4)
	b.Resize(2, 32)
	assert.Equal(t, 2, b.Channels())
	assert.Equal(t, 32, b.Length())

	b.Resize(0, 0)
	assert.Zero(t, b.Channels())
	assert.Zero(t, b.Length())
}

func TestVector(t *testing.T) {
	v := NewVector(4)
	assert.Equal(t, 4, v.Len())

	v.Set(2, 0.75)
	assert.Equal(t, Sample(0.75), v.Get(2))

	// Out of range is ignored on write, zero on read.
	v.Set(10, 1.0)
	assert.Zero(t, v.Get(10))
	assert.Zero(t, v.Get(-1))

	v.Clear()
	assert.Zero(t, v.Get(2))

	assert.Zero(t, NewVector(-1).Len())
}

func TestGainConversions(t *testing.T) {
	assert.InDelta(t, 0.0, GainToDecibels(UnityGain), 1e-9)
	assert.Equal(t, MinusInfinityDB, GainToDecibels(0))
	assert.Equal(t, MinusInfinityDB, GainToDecibels(-1))

	assert.InDelta(t, 1.0, DecibelsToGain(0), 1e-9)
	assert.Zero(t, DecibelsToGain(MinusInfinityDB))

	// Round trip within the audible range.
	for _, db := range []float64{-60, -12, -6, 0, 6} {
		assert.InDelta(t, db, GainToDecibels(DecibelsToGain(db)), 1e-9)
	}

	assert.Equal(t, MinusInfinityDB/2, GainToDecibelsFloor(0, MinusInfinityDB/2))
}

func TestRound(t *testing.T) {
	assert.Equal(t, float64(float32(0.1)), Round(0.1))
	assert.Zero(t, Round(0))
}
