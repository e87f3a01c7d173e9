package rt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kushview/rt/sdk/midi"
)

func frames(b *midi.EventBuffer) []int32 {
	var out []int32
	for c := b.Iter(); c.Next(); {
		out = append(out, c.Frame())
	}
	return out
}

func TestDoubleBufferHandoff(t *testing.T) {
	d := NewDoubleBuffer(256)
	d.Insert(3, []byte{0x90, 0x40, 0x64})
	d.Insert(1, []byte{0x90, 0x41, 0x64})

	block := d.Swap()
	require.Equal(t, []int32{1, 3}, frames(block))

	// The producer side is now empty; a swap with nothing written hands
	// back an empty block and clears the one just consumed.
	block = d.Swap()
	assert.Empty(t, frames(block))
	assert.Zero(t, block.Used())
}

func TestDoubleBufferAlternatesStorage(t *testing.T) {
	d := NewDoubleBuffer(256)

	d.Insert(1, []byte{0x90, 0x40, 0x64})
	first := d.Swap()
	require.Equal(t, []int32{1}, frames(first))

	d.Insert(2, []byte{0x80, 0x40, 0x00})
	second := d.Swap()
	assert.Equal(t, []int32{2}, frames(second))

	// Events never leak from one cycle into the next.
	d.Insert(3, []byte{0xb0, 0x07, 0x7f})
	third := d.Swap()
	assert.Equal(t, []int32{3}, frames(third))
}

func TestDoubleBufferKeepsCapacity(t *testing.T) {
	d := NewDoubleBuffer(512)
	for i := 0; i < 20; i++ {
		d.Insert(int32(i), []byte{0x90, byte(i), 0x40})
	}

	block := d.Swap()
	assert.Equal(t, 512, block.Capacity())
	assert.Equal(t, 512, d.Swap().Capacity())
}

func TestDoubleBufferPacked(t *testing.T) {
	d := NewDoubleBuffer(64)
	d.InsertPacked(7, midi.NoteOn(1, 0x3c, 0x64))

	c := d.Swap().Iter()
	require.True(t, c.Next())
	assert.Equal(t, int32(7), c.Frame())
	assert.Equal(t, []byte{0x90, 0x3c, 0x64}, c.Data())
}
