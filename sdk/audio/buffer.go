package audio

// Sample is the sample type used throughout the audio package.
type Sample = float32

// Buffer is a multi-channel block of audio samples. Owned buffers use a
// single backing allocation with per-channel views into it; a buffer can
// also refer to externally owned channel data (see ReferTo), in which case
// it allocates nothing and the caller keeps ownership.
type Buffer struct {
	channels [][]Sample
	data     []Sample // backing store, nil when referring to external data
	nframes  int
	cleared  bool
}

// NewBuffer creates a buffer with the given channel and frame counts.
// Non-positive sizes yield an empty buffer.
func NewBuffer(nchannels, nframes int) *Buffer {
	b := &Buffer{}
	if nchannels > 0 && nframes > 0 {
		b.alloc(nchannels, nframes)
	}
	return b
}

func (b *Buffer) alloc(nchannels, nframes int) {
	b.data = make([]Sample, nchannels*nframes)
	b.channels = make([][]Sample, nchannels)
	for c := range b.channels {
		b.channels[c] = b.data[c*nframes : (c+1)*nframes]
	}
	b.nframes = nframes
	b.cleared = true
}

// Channels returns the number of channels held in the buffer.
func (b *Buffer) Channels() int {
	return len(b.channels)
}

// Length returns the number of frames per channel.
func (b *Buffer) Length() int {
	return b.nframes
}

// Channel returns the samples of one channel. The slice aliases the
// buffer's storage.
func (b *Buffer) Channel(channel int) []Sample {
	return b.channels[channel]
}

// Cleared reports whether the buffer is known to contain only silence.
func (b *Buffer) Cleared() bool {
	return b.cleared
}

// Clear zeroes every channel. Skipped when the buffer is already silent.
func (b *Buffer) Clear() {
	if b.cleared {
		return
	}
	for _, ch := range b.channels {
		for i := range ch {
			ch[i] = 0
		}
	}
	b.cleared = true
}

// ClearChannel zeroes a single channel.
func (b *Buffer) ClearChannel(channel int) {
	b.ClearChannelRange(channel, 0, b.nframes)
	if channel == 0 && len(b.channels) == 1 {
		b.cleared = true
	}
}

// ClearRange zeroes count frames starting at start on every channel.
func (b *Buffer) ClearRange(start, count int) {
	if b.cleared {
		return
	}
	for c := range b.channels {
		b.ClearChannelRange(c, start, count)
	}
	if start == 0 && count == b.nframes {
		b.cleared = true
	}
}

// ClearChannelRange zeroes count frames starting at start on one channel.
func (b *Buffer) ClearChannelRange(channel, start, count int) {
	if channel < 0 || channel >= len(b.channels) {
		return
	}
	ch := b.channels[channel]
	for i := start; i < start+count && i < len(ch); i++ {
		if i < 0 {
			continue
		}
		ch[i] = 0
	}
}

// Sample returns the sample at (channel, frame), or 0 when out of range.
func (b *Buffer) Sample(channel, frame int) Sample {
	if channel < 0 || channel >= len(b.channels) || frame < 0 || frame >= b.nframes {
		return 0
	}
	return b.channels[channel][frame]
}

// SetSample stores a sample at (channel, frame). Out-of-range positions
// are ignored.
func (b *Buffer) SetSample(channel, frame int, value Sample) {
	if channel < 0 || channel >= len(b.channels) || frame < 0 || frame >= b.nframes {
		return
	}
	b.channels[channel][frame] = value
	b.cleared = false
}

// ApplyGain multiplies count frames starting at start on one channel.
func (b *Buffer) ApplyGain(channel, start, count int, gain Sample) {
	if channel < 0 || channel >= len(b.channels) {
		return
	}
	ch := b.channels[channel]
	for i := start; i < start+count && i < len(ch); i++ {
		if i < 0 {
			continue
		}
		ch[i] *= gain
	}
}

// Resize reallocates the buffer for new channel and frame counts. Contents
// are not preserved. A no-op when the size is unchanged.
func (b *Buffer) Resize(nchannels, nframes int) {
	if nchannels == len(b.channels) && nframes == b.nframes {
		return
	}
	if nchannels > 0 && nframes > 0 {
		b.alloc(nchannels, nframes)
		return
	}
	b.channels = nil
	b.data = nil
	b.nframes = 0
	b.cleared = false
}

// ReferTo points the buffer at externally owned channel slices without
// copying. Any owned storage is released; the caller keeps ownership of
// the referenced data and must keep it alive while the buffer uses it.
func (b *Buffer) ReferTo(channels [][]Sample, nframes int) {
	b.data = nil
	b.channels = channels
	b.nframes = nframes
	b.cleared = false
}

// Duplicate deep-copies the given channel data into owned storage,
// resizing as needed. A buffer that was referring to external data gets
// fresh storage of its own, so the referenced slices are never written.
func (b *Buffer) Duplicate(source [][]Sample, nframes int) {
	if b.data == nil && len(source) > 0 && nframes > 0 {
		b.alloc(len(source), nframes)
	} else {
		b.Resize(len(source), nframes)
	}
	for c, src := range source {
		copy(b.channels[c], src[:nframes])
	}
	b.cleared = false
}
