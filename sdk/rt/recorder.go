package rt

import (
	"math"
	"sync"

	"github.com/kushview/rt/sdk/contracts"
)

// Recorder drains capture packets into a DoubleBuffer, converting each
// packet's wall-clock timestamp into a frame offset at a fixed sample
// rate. Frames are measured from the first packet seen after Start and
// grow for the life of the recorder, so the int32 frame range bounds a
// session to about 12 hours at 48 kHz; later packets clamp to the last
// frame. Long-lived hosts start a fresh recorder per take.
type Recorder struct {
	logger     contracts.Logger
	buffers    *DoubleBuffer
	sampleRate float64

	epoch    uint64
	wg       sync.WaitGroup
	stopOnce sync.Once
	done     chan struct{}
}

// NewRecorder creates a recorder writing to the given buffer pair.
func NewRecorder(buffers *DoubleBuffer, sampleRate float64, logger contracts.Logger) *Recorder {
	return &Recorder{
		logger:     logger,
		buffers:    buffers,
		sampleRate: sampleRate,
		done:       make(chan struct{}),
	}
}

// Start begins draining packets in a background goroutine. Draining ends
// when the channel is closed or Stop is called.
func (r *Recorder) Start(packets <-chan contracts.Packet) {
	r.logger.Info("Starting MIDI recorder",
		r.logger.Field().Float64("sampleRate", r.sampleRate))

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		for {
			select {
			case packet, ok := <-packets:
				if !ok {
					return
				}
				r.record(packet)
			case <-r.done:
				// Flush anything already buffered before shutting down.
				for {
					select {
					case packet, ok := <-packets:
						if !ok {
							return
						}
						r.record(packet)
					default:
						return
					}
				}
			}
		}
	}()
}

// Stop ends draining and waits for the background goroutine to finish.
// Safe to call more than once.
func (r *Recorder) Stop() {
	r.stopOnce.Do(func() {
		close(r.done)
		r.wg.Wait()
		r.logger.Info("MIDI recorder stopped")
	})
}

func (r *Recorder) record(packet contracts.Packet) {
	if r.epoch == 0 {
		r.epoch = packet.Timestamp
	}
	frame := r.frameFor(packet.Timestamp)
	bytes := [3]byte{packet.Status, packet.Data1, packet.Data2}
	r.buffers.Insert(frame, bytes[:])

	r.logger.Debug("Recorded MIDI packet",
		r.logger.Field().Int("frame", int(frame)),
		r.logger.Field().Uint8("status", packet.Status))
}

func (r *Recorder) frameFor(timestamp uint64) int32 {
	if timestamp < r.epoch {
		return 0
	}
	frames := float64(timestamp-r.epoch) / 1e9 * r.sampleRate
	if frames >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(frames)
}
