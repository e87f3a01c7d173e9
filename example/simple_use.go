package main

import (
	"fmt"
	"time"

	"github.com/kushview/rt/internal/logger"
	"github.com/kushview/rt/sdk/capture"
	"github.com/kushview/rt/sdk/contracts"
	"github.com/kushview/rt/sdk/midi"
)

func main() {
	log := logger.NewDevelopmentLogger()

	// Offline use: build a buffer by hand and walk it.
	buf := midi.NewEventBuffer(256)
	buf.InsertPacked(64, midi.NoteOff(1, 60, 0))
	buf.InsertPacked(0, midi.NoteOn(1, 60, 100))
	buf.InsertPacked(32, midi.Controller(1, 7, 127))

	for c := buf.Iter(); c.Next(); {
		fmt.Printf("frame=%-4d %s\n", c.Frame(), c.Message())
	}

	// Live use: capture hardware input into a double-buffered recorder.
	session, err := capture.NewSession(48000,
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
		contracts.WithBufferCapacity(4096),
		contracts.WithCommandFilter(contracts.CommandFilter{
			Commands: []byte{midi.StatusNoteOn, midi.StatusNoteOff},
		}),
	)
	if err != nil {
		log.Error("Failed to initialize capture session", log.Field().Error("error", err))
		return
	}

	devices, err := session.Client().ListDevices()
	if err != nil || len(devices) == 0 {
		log.Error("No MIDI devices found or error listing devices", log.Field().Error("error", err))
		return
	}
	fmt.Println("Available MIDI devices:", devices)

	if err = session.Client().SelectDevice(0); err != nil {
		log.Error("Failed to select MIDI device", log.Field().Error("error", err))
		return
	}

	session.Start()
	defer session.Stop()

	// Consume one "block" per second, the way a processing loop would once
	// per audio callback.
	for i := 0; i < 10; i++ {
		time.Sleep(time.Second)
		block := session.Swap()
		for c := block.Iter(); c.Next(); {
			log.Info("MIDI event",
				log.Field().Int("frame", int(c.Frame())),
				log.Field().String("message", c.Message().String()),
			)
		}
	}
}
