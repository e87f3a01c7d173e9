package audio

import "math"

const (
	// MinusInfinityDB is the default decibel floor treated as silence.
	MinusInfinityDB = -100.0
	// UnityGain is the linear gain that leaves a signal untouched.
	UnityGain = 1.0
)

// GainToDecibels converts a linear gain to decibels, clamped at
// MinusInfinityDB. Non-positive gains map to the floor.
func GainToDecibels(gain float64) float64 {
	return GainToDecibelsFloor(gain, MinusInfinityDB)
}

// GainToDecibelsFloor is GainToDecibels with a caller-chosen floor.
func GainToDecibelsFloor(gain, floor float64) float64 {
	if gain <= 0 {
		return floor
	}
	return math.Max(floor, math.Log10(gain)*20.0)
}

// DecibelsToGain converts decibels to a linear gain. Values at or below
// MinusInfinityDB map to zero.
func DecibelsToGain(db float64) float64 {
	return DecibelsToGainFloor(db, MinusInfinityDB)
}

// DecibelsToGainFloor is DecibelsToGain with a caller-chosen floor.
func DecibelsToGainFloor(db, floor float64) float64 {
	if db <= floor {
		return 0
	}
	return math.Pow(10.0, db*0.05)
}

// Round narrows a value to sample precision and back.
func Round(value float64) float64 {
	return float64(Sample(value))
}
