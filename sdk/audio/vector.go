package audio

// Vector is a fixed-size block of samples.
type Vector struct {
	values []Sample
}

// NewVector creates a zeroed vector of the given size. Non-positive sizes
// yield an empty vector.
func NewVector(size int) *Vector {
	v := &Vector{}
	if size > 0 {
		v.values = make([]Sample, size)
	}
	return v
}

// Len returns the number of samples in the vector.
func (v *Vector) Len() int {
	return len(v.values)
}

// Get returns the sample at index i, or 0 when out of range.
func (v *Vector) Get(i int) Sample {
	if i < 0 || i >= len(v.values) {
		return 0
	}
	return v.values[i]
}

// Set stores a sample at index i. Out-of-range indexes are ignored.
func (v *Vector) Set(i int, value Sample) {
	if i < 0 || i >= len(v.values) {
		return
	}
	v.values[i] = value
}

// Values returns the underlying samples. The slice aliases the vector's
// storage.
func (v *Vector) Values() []Sample {
	return v.values
}

// Clear zeroes the vector.
func (v *Vector) Clear() {
	for i := range v.values {
		v.values[i] = 0
	}
}
