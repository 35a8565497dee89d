package patchbay

type (
	// In is a channel which reads samples. The graph asks it for a buffer
	// of the required size and fills it with the upstream output before
	// the owning node runs.
	In interface {
		// Input returns a buffer owned by the channel which has room for
		// exactly count samples.
		Input(count int) []float64
	}

	// Out is a channel which writes samples.
	Out interface {
		// NumSamples returns the number of samples that the next call
		// to Output will produce. It doesn't change until the owning
		// node runs again.
		NumSamples() int
		// Output populates dst with data from the channel and returns
		// the number of samples written. If dst is big enough this is
		// the same number as returned by NumSamples.
		Output(dst []float64) int
	}
)

// Buffer is a reusable input channel. Its memory is only reallocated when
// a bigger buffer is requested.
type Buffer struct {
	data []float64
}

// Input implements In.
func (b *Buffer) Input(count int) []float64 {
	if cap(b.data) < count {
		b.data = make([]float64, count)
	}
	b.data = b.data[:count]
	return b.data
}

// Samples returns samples received by the last Input call.
func (b *Buffer) Samples() []float64 {
	return b.data
}

// Samples is an output channel backed by a slice.
type Samples []float64

// NumSamples implements Out.
func (s Samples) NumSamples() int {
	return len(s)
}

// Output implements Out.
func (s Samples) Output(dst []float64) int {
	return copy(dst, s)
}
