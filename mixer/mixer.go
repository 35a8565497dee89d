// Package mixer provides a node which mixes multiple inputs into a single
// output.
package mixer

import "pipelined.dev/patchbay"

// Mixer has a fixed number of inputs and a single output. Every sample of
// the output is the average of the corresponding input samples. Inputs
// can be of different length, then only inputs which have a sample at
// the position are averaged. The output is as long as the longest input.
type Mixer struct {
	inputs []patchbay.Buffer
	out    patchbay.Samples
}

// New returns mixer with provided number of inputs.
func New(numInputs int) *Mixer {
	if numInputs < 0 {
		numInputs = 0
	}
	return &Mixer{
		inputs: make([]patchbay.Buffer, numInputs),
	}
}

// Run mixes the last received inputs.
func (m *Mixer) Run() error {
	size := 0
	for i := range m.inputs {
		if l := len(m.inputs[i].Samples()); l > size {
			size = l
		}
	}
	if cap(m.out) < size {
		m.out = make(patchbay.Samples, size)
	}
	m.out = m.out[:size]

	var sum, signals float64
	for bs := range m.out {
		sum = 0
		signals = 0
		// additional check to sum shorten inputs
		for i := range m.inputs {
			if in := m.inputs[i].Samples(); len(in) > bs {
				sum = sum + in[bs]
				signals++
			}
		}
		m.out[bs] = sum / signals
	}
	return nil
}

// NumInputs implements patchbay.Node.
func (m *Mixer) NumInputs() int {
	return len(m.inputs)
}

// Input implements patchbay.Node.
func (m *Mixer) Input(idx patchbay.InputID) patchbay.In {
	if idx < 0 || int(idx) >= len(m.inputs) {
		return nil
	}
	return &m.inputs[idx]
}

// NumOutputs implements patchbay.Node.
func (*Mixer) NumOutputs() int {
	return 1
}

// Output implements patchbay.Node.
func (m *Mixer) Output(idx patchbay.OutputID) patchbay.Out {
	if idx != 0 {
		return nil
	}
	return &m.out
}
