// Package repeat provides a node which repeats a single input to multiple
// outputs.
package repeat

import "pipelined.dev/patchbay"

// Repeater sinks the signal and sources it to multiple outputs. Every
// output holds its own copy of the last received samples, so downstream
// nodes can't affect each other.
type Repeater struct {
	in      patchbay.Buffer
	outputs []patchbay.Samples
}

// New returns repeater with provided number of outputs.
func New(numOutputs int) *Repeater {
	if numOutputs < 0 {
		numOutputs = 0
	}
	return &Repeater{
		outputs: make([]patchbay.Samples, numOutputs),
	}
}

// Run copies the received samples to every output.
func (r *Repeater) Run() error {
	in := r.in.Samples()
	for i := range r.outputs {
		if cap(r.outputs[i]) < len(in) {
			r.outputs[i] = make(patchbay.Samples, len(in))
		}
		r.outputs[i] = r.outputs[i][:len(in)]
		copy(r.outputs[i], in)
	}
	return nil
}

// NumInputs implements patchbay.Node.
func (*Repeater) NumInputs() int {
	return 1
}

// Input implements patchbay.Node.
func (r *Repeater) Input(idx patchbay.InputID) patchbay.In {
	if idx != 0 {
		return nil
	}
	return &r.in
}

// NumOutputs implements patchbay.Node.
func (r *Repeater) NumOutputs() int {
	return len(r.outputs)
}

// Output implements patchbay.Node.
func (r *Repeater) Output(idx patchbay.OutputID) patchbay.Out {
	if idx < 0 || int(idx) >= len(r.outputs) {
		return nil
	}
	return &r.outputs[idx]
}
