// Package constant provides a node which emits a constant signal.
package constant

import "pipelined.dev/patchbay"

// Node has no inputs and a single output. Every pass the output provides
// Count samples of Value. Running it is a no-op.
type Node struct {
	out output
}

type output struct {
	count int
	value float64
}

// New returns constant node which emits count samples of value.
func New(count int, value float64) *Node {
	if count < 0 {
		count = 0
	}
	return &Node{
		out: output{
			count: count,
			value: value,
		},
	}
}

// Run implements patchbay.Node.
func (*Node) Run() error {
	return nil
}

// NumInputs implements patchbay.Node.
func (*Node) NumInputs() int {
	return 0
}

// Input always returns nil.
func (*Node) Input(patchbay.InputID) patchbay.In {
	return nil
}

// NumOutputs implements patchbay.Node.
func (*Node) NumOutputs() int {
	return 1
}

// Output implements patchbay.Node.
func (n *Node) Output(idx patchbay.OutputID) patchbay.Out {
	if idx != 0 {
		return nil
	}
	return &n.out
}

func (o *output) NumSamples() int {
	return o.count
}

func (o *output) Output(dst []float64) int {
	upper := o.count
	if len(dst) < upper {
		upper = len(dst)
	}
	for i := range dst[:upper] {
		dst[i] = o.value
	}
	return upper
}
