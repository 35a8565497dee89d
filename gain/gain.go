// Package gain provides a node which multiplies the signal by a factor.
package gain

import "pipelined.dev/patchbay"

// Node has a single input and a single output. Every run the output gets
// the last received input multiplied by the factor.
type Node struct {
	factor float64
	in     patchbay.Buffer
	out    patchbay.Samples
}

// New returns gain node with provided factor.
func New(factor float64) *Node {
	return &Node{factor: factor}
}

// FactorParam returns a function which changes the factor. It must be
// called between passes.
func (n *Node) FactorParam(factor float64) func() {
	return func() {
		n.factor = factor
	}
}

// Factor returns current factor.
func (n *Node) Factor() float64 {
	return n.factor
}

// Run implements patchbay.Node.
func (n *Node) Run() error {
	in := n.in.Samples()
	if cap(n.out) < len(in) {
		n.out = make(patchbay.Samples, len(in))
	}
	n.out = n.out[:len(in)]
	for i, v := range in {
		n.out[i] = v * n.factor
	}
	return nil
}

// NumInputs implements patchbay.Node.
func (*Node) NumInputs() int {
	return 1
}

// Input implements patchbay.Node.
func (n *Node) Input(idx patchbay.InputID) patchbay.In {
	if idx != 0 {
		return nil
	}
	return &n.in
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
