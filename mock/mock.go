// Package mock provides configurable nodes to test graphs.
package mock

import "pipelined.dev/patchbay"

// Recorder records the order in which nodes run. It can be shared by
// multiple nodes of the same graph.
type Recorder struct {
	Runs []string
}

// Node mocks a patchbay.Node with an arbitrary number of channels. Every
// run each output gets Count samples, where each sample is Value plus
// the sum of the corresponding input samples.
type Node struct {
	Name         string
	Inputs       int
	Outputs      int
	Count        int
	Value        float64
	ErrorOnRun   error
	ErrorOnFlush error
	Recorder     *Recorder
	Counter

	ins  []patchbay.Buffer
	outs []patchbay.Samples
}

// Counter counts node activity.
type Counter struct {
	Runs    int
	Samples int
	Flushed bool
}

// ValueParam pushes new signal value for node.
func (m *Node) ValueParam(v float64) func() {
	return func() {
		m.Value = v
	}
}

// Run implements patchbay.Node.
func (m *Node) Run() error {
	if m.ErrorOnRun != nil {
		return m.ErrorOnRun
	}
	m.init()
	if m.Recorder != nil {
		m.Recorder.Runs = append(m.Recorder.Runs, m.Name)
	}
	m.Counter.Runs++
	for i := range m.ins {
		m.Counter.Samples += len(m.ins[i].Samples())
	}
	for o := range m.outs {
		if cap(m.outs[o]) < m.Count {
			m.outs[o] = make(patchbay.Samples, m.Count)
		}
		m.outs[o] = m.outs[o][:m.Count]
		for j := range m.outs[o] {
			v := m.Value
			for i := range m.ins {
				if in := m.ins[i].Samples(); j < len(in) {
					v += in[j]
				}
			}
			m.outs[o][j] = v
		}
	}
	return nil
}

// Flush implements patchbay.Flusher.
func (m *Node) Flush() error {
	m.Counter.Flushed = true
	return m.ErrorOnFlush
}

// NumInputs implements patchbay.Node.
func (m *Node) NumInputs() int {
	return m.Inputs
}

// Input implements patchbay.Node.
func (m *Node) Input(idx patchbay.InputID) patchbay.In {
	if idx < 0 || int(idx) >= m.Inputs {
		return nil
	}
	m.init()
	return &m.ins[idx]
}

// NumOutputs implements patchbay.Node.
func (m *Node) NumOutputs() int {
	return m.Outputs
}

// Output implements patchbay.Node.
func (m *Node) Output(idx patchbay.OutputID) patchbay.Out {
	if idx < 0 || int(idx) >= m.Outputs {
		return nil
	}
	m.init()
	return &m.outs[idx]
}

// Received returns samples received by input during the last pass.
func (m *Node) Received(idx patchbay.InputID) []float64 {
	if idx < 0 || int(idx) >= len(m.ins) {
		return nil
	}
	return m.ins[idx].Samples()
}

func (m *Node) init() {
	if m.ins == nil {
		m.ins = make([]patchbay.Buffer, m.Inputs)
	}
	if m.outs == nil {
		m.outs = make([]patchbay.Samples, m.Outputs)
	}
}
