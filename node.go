package patchbay

import "pipelined.dev/patchbay/metric"

type (
	// Node is a processing unit of the graph. Number of inputs and
	// outputs must not change after the node is constructed.
	Node interface {
		// Run prepares a new set of outputs from the last set of inputs.
		// It's called once per pass, after all upstream nodes have run.
		Run() error
		// NumInputs returns the number of input channels.
		NumInputs() int
		// Input returns input channel or nil if idx is out of range.
		Input(idx InputID) In
		// NumOutputs returns the number of output channels.
		NumOutputs() int
		// Output returns output channel or nil if idx is out of range.
		Output(idx OutputID) Out
	}

	// Flusher defines node that must be flushed in the end of execution.
	Flusher interface {
		Flush() error
	}

	// NodeID refers to a node within a particular graph.
	NodeID int

	// OutputID refers to an output of a particular node.
	OutputID int

	// InputID refers to an input of a particular node.
	InputID int
)

// binding is the upstream end of a patch cable.
type binding struct {
	node   NodeID
	output OutputID
}

// nodeWrapper holds a node and the mapping from the outputs of other nodes
// to its inputs. Unused outputs are fine, but unused inputs are not.
type nodeWrapper struct {
	Node
	// indexed by InputID, nil means no output is patched yet.
	inputs []*binding
	meter  metric.MeasureFunc
}

// flusher checks if node implements Flusher and if so, returns its hook.
func flusher(n Node) func() error {
	if v, ok := n.(Flusher); ok {
		return v.Flush
	}
	return nil
}
