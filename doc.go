/*
Package patchbay allows to build and execute modular audio graphs.

# Concept

A graph is a set of nodes connected with patch cables. Every node has a
fixed number of input and output channels:

	In - the channel which receives samples from upstream;
	Out - the channel which provides samples to downstream;

It implies the following constraints:

	Every input must be patched to exactly one output;
	Outputs can be left unused or feed any number of inputs;
	The graph must be acyclic.

# Nodes

Node implementations are provided by other packages. For example,
constant.Node emits a constant signal and wav.Sink writes the received
signal into a wav file. A node only has to report its channels and advance
its state when Run is called.

# Patching

Nodes are added to the graph and then patched together:

	g := patchbay.New()
	src := g.AddNode(constant.New(512, 0.5))
	amp := g.AddNode(gain.New(0.8))
	dst := g.AddNode(sink)
	err := g.Patch(src, 0, amp, 0)
	err = g.Patch(amp, 0, dst, 0)

Patching an input which is already patched replaces the old cable and
returns ErrInputAlreadyPatched, so this error can be treated as a warning.

# Execution

Before the graph can be processed, the execution order must be computed:

	err := g.ComputeOrder()

It fails with ErrIncompleteGraph if some input is free and with
ErrCycleDetected if nodes depend on each other. Once order is computed,
Pass runs every node once, each node after its upstream nodes:

	for i := 0; i < passes; i++ {
		if err := g.Pass(); err != nil {
			return err
		}
	}
	err = g.Flush()

Graph must not be processed and mutated concurrently.
*/
package patchbay
