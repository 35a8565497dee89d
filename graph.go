package patchbay

import (
	"fmt"

	"github.com/rs/xid"

	"pipelined.dev/patchbay/metric"
)

// Logger is a global interface for graph loggers.
type Logger interface {
	Debug(...interface{})
	Info(...interface{})
}

// Graph is a complete audio pipeline. This is a directed multi-graph, and
// is required to be acyclic before it can be processed.
//
// The zero value is an empty graph without a name and id. Graph is not
// safe for concurrent use. Mutations and passes must be
// serialized by the owner.
type Graph struct {
	uid  string
	name string

	nodes []*nodeWrapper
	// order is a list of NodeIDs in dependency order.
	order []NodeID
	// if dirty is true, then order is inconsistent and needs to be
	// recomputed.
	dirty bool

	metric *metric.Metric
	log    Logger
}

// New creates a graph without any nodes and applies provided options.
func New(options ...Option) *Graph {
	g := &Graph{
		uid: newUID(),
		log: defaultLogger,
	}
	for _, option := range options {
		option(g)
	}
	return g
}

// newUID returns new unique id value.
func newUID() string {
	return xid.New().String()
}

// AddNode adds a node to the graph and returns an id to refer to it by.
// Ids are assigned sequentially starting from zero.
func (g *Graph) AddNode(n Node) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, &nodeWrapper{
		Node:   n,
		inputs: make([]*binding, n.NumInputs()),
		meter:  g.metric.Meter(n),
	})
	// the order is no longer valid.
	g.dirty = true
	g.logger().Debug(fmt.Sprintf("%v: added node %d %T", g, id, n))
	return id
}

// Patch plugs the output channel oChan of node oNode into the input
// channel iChan of node iNode.
//
// ErrNoSuchNode, ErrNoSuchOutput and ErrNoSuchInput abort the patch
// without any mutation. ErrInputAlreadyPatched is returned if the input
// already had an output plugged into it. In this case the patch still goes
// through, replacing the old assignment.
func (g *Graph) Patch(oNode NodeID, oChan OutputID, iNode NodeID, iChan InputID) error {
	o, ok := g.wrapper(oNode)
	if !ok {
		return graphError(ErrNoSuchNode, oNode, 0)
	}
	if oChan < 0 || int(oChan) >= o.NumOutputs() {
		return graphError(ErrNoSuchOutput, oNode, int(oChan))
	}
	i, ok := g.wrapper(iNode)
	if !ok {
		return graphError(ErrNoSuchNode, iNode, 0)
	}
	if iChan < 0 || int(iChan) >= len(i.inputs) {
		return graphError(ErrNoSuchInput, iNode, int(iChan))
	}

	old := i.inputs[iChan]
	i.inputs[iChan] = &binding{node: oNode, output: oChan}
	g.dirty = true
	if old != nil {
		g.logger().Info(fmt.Sprintf("%v: node %d input %d repatched from %d.%d to %d.%d",
			g, iNode, iChan, old.node, old.output, oNode, oChan))
		return graphError(ErrInputAlreadyPatched, iNode, int(iChan))
	}
	return nil
}

// Unpatch removes the patch cable plugged into the input channel iChan of
// node iNode. Unpatching a free input is a no-op.
func (g *Graph) Unpatch(iNode NodeID, iChan InputID) error {
	i, ok := g.wrapper(iNode)
	if !ok {
		return graphError(ErrNoSuchNode, iNode, 0)
	}
	if iChan < 0 || int(iChan) >= len(i.inputs) {
		return graphError(ErrNoSuchInput, iNode, int(iChan))
	}
	if i.inputs[iChan] != nil {
		i.inputs[iChan] = nil
		g.dirty = true
	}
	return nil
}

// Binding returns the output plugged into the input channel iChan of node
// iNode. The last value is false if the input is free or doesn't exist.
func (g *Graph) Binding(iNode NodeID, iChan InputID) (NodeID, OutputID, bool) {
	i, ok := g.wrapper(iNode)
	if !ok || iChan < 0 || int(iChan) >= len(i.inputs) || i.inputs[iChan] == nil {
		return 0, 0, false
	}
	b := i.inputs[iChan]
	return b.node, b.output, true
}

// Node returns the node with provided id or nil if it doesn't exist.
func (g *Graph) Node(id NodeID) Node {
	if w, ok := g.wrapper(id); ok {
		return w.Node
	}
	return nil
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Dirty returns true if the graph was mutated since the last successful
// order computation.
func (g *Graph) Dirty() bool {
	return g.dirty
}

// Order returns a copy of the last successfully computed order. It must
// not be used for processing while the graph is dirty.
func (g *Graph) Order() []NodeID {
	order := make([]NodeID, len(g.order))
	copy(order, g.order)
	return order
}

// ID returns unique identifier of the graph.
func (g *Graph) ID() string {
	return g.uid
}

// String returns the graph name followed by its id.
func (g *Graph) String() string {
	if g.name == "" {
		return g.uid
	}
	return fmt.Sprintf("%v %v", g.name, g.uid)
}

// logger returns silent logger if graph was created without New.
func (g *Graph) logger() Logger {
	if g.log == nil {
		return defaultLogger
	}
	return g.log
}

func (g *Graph) wrapper(id NodeID) (*nodeWrapper, bool) {
	if id < 0 || int(id) >= len(g.nodes) {
		return nil, false
	}
	return g.nodes[id], true
}

type silentLogger struct{}

func (silentLogger) Debug(args ...interface{}) {}

func (silentLogger) Info(args ...interface{}) {}

var defaultLogger silentLogger
