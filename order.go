package patchbay

import "fmt"

// frame is a node on the traversal stack and the next input to resolve.
type frame struct {
	id   NodeID
	next int
}

// ComputeOrder performs a topological sort of the nodes in the graph to
// determine the order in which the nodes will do their processing. It
// ensures that each node has its inputs computed before it runs.
//
// ErrIncompleteGraph is returned if some node has a free input and
// ErrCycleDetected if nodes depend on each other. On failure the graph
// stays dirty and the previous order is kept.
func (g *Graph) ComputeOrder() error {
	order, err := g.sort()
	if err != nil {
		g.metric.Order(false)
		g.logger().Debug(fmt.Sprintf("%v: order failed: %v", g, err))
		return err
	}
	g.order = order
	g.dirty = false
	g.metric.Order(true)
	g.logger().Debug(fmt.Sprintf("%v: order computed: %v", g, order))
	return nil
}

// sort is a post-order depth-first traversal with an explicit stack.
// Outer iteration goes in increasing NodeID order, so the result is
// deterministic for identical structures.
func (g *Graph) sort() ([]NodeID, error) {
	var (
		marked  = make([]bool, len(g.nodes))
		onStack = make([]bool, len(g.nodes))
		order   = make([]NodeID, 0, len(g.nodes))
		stack   []frame
	)
	for root := range g.nodes {
		if marked[root] {
			continue
		}
		stack = append(stack[:0], frame{id: NodeID(root)})
		onStack[root] = true
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			inputs := g.nodes[top.id].inputs
			if top.next == len(inputs) {
				// all inputs are resolved.
				marked[top.id] = true
				onStack[top.id] = false
				order = append(order, top.id)
				stack = stack[:len(stack)-1]
				continue
			}

			b := inputs[top.next]
			top.next++
			if b == nil {
				return nil, graphError(ErrIncompleteGraph, top.id, top.next-1)
			}
			if onStack[b.node] {
				return nil, graphError(ErrCycleDetected, b.node, 0)
			}
			if marked[b.node] {
				continue
			}
			onStack[b.node] = true
			stack = append(stack, frame{id: b.node})
		}
	}
	return order, nil
}
