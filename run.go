package patchbay

import (
	"fmt"
	"time"
)

// Pass runs a single processing pass. If the graph was mutated, the order
// is computed first and its error is returned without running any node.
//
// Nodes run in order. Before a node runs, every of its inputs receives the
// data of the upstream output it's patched to. The first failed node stops
// the pass with RunError. It's also returned if a node doesn't provide a
// channel it was patched with.
func (g *Graph) Pass() error {
	if g.dirty {
		if err := g.ComputeOrder(); err != nil {
			return fmt.Errorf("%v is not runnable: %w", g, err)
		}
	}
	start := time.Now()
	for _, id := range g.order {
		w := g.nodes[id]
		samples := 0
		for i, b := range w.inputs {
			out := g.nodes[b.node].Output(b.output)
			if out == nil {
				return &RunError{Node: id, Err: graphError(ErrNoSuchOutput, b.node, int(b.output))}
			}
			in := w.Input(InputID(i))
			if in == nil {
				return &RunError{Node: id, Err: graphError(ErrNoSuchInput, id, i)}
			}
			samples += out.Output(in.Input(out.NumSamples()))
		}
		if err := w.Run(); err != nil {
			return &RunError{Node: id, Err: err}
		}
		w.meter(samples)
	}
	g.metric.Pass(time.Since(start))
	return nil
}

// Flush calls Flush hook of every node that implements Flusher. Hooks are
// called in order, all errors are collected.
func (g *Graph) Flush() error {
	if g.dirty {
		if err := g.ComputeOrder(); err != nil {
			return fmt.Errorf("%v is not runnable: %w", g, err)
		}
	}
	var errs flushErrors
	for _, id := range g.order {
		fn := flusher(g.nodes[id].Node)
		if fn == nil {
			continue
		}
		if err := fn(); err != nil {
			errs = append(errs, &RunError{Node: id, Err: err})
		}
	}
	g.logger().Debug(fmt.Sprintf("%v: flushed", g))
	return errs.ret()
}
