package patchbay

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoSuchNode is returned when NodeID doesn't refer to any node in
	// the graph.
	ErrNoSuchNode = errors.New("no such node")
	// ErrNoSuchInput is returned when InputID doesn't refer to any input
	// channel of the node.
	ErrNoSuchInput = errors.New("no such input")
	// ErrNoSuchOutput is returned when OutputID doesn't refer to any
	// output channel of the node.
	ErrNoSuchOutput = errors.New("no such output")
	// ErrInputAlreadyPatched is returned when the input already had an
	// output plugged into it. The new patch is applied regardless.
	ErrInputAlreadyPatched = errors.New("input already patched")
	// ErrIncompleteGraph is returned when some node has inputs without
	// any output patched into them.
	ErrIncompleteGraph = errors.New("incomplete graph")
	// ErrCycleDetected is returned when there is a cycle in the graph.
	ErrCycleDetected = errors.New("cycle detected")
)

// GraphError describes a structural error of the graph.
type GraphError struct {
	Err     error
	Node    NodeID
	Channel int
}

func (e *GraphError) Error() string {
	switch e.Err {
	case ErrNoSuchInput, ErrNoSuchOutput, ErrInputAlreadyPatched, ErrIncompleteGraph:
		return fmt.Sprintf("%v: node %d channel %d", e.Err, e.Node, e.Channel)
	}
	return fmt.Sprintf("%v: node %d", e.Err, e.Node)
}

// Unwrap returns the sentinel error.
func (e *GraphError) Unwrap() error {
	return e.Err
}

// RunError is returned if node failed to run or flush.
type RunError struct {
	Node NodeID
	Err  error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("node %d: %v", e.Node, e.Err)
}

// Unwrap returns the error of the node.
func (e *RunError) Unwrap() error {
	return e.Err
}

// flushErrors wraps errors that might occur when multiple nodes fail
// to flush.
type flushErrors []error

func (e flushErrors) Error() string {
	s := []string{}
	for _, se := range e {
		s = append(s, se.Error())
	}
	return strings.Join(s, ",")
}

// Is checks if any of errors match provided sentinel error.
func (e flushErrors) Is(err error) bool {
	for _, se := range e {
		if errors.Is(se, err) {
			return true
		}
	}
	return false
}

// ret returns untyped nil if error list is empty.
func (e flushErrors) ret() error {
	if len(e) > 0 {
		return e
	}
	return nil
}

func graphError(err error, node NodeID, channel int) error {
	return &GraphError{
		Err:     err,
		Node:    node,
		Channel: channel,
	}
}
