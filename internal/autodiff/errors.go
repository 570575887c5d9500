package autodiff

import "fmt"

// ArityError reports an operator applied to the wrong number of inputs.
// It is detected at construction time; no node is built when it occurs.
type ArityError struct {
	Op   string // Operator name
	Want int    // Operator arity
	Got  int    // Number of inputs supplied
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("autodiff: %s expects %d inputs, got %d", e.Op, e.Want, e.Got)
}

// DisconnectedNodeError reports evaluation reaching a node with neither a
// cached value nor an operator. Such a node cannot be built through Leaf or
// Apply; this is a programmer error, not a recoverable condition.
type DisconnectedNodeError struct{}

func (e *DisconnectedNodeError) Error() string {
	return "autodiff: node is not connected to an operation and has no value"
}
