package autodiff

import "strconv"

// Node is a vertex in the computation graph: either a leaf constant or the
// result of applying an Op to other nodes.
//
// Nodes are compared by pointer identity. Two leaves holding the same constant
// are distinct graph entries, and the gradient propagator keys its
// accumulation map by that identity. A node never changes after construction
// except for the one-time memoization of its value, so sharing a node between
// several consumers is safe within a single goroutine. Nodes are not safe for
// concurrent use.
type Node struct {
	inputs []*Node // Input nodes, in operator order (empty for leaves)
	op     Op      // Operation that produced this node (nil for leaves)
	value  float64 // Memoized value, valid only when cached is true
	cached bool
}

// Leaf creates a leaf node holding a constant value.
func Leaf(value float64) *Node {
	return &Node{value: value, cached: true}
}

// Apply creates a node representing op applied to inputs.
// The number of inputs must match the operator's arity; otherwise an
// *ArityError is returned and no node is constructed.
func Apply(op Op, inputs []*Node) (*Node, error) {
	if len(inputs) != op.Arity() {
		return nil, &ArityError{Op: op.Name(), Want: op.Arity(), Got: len(inputs)}
	}
	return &Node{inputs: inputs, op: op}, nil
}

// apply is the infallible path used by the sugared builders, whose arity is
// fixed at 2 by their signatures.
func apply(op Op, inputs ...*Node) *Node {
	n, err := Apply(op, inputs)
	if err != nil {
		panic(err) // unreachable: builders always pass op.Arity() inputs
	}
	return n
}

// Add returns a new node computing n + other. Neither operand is mutated.
func (n *Node) Add(other *Node) *Node { return apply(Add, n, other) }

// Sub returns a new node computing n - other.
func (n *Node) Sub(other *Node) *Node { return apply(Sub, n, other) }

// Mul returns a new node computing n * other.
func (n *Node) Mul(other *Node) *Node { return apply(Mul, n, other) }

// Div returns a new node computing n / other.
func (n *Node) Div(other *Node) *Node { return apply(Div, n, other) }

// Eval resolves the node's numeric value.
//
// The value is memoized: the first call evaluates every input depth-first in
// input order, applies the operator's forward rule, and caches the result;
// later calls return the cached value without recomputation. Eval mutates
// nothing outside the visited subgraph.
//
// A node with neither a cached value nor an operator is malformed and yields
// a *DisconnectedNodeError.
func (n *Node) Eval() (float64, error) {
	if n.cached {
		return n.value, nil
	}
	if n.op == nil {
		return 0, &DisconnectedNodeError{}
	}
	inputValues := make([]float64, len(n.inputs))
	for i, input := range n.inputs {
		v, err := input.Eval()
		if err != nil {
			return 0, err
		}
		inputValues[i] = v
	}
	n.value = n.op.Forward(inputValues)
	n.cached = true
	return n.value, nil
}

// Inputs returns the node's input nodes in operator order.
// The returned slice is the node's own; callers must not modify it.
func (n *Node) Inputs() []*Node {
	return n.inputs
}

// Op returns the operation that produced this node, or nil for a leaf.
func (n *Node) Op() Op {
	return n.op
}

// IsLeaf reports whether the node is a leaf constant.
func (n *Node) IsLeaf() bool {
	return n.op == nil
}

// String formats the node's evaluated value.
// A malformed node renders as "node(?)" since Stringer has no error path.
func (n *Node) String() string {
	v, err := n.Eval()
	if err != nil {
		return "node(?)"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
