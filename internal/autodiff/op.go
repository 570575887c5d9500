package autodiff

// Op is a stateless, fixed-arity differentiable operation.
//
// Forward computes the numeric result from the input values; Backward
// computes the gradient contribution to each input, given the gradient of
// some final output with respect to this node. Backward returns graph Nodes,
// not raw scalars: gradients are built with the same construction machinery
// as the forward graph, so a gradient expression is itself evaluable and
// differentiable.
type Op interface {
	// Name returns the operator's name, used in errors and DOT output.
	Name() string

	// Arity returns the number of inputs the operator accepts.
	Arity() int

	// Forward computes the output value from the input values, in input
	// order. Arity is enforced at construction, so len(inputs) == Arity().
	Forward(inputs []float64) float64

	// Backward computes gradient contributions for the node's inputs.
	//
	// outputGrad is the accumulated gradient of the final output with
	// respect to node. node is the node this operator produced; rules that
	// need the original operands (Mul, Div) reach them through
	// node.Inputs(). Returns one contribution Node per input, in input
	// order.
	Backward(outputGrad, node *Node) []*Node
}

// The four supported operators. Each is a stateless singleton; Apply and the
// Node builders share these values.
var (
	Add Op = addOp{}
	Sub Op = subOp{}
	Mul Op = mulOp{}
	Div Op = divOp{}
)

// addOp computes a + b.
//
// Backward: d(a+b)/da = 1 and d(a+b)/db = 1, so the output gradient flows
// unchanged to both inputs.
type addOp struct{}

func (addOp) Name() string { return "add" }
func (addOp) Arity() int { return 2 }

func (addOp) Forward(inputs []float64) float64 {
	return inputs[0] + inputs[1]
}

func (addOp) Backward(outputGrad, node *Node) []*Node {
	return []*Node{outputGrad, outputGrad}
}

// subOp computes a - b.
//
// Backward: d(a-b)/da = 1, d(a-b)/db = -1.
type subOp struct{}

func (subOp) Name() string { return "sub" }
func (subOp) Arity() int { return 2 }

func (subOp) Forward(inputs []float64) float64 {
	return inputs[0] - inputs[1]
}

func (subOp) Backward(outputGrad, node *Node) []*Node {
	return []*Node{outputGrad, Leaf(-1).Mul(outputGrad)}
}

// mulOp computes a * b.
//
// Backward: d(a*b)/da = b, d(a*b)/db = a. The rules reference the original
// operand nodes, not their values, so the gradient stays symbolic.
type mulOp struct{}

func (mulOp) Name() string { return "mul" }
func (mulOp) Arity() int { return 2 }

func (mulOp) Forward(inputs []float64) float64 {
	return inputs[0] * inputs[1]
}

func (mulOp) Backward(outputGrad, node *Node) []*Node {
	a, b := node.inputs[0], node.inputs[1]
	return []*Node{b.Mul(outputGrad), a.Mul(outputGrad)}
}

// divOp computes a / b.
//
// Backward: d(a/b)/da = 1/b, d(a/b)/db = -a/b². No zero-denominator guard:
// a zero b surfaces as ±Inf/NaN when the gradient expression is evaluated,
// not as a construction error.
type divOp struct{}

func (divOp) Name() string { return "div" }
func (divOp) Arity() int { return 2 }

func (divOp) Forward(inputs []float64) float64 {
	return inputs[0] / inputs[1]
}

func (divOp) Backward(outputGrad, node *Node) []*Node {
	a, b := node.inputs[0], node.inputs[1]
	gradA := outputGrad.Mul(Leaf(1).Div(b))
	gradB := outputGrad.Mul(Leaf(-1).Mul(a).Div(b.Mul(b)))
	return []*Node{gradA, gradB}
}
