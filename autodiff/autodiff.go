// Copyright 2026 The Scalargrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar expression graphs.
//
// Expressions are built lazily as a DAG of Nodes, evaluated with a memoized
// forward pass, and differentiated with a single topological sort plus a
// reverse accumulation walk. Gradients are symbolic: they are returned as
// graph Nodes built from the same four operators, so a gradient is itself an
// evaluable, differentiable expression.
//
// Example:
//
//	import "github.com/scalar-ml/scalargrad/autodiff"
//
//	func main() {
//	    a := autodiff.Leaf(2)
//	    b := autodiff.Leaf(3)
//	    c := a.Mul(a).Sub(b.Mul(b)).Add(a.Div(b)) // c = a² - b² + a/b
//
//	    value, _ := c.Eval()
//	    grads := autodiff.Gradients(c, []*autodiff.Node{a, b})
//	    dcda, _ := grads[0].Eval() // 2a + 1/b
//	    dcdb, _ := grads[1].Eval() // -2b - a/b²
//	}
package autodiff

import "github.com/scalar-ml/scalargrad/internal/autodiff"

// Node is a vertex in the computation DAG: a leaf constant or the result of
// applying an operator to other nodes.
type Node = autodiff.Node

// Op is a fixed-arity differentiable operation with a forward (value) rule
// and a backward (local gradient) rule.
type Op = autodiff.Op

// ArityError reports an operator applied to the wrong number of inputs.
type ArityError = autodiff.ArityError

// DisconnectedNodeError reports evaluation of a malformed node with neither
// a value nor an operator.
type DisconnectedNodeError = autodiff.DisconnectedNodeError

// The four supported operators, for use with Apply. The sugared Node
// builders (Add, Sub, Mul, Div methods) use the same values.
var (
	Add = autodiff.Add
	Sub = autodiff.Sub
	Mul = autodiff.Mul
	Div = autodiff.Div
)

// Leaf creates a leaf node holding a constant value.
func Leaf(value float64) *Node {
	return autodiff.Leaf(value)
}

// Apply creates a node representing op applied to inputs.
// Returns an *ArityError if len(inputs) does not match the operator's arity.
func Apply(op Op, inputs []*Node) (*Node, error) {
	return autodiff.Apply(op, inputs)
}

// Gradients computes the symbolic gradient of output with respect to each
// node in wrt, in caller order. Nodes that do not influence output yield
// Leaf(0).
func Gradients(output *Node, wrt []*Node) []*Node {
	return autodiff.Gradients(output, wrt)
}

// Dot renders the graph reachable from output in Graphviz DOT format.
func Dot(output *Node) string {
	return autodiff.Dot(output)
}
