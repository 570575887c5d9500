// Package autodiff implements a minimal reverse-mode automatic
// differentiation engine over scalar expression graphs.
//
// Architecture:
//   - Node: a graph vertex, either a leaf constant or the result of an Op;
//     identity-compared, value memoized on first evaluation
//   - Op interface: each operator (Add, Sub, Mul, Div) implements a forward
//     (value) rule and a backward (local gradient) rule
//   - Gradients: one topological sort plus one reverse walk, accumulating
//     per-node contributions via the chain rule
//
// Gradients are symbolic: backward rules build new graph nodes rather than
// numbers, so the result of Gradients is itself an evaluable, differentiable
// expression. This is the package's only gradient mode.
//
// Usage:
//
//	a := autodiff.Leaf(2)
//	b := autodiff.Leaf(3)
//	c := a.Mul(a).Sub(b.Mul(b)).Add(a.Div(b)) // c = a² - b² + a/b
//
//	grads := autodiff.Gradients(c, []*autodiff.Node{a, b})
//	da, _ := grads[0].Eval() // 2a + 1/b
//	db, _ := grads[1].Eval() // -2b - a/b²
//
// Evaluation is single-threaded and synchronous; nodes are not safe for
// concurrent use.
package autodiff
