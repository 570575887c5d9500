package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalar-ml/scalargrad/internal/autodiff"
)

// evalGrad evaluates a single gradient node, failing the test on error.
func evalGrad(t *testing.T, n *autodiff.Node) float64 {
	t.Helper()
	v, err := n.Eval()
	require.NoError(t, err)
	return v
}

func TestGradients_OutputWrtItself(t *testing.T) {
	a := autodiff.Leaf(2)
	c := a.Mul(a)

	grads := autodiff.Gradients(c, []*autodiff.Node{c})
	assert.Equal(t, 1.0, evalGrad(t, grads[0]))
}

func TestGradients_UnreachableInput(t *testing.T) {
	a := autodiff.Leaf(2)
	b := autodiff.Leaf(3)
	unrelated := autodiff.Leaf(7)
	c := a.Add(b)

	grads := autodiff.Gradients(c, []*autodiff.Node{unrelated})
	assert.Equal(t, 0.0, evalGrad(t, grads[0]))
}

// TestGradients_Polynomial checks c = a² - b² + a/b at a=2, b=3:
//
//	dc/da = 2a + 1/b
//	dc/db = -2b - a/b²
func TestGradients_Polynomial(t *testing.T) {
	a := autodiff.Leaf(2)
	b := autodiff.Leaf(3)
	c := a.Mul(a).Sub(b.Mul(b)).Add(a.Div(b))

	v, err := c.Eval()
	require.NoError(t, err)
	assert.InDelta(t, 2*2-3*3+2.0/3, v, 1e-12)

	grads := autodiff.Gradients(c, []*autodiff.Node{a, b})
	require.Len(t, grads, 2)
	assert.InDelta(t, 2*2+1.0/3, evalGrad(t, grads[0]), 1e-12)
	assert.InDelta(t, -2*3-2.0/(3*3), evalGrad(t, grads[1]), 1e-12)
}

func TestGradients_PerOperator(t *testing.T) {
	tests := []struct {
		name  string
		build func(a, b *autodiff.Node) *autodiff.Node
		wantA float64 // at a=5, b=4
		wantB float64
	}{
		{"add", func(a, b *autodiff.Node) *autodiff.Node { return a.Add(b) }, 1, 1},
		{"sub", func(a, b *autodiff.Node) *autodiff.Node { return a.Sub(b) }, 1, -1},
		{"mul", func(a, b *autodiff.Node) *autodiff.Node { return a.Mul(b) }, 4, 5},
		{"div", func(a, b *autodiff.Node) *autodiff.Node { return a.Div(b) }, 1.0 / 4, -5.0 / 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := autodiff.Leaf(5)
			b := autodiff.Leaf(4)
			c := tt.build(a, b)

			grads := autodiff.Gradients(c, []*autodiff.Node{a, b})
			assert.InDelta(t, tt.wantA, evalGrad(t, grads[0]), 1e-12)
			assert.InDelta(t, tt.wantB, evalGrad(t, grads[1]), 1e-12)
		})
	}
}

// TestGradients_SharedSubgraph uses the diamond d = (a+b)·(a+b): the shared
// sum receives a contribution along both paths, so dd/da = 2(a+b).
func TestGradients_SharedSubgraph(t *testing.T) {
	a := autodiff.Leaf(2)
	b := autodiff.Leaf(3)
	sum := a.Add(b)
	d := sum.Mul(sum)

	grads := autodiff.Gradients(d, []*autodiff.Node{a, b})
	assert.InDelta(t, 2*(2+3.0), evalGrad(t, grads[0]), 1e-12)
	assert.InDelta(t, 2*(2+3.0), evalGrad(t, grads[1]), 1e-12)
}

func TestGradients_DuplicateWrt(t *testing.T) {
	a := autodiff.Leaf(2)
	c := a.Mul(a)

	grads := autodiff.Gradients(c, []*autodiff.Node{a, a})
	require.Len(t, grads, 2)
	assert.Same(t, grads[0], grads[1])
	assert.InDelta(t, 4.0, evalGrad(t, grads[0]), 1e-12)
}

// Gradients are graph expressions, so they can be differentiated again:
// for c = a·a, dc/da = 2a and d²c/da² = 2.
func TestGradients_Composable(t *testing.T) {
	a := autodiff.Leaf(2)
	c := a.Mul(a)

	first := autodiff.Gradients(c, []*autodiff.Node{a})[0]
	assert.InDelta(t, 4.0, evalGrad(t, first), 1e-12)

	second := autodiff.Gradients(first, []*autodiff.Node{a})[0]
	assert.InDelta(t, 2.0, evalGrad(t, second), 1e-12)
}

// Division by zero is deferred: gradient construction succeeds and the fault
// surfaces as IEEE Inf/NaN when the expression is evaluated.
func TestGradients_DivByZeroDeferred(t *testing.T) {
	a := autodiff.Leaf(1)
	b := autodiff.Leaf(0)
	c := a.Div(b)

	grads := autodiff.Gradients(c, []*autodiff.Node{a, b})

	ga, err := grads[0].Eval()
	require.NoError(t, err)
	assert.True(t, math.IsInf(ga, 1), "d(a/b)/da = 1/b = +Inf at b=0, got %v", ga)

	gb, err := grads[1].Eval()
	require.NoError(t, err)
	assert.True(t, math.IsInf(gb, -1), "d(a/b)/db = -a/b² = -Inf at b=0, got %v", gb)
}

func TestGradients_DoesNotDisturbForward(t *testing.T) {
	a := autodiff.Leaf(2)
	b := autodiff.Leaf(3)
	c := a.Mul(b)

	before, err := c.Eval()
	require.NoError(t, err)

	autodiff.Gradients(c, []*autodiff.Node{a, b})

	after, err := c.Eval()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
