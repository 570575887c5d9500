package autodiff

// Gradients computes the gradient of output with respect to each node in wrt,
// using reverse-mode automatic differentiation.
//
// Algorithm:
//  1. Seed the gradient map with {output: Leaf(1)}.
//  2. Topologically sort every node reachable from output.
//  3. Walk the order in reverse; for each non-leaf node, invoke its
//     operator's backward rule and accumulate the per-input contributions.
//  4. Collect one gradient per wrt entry, in caller order.
//
// The returned gradients are graph Nodes, not raw values: accumulation at a
// shared node builds an Add node rather than summing numbers, so every
// gradient is itself an evaluable (and differentiable) expression. Call Eval
// on a result to obtain the number.
//
// A wrt node that does not influence output yields Leaf(0). The output node
// itself yields its Leaf(1) seed. Duplicate wrt entries return the same
// gradient node.
func Gradients(output *Node, wrt []*Node) []*Node {
	grads := map[*Node]*Node{output: Leaf(1)}

	order := topoOrder(output)
	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		if node.op == nil {
			continue // leaves have no inputs to propagate into
		}
		outputGrad := grads[node]
		inputGrads := node.op.Backward(outputGrad, node)
		for j, input := range node.inputs {
			if existing, ok := grads[input]; ok {
				grads[input] = existing.Add(inputGrads[j])
			} else {
				grads[input] = inputGrads[j]
			}
		}
	}

	result := make([]*Node, len(wrt))
	for i, node := range wrt {
		if grad, ok := grads[node]; ok {
			result[i] = grad
		} else {
			result[i] = Leaf(0)
		}
	}
	return result
}

// topoOrder returns every node reachable from root in topological order:
// each node appears after all of its inputs. Shared subgraphs are visited
// and appended exactly once, tracked by pointer identity.
func topoOrder(root *Node) []*Node {
	var order []*Node
	visited := make(map[*Node]bool)

	var visit func(*Node)
	visit = func(n *Node) {
		if visited[n] {
			return
		}
		visited[n] = true
		for _, input := range n.inputs {
			visit(input)
		}
		order = append(order, n)
	}

	visit(root)
	return order
}
