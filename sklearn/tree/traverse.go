package tree

import (
	"fmt"
	"strings"
)

// NodeInfo describes a node visited by Walk. Feature, Threshold and
// Impurity are set for decision nodes, Label for leaves.
type NodeInfo struct {
	Depth     int
	Kind      NodeKind
	Feature   int
	Threshold float64
	Impurity  float64
	Label     float64
	Samples   int
}

// Walk calls fn for every node in depth-first pre-order, left subtree
// before right. The root is at depth 0. Absent children are skipped.
// Walk stops at the first error returned by fn and returns it.
func (t *Tree) Walk(fn func(NodeInfo) error) error {
	return walk(t.Root, 0, fn)
}

func walk(n Node, depth int, fn func(NodeInfo) error) error {
	switch node := n.(type) {
	case *LeafNode:
		return fn(NodeInfo{
			Depth:   depth,
			Kind:    KindLeaf,
			Label:   node.Label,
			Samples: node.Samples,
		})
	case *DecisionNode:
		err := fn(NodeInfo{
			Depth:     depth,
			Kind:      KindDecision,
			Feature:   node.Feature,
			Threshold: node.Threshold,
			Impurity:  node.Impurity,
			Samples:   node.Samples,
		})
		if err != nil {
			return err
		}
		if err := walk(node.Left, depth+1, fn); err != nil {
			return err
		}
		return walk(node.Right, depth+1, fn)
	}
	return nil
}

// Stats summarises the shape of a tree.
type Stats struct {
	Depth          int // depth of the deepest node, root at 0
	Leaves         int
	DecisionNodes  int
	AbsentChildren int
}

// Stats returns the shape of the tree.
func (t *Tree) Stats() Stats {
	var s Stats
	var visit func(n Node, depth int)
	visit = func(n Node, depth int) {
		if n == nil {
			s.AbsentChildren++
			return
		}
		if depth > s.Depth {
			s.Depth = depth
		}
		switch node := n.(type) {
		case *LeafNode:
			s.Leaves++
		case *DecisionNode:
			s.DecisionNodes++
			visit(node.Left, depth+1)
			visit(node.Right, depth+1)
		}
	}
	if t.Root != nil {
		visit(t.Root, 0)
	}
	return s
}

// FeatureImportances returns the total weighted impurity decrease of each
// feature, normalised to sum to 1. Every entry is 0 when no split
// decreased the impurity.
func (t *Tree) FeatureImportances() []float64 {
	importances := make([]float64, t.NFeatures)
	var visit func(n Node)
	visit = func(n Node) {
		node, ok := n.(*DecisionNode)
		if !ok {
			return
		}
		importances[node.Feature] += node.gain
		visit(node.Left)
		visit(node.Right)
	}
	visit(t.Root)

	total := 0.0
	for _, v := range importances {
		total += v
	}
	if total > 0 {
		for i := range importances {
			importances[i] /= total
		}
	}
	return importances
}

// String renders the tree one node per line, indented by depth:
//
//	[X0 < 6.642] gini=0
//	 [0] n=5
//	 [1] n=5
//
// Absent children are shown as "[-]".
func (t *Tree) String() string {
	var sb strings.Builder
	var format func(n Node, depth int)
	format = func(n Node, depth int) {
		sb.WriteString(strings.Repeat(" ", depth))
		switch node := n.(type) {
		case nil:
			sb.WriteString("[-]\n")
		case *LeafNode:
			fmt.Fprintf(&sb, "[%g] n=%d\n", node.Label, node.Samples)
		case *DecisionNode:
			fmt.Fprintf(&sb, "[X%d < %.3f] %s=%.4g\n", node.Feature, node.Threshold, t.criterionName(), node.Impurity)
			format(node.Left, depth+1)
			format(node.Right, depth+1)
		}
	}
	format(t.Root, 0)
	return sb.String()
}

func (t *Tree) criterionName() string {
	if t.Criterion == "" {
		return "impurity"
	}
	return t.Criterion
}
