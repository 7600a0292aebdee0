package tree

import (
	"fmt"
	"html"
	"io"

	"github.com/YuminosukeSato/cartree/pkg/errors"
	"github.com/awalterschulze/gographviz"
)

// ExportGraphviz writes t as a Graphviz DOT digraph. Nodes are numbered in
// pre-order, the root being node 0. featureNames, when given, must have one
// entry per feature and replaces the X[i] notation in decision labels.
//
// The output is meant for rendering with dot; it cannot be read back.
func ExportGraphviz(t *Tree, w io.Writer, featureNames []string) error {
	if featureNames != nil && len(featureNames) != t.NFeatures {
		return errors.NewDimensionError("tree.ExportGraphviz", t.NFeatures, len(featureNames), 1)
	}

	graph := gographviz.NewGraph()
	if err := graph.SetName("Tree"); err != nil {
		return errors.Wrap(err, "graphviz")
	}
	if err := graph.SetDir(true); err != nil {
		return errors.Wrap(err, "graphviz")
	}

	e := &dotExporter{graph: graph, tree: t, featureNames: featureNames}
	if _, err := e.add(t.Root); err != nil {
		return errors.Wrap(err, "graphviz")
	}

	if _, err := io.WriteString(w, graph.String()); err != nil {
		return errors.Wrap(err, "write dot")
	}
	return nil
}

type dotExporter struct {
	graph        *gographviz.Graph
	tree         *Tree
	featureNames []string
	next         int
}

// add emits n and its subtree and returns the DOT id of n.
func (e *dotExporter) add(n Node) (string, error) {
	id := fmt.Sprintf("%d", e.next)
	e.next++

	switch node := n.(type) {
	case *LeafNode:
		label := fmt.Sprintf("<class = %g<br/>samples = %d<br/>value = %v>", node.Label, node.Samples, node.ClassCounts)
		return id, e.graph.AddNode("Tree", id, map[string]string{"label": label, "shape": "box"})

	case *DecisionNode:
		label := fmt.Sprintf("<%s &lt; %g<br/>%s = %.4g<br/>samples = %d>",
			e.feature(node.Feature), node.Threshold, e.tree.criterionName(), node.Impurity, node.Samples)
		if err := e.graph.AddNode("Tree", id, map[string]string{"label": label, "shape": "box"}); err != nil {
			return id, err
		}
		for _, c := range []struct {
			child Node
			label string
		}{{node.Left, `"True"`}, {node.Right, `"False"`}} {
			if c.child == nil {
				continue
			}
			childID, err := e.add(c.child)
			if err != nil {
				return id, err
			}
			if err := e.graph.AddEdge(id, childID, true, map[string]string{"label": c.label}); err != nil {
				return id, err
			}
		}
		return id, nil
	}
	return id, errors.Newf("unexpected node %T", n)
}

func (e *dotExporter) feature(i int) string {
	if e.featureNames != nil {
		return html.EscapeString(e.featureNames[i])
	}
	return fmt.Sprintf("X[%d]", i)
}
