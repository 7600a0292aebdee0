package tree

import (
	"github.com/YuminosukeSato/cartree/pkg/errors"
)

// ErrNoPrediction is returned by Classify when the sample is routed to an
// absent child. Check for it with errors.Is.
var ErrNoPrediction = errors.New("no prediction")

// Classify predicts the label of x. x holds the features in training order;
// a trailing label column is accepted and ignored.
//
// A sample reaching an absent child has no prediction and Classify returns
// an error wrapping ErrNoPrediction that names the depth and feature of the
// node where traversal stopped.
func (t *Tree) Classify(x []float64) (float64, error) {
	leaf, err := t.leafFor(x)
	if err != nil {
		return 0, err
	}
	return leaf.Label, nil
}

// leafFor returns the leaf x is routed to.
func (t *Tree) leafFor(x []float64) (*LeafNode, error) {
	if len(x) != t.NFeatures && len(x) != t.NFeatures+1 {
		return nil, errors.NewDimensionError("tree.Classify", t.NFeatures, len(x), 1)
	}

	n := t.Root
	for depth := 0; ; depth++ {
		switch node := n.(type) {
		case *LeafNode:
			return node, nil
		case *DecisionNode:
			if x[node.Feature] < node.Threshold {
				n = node.Left
			} else {
				n = node.Right
			}
			if n == nil {
				return nil, errors.Wrapf(ErrNoPrediction,
					"absent child below depth %d (x[%d]=%g, threshold %g)",
					depth, node.Feature, x[node.Feature], node.Threshold)
			}
		default:
			return nil, errors.Wrapf(ErrNoPrediction, "unexpected node %T at depth %d", n, depth)
		}
	}
}
