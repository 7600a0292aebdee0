package tree

// Node is a node of a classification tree: either a *DecisionNode or a
// *LeafNode. The set of implementations is closed.
type Node interface {
	// NumSamples returns the number of training samples that reached the node.
	NumSamples() int

	node()
}

// NodeKind tags the variant of a node.
type NodeKind int

const (
	KindDecision NodeKind = iota
	KindLeaf
)

func (k NodeKind) String() string {
	switch k {
	case KindDecision:
		return "decision"
	case KindLeaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// DecisionNode routes a sample left when x[Feature] < Threshold and right
// otherwise.
//
// A nil child is absent. Absent children only come from degenerate splits,
// where every sample of the node fell on one side; classifying a sample
// that is routed to an absent child yields ErrNoPrediction.
type DecisionNode struct {
	Feature   int
	Threshold float64
	Impurity  float64 // impurity of the chosen split
	Samples   int

	Left, Right Node

	// weighted impurity decrease, 0 for degenerate splits
	gain float64
}

// LeafNode is a terminal node labeled with the majority class of its group.
type LeafNode struct {
	Label   float64
	Samples int

	// ClassCounts is aligned with Tree.Classes.
	ClassCounts []int
}

func (n *DecisionNode) NumSamples() int { return n.Samples }
func (n *LeafNode) NumSamples() int     { return n.Samples }

func (*DecisionNode) node() {}
func (*LeafNode) node()     {}
