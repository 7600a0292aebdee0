package tree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/YuminosukeSato/cartree/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk_PreOrder(t *testing.T) {
	tr, err := Build(tenSamples(), MaxDepth(3), MinSize(1))
	require.NoError(t, err)

	type visit struct {
		Depth     int
		Kind      NodeKind
		Threshold float64
		Label     float64
		Samples   int
	}
	var got []visit
	require.NoError(t, tr.Walk(func(n NodeInfo) error {
		v := visit{Depth: n.Depth, Kind: n.Kind, Samples: n.Samples}
		if n.Kind == KindDecision {
			assert.Equal(t, 0, n.Feature)
			assert.Equal(t, 0.0, n.Impurity)
			v.Threshold = n.Threshold
		} else {
			v.Label = n.Label
		}
		got = append(got, v)
		return nil
	}))

	want := []visit{
		{0, KindDecision, 6.642287351, 0, 10},
		{1, KindDecision, 2.771244718, 0, 5},
		{2, KindLeaf, 0, 0, 1},
		{2, KindDecision, 2.771244718, 0, 4},
		{3, KindLeaf, 0, 0, 4}, // left child absent
		{1, KindDecision, 7.497545867, 0, 5},
		{2, KindDecision, 7.444542326, 0, 2},
		{3, KindLeaf, 0, 1, 1},
		{3, KindLeaf, 0, 1, 1},
		{2, KindDecision, 7.497545867, 0, 3},
		{3, KindLeaf, 0, 1, 3}, // left child absent
	}
	assert.Equal(t, want, got)

	assert.Equal(t, Stats{Depth: 3, Leaves: 5, DecisionNodes: 6, AbsentChildren: 2}, tr.Stats())
}

func TestWalk_StopsOnError(t *testing.T) {
	tr, err := Build(tenSamples(), MaxDepth(3))
	require.NoError(t, err)

	stop := errors.New("stop")
	visited := 0
	err = tr.Walk(func(n NodeInfo) error {
		visited++
		if n.Kind == KindLeaf {
			return stop
		}
		return nil
	})
	assert.True(t, errors.Is(err, stop))
	assert.Equal(t, 3, visited)
}

func TestClassify(t *testing.T) {
	tr, err := Build(tenSamples(), MaxDepth(3))
	require.NoError(t, err)

	tests := []struct {
		x    []float64
		want float64
	}{
		{[]float64{1.0, 9.9}, 0},
		{[]float64{3.0, 0.0}, 0},
		{[]float64{7.0, 0.0}, 1},
		{[]float64{12.0, 5.0}, 1},
		{[]float64{6.642287351, 0}, 1},    // threshold goes right
		{[]float64{2.0, 1.0, 1}, 0},       // trailing label is ignored
	}
	for _, tt := range tests {
		got, err := tr.Classify(tt.x)
		require.NoError(t, err, "x=%v", tt.x)
		assert.Equal(t, tt.want, got, "x=%v", tt.x)
	}

	for _, bad := range [][]float64{{}, {1}, {1, 2, 3, 4}} {
		_, err := tr.Classify(bad)
		var dimErr *errors.DimensionError
		assert.True(t, errors.As(err, &dimErr), "x=%v", bad)
	}
}

func TestClassify_EmptyTree(t *testing.T) {
	_, err := (&Tree{NFeatures: 1}).Classify([]float64{0})
	assert.True(t, errors.Is(err, ErrNoPrediction))
}

func TestTree_String(t *testing.T) {
	tr, err := Build(tenSamples(), MaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, "[X0 < 6.642] gini=0\n [0] n=5\n [1] n=5\n", tr.String())

	degenerate, err := Build(Dataset{{1, 0}, {1, 1}})
	require.NoError(t, err)
	assert.Equal(t, "[X0 < 1.000] gini=0.5\n [-]\n [0] n=2\n", degenerate.String())
}

func TestFeatureImportances(t *testing.T) {
	tr, err := Build(tenSamples(), MaxDepth(3))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, tr.FeatureImportances())

	// No split decreases the impurity of a single-class dataset.
	pure, err := Build(Dataset{{1, 2, 0}, {3, 4, 0}, {5, 6, 0}})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, pure.FeatureImportances())
}

func TestExportGraphviz(t *testing.T) {
	tr, err := Build(tenSamples(), MaxDepth(3))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ExportGraphviz(tr, &buf, []string{"height", "width"}))
	dot := buf.String()

	assert.True(t, strings.HasPrefix(strings.TrimSpace(dot), "digraph Tree"), dot)
	assert.Contains(t, dot, "height &lt; 6.642287351")
	assert.Contains(t, dot, "class = 1")

	// One DOT node per tree node, one edge per present child.
	stats := tr.Stats()
	assert.Equal(t, stats.Leaves+stats.DecisionNodes, strings.Count(dot, "samples ="))
	assert.Equal(t, stats.Leaves+stats.DecisionNodes-1, strings.Count(dot, "->"))

	buf.Reset()
	require.NoError(t, ExportGraphviz(tr, &buf, nil))
	assert.Contains(t, buf.String(), "X[0] &lt; 6.642287351")

	err = ExportGraphviz(tr, &buf, []string{"only one"})
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))
}
