package tree

import (
	"math/rand"
	"testing"

	"github.com/YuminosukeSato/cartree/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGiniIndex(t *testing.T) {
	classes := []float64{0, 1}

	tests := []struct {
		name   string
		groups []Dataset
		want   float64
	}{
		{"pure groups", []Dataset{{{1, 0}, {2, 0}}, {{3, 1}}}, 0},
		{"single pure group", []Dataset{{{1, 1}, {2, 1}, {3, 1}}}, 0},
		{"mixed and pure", []Dataset{{{1, 0}, {2, 1}}, {{3, 1}}}, 1.0 / 3.0},
		{"empty group is skipped", []Dataset{{}, {{1, 0}, {2, 1}}}, 0.5},
		{"all empty", []Dataset{{}, {}}, 0},
		{"evenly mixed", []Dataset{{{1, 0}, {2, 1}}, {{3, 0}, {4, 1}}}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, GiniIndex(tt.groups, classes), 1e-12)
		})
	}
}

func TestGiniIndex_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		nClasses := 2 + rng.Intn(4)
		classes := make([]float64, nClasses)
		for i := range classes {
			classes[i] = float64(i)
		}

		groups := make([]Dataset, 1+rng.Intn(3))
		for g := range groups {
			n := 1 + rng.Intn(20)
			for i := 0; i < n; i++ {
				groups[g] = append(groups[g], Sample{0, float64(rng.Intn(nClasses))})
			}
		}

		score := GiniIndex(groups, classes)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.Less(t, score, 1.0)
	}
}

func TestEntropy(t *testing.T) {
	classes := []float64{0, 1}
	assert.Equal(t, 0.0, Entropy.Impurity([]Dataset{{{1, 0}}, {{2, 1}, {3, 1}}}, classes))
	assert.InDelta(t, 1.0, Entropy.Impurity([]Dataset{{{1, 0}, {2, 1}}}, classes), 1e-12)
	assert.InDelta(t, 0.5, Entropy.Impurity([]Dataset{{{1, 0}, {2, 1}}, {{3, 1}, {4, 1}}}, classes), 1e-12)
}

func TestCriterionByName(t *testing.T) {
	c, err := CriterionByName("Gini")
	require.NoError(t, err)
	assert.Equal(t, "gini", c.Name())

	c, err = CriterionByName("entropy")
	require.NoError(t, err)
	assert.Equal(t, Entropy, c)

	_, err = CriterionByName("log_loss")
	var valErr *errors.ValidationError
	assert.True(t, errors.As(err, &valErr))
}

func TestBestSplit_TenSamples(t *testing.T) {
	s := BestSplit(tenSamples(), Gini, 1)

	assert.Equal(t, 0, s.Feature)
	assert.Equal(t, 6.642287351, s.Threshold)
	assert.Equal(t, 0.0, s.Score)
	assert.Len(t, s.Left, 5)
	assert.Len(t, s.Right, 5)
	for _, x := range s.Left {
		assert.Equal(t, 0.0, x.Label())
	}
}

func TestBestSplit_FirstMinimumWins(t *testing.T) {
	// Both features separate the classes perfectly; feature 0 comes first.
	d := Dataset{
		{5, 5, 1},
		{1, 1, 0},
		{6, 6, 1},
		{2, 2, 0},
	}
	s := BestSplit(d, Gini, 1)
	assert.Equal(t, 0, s.Feature)
	assert.Equal(t, 5.0, s.Threshold, "first perfect threshold in dataset order")

	// Within a feature, an equally good later threshold does not replace
	// the incumbent.
	d = Dataset{
		{3, 0},
		{1, 0},
		{2, 0},
	}
	s = BestSplit(d, Gini, 1)
	assert.Equal(t, 3.0, s.Threshold)
	assert.Len(t, s.Left, 2)
	assert.Len(t, s.Right, 1)
}

func TestBestSplit_GroupsKeepDatasetOrder(t *testing.T) {
	d := Dataset{
		{4, 1},
		{1, 0},
		{3, 1},
		{0, 0},
	}
	s := BestSplit(d, Gini, 1)
	assert.Equal(t, 3.0, s.Threshold)
	assert.Equal(t, Dataset{{1, 0}, {0, 0}}, s.Left)
	assert.Equal(t, Dataset{{4, 1}, {3, 1}}, s.Right)
}

func TestBestSplit_ParallelMatchesSequential(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		d := randomDataset(parallelSplitMinSamples*2, 6, 3, seed)
		want := BestSplit(d, Gini, 1)
		for _, workers := range []int{2, 3, 8} {
			assert.Equal(t, want, BestSplit(d, Gini, workers), "seed %d workers %d", seed, workers)
		}
	}
}

func TestBestSplit_NilCriterionDefaultsToGini(t *testing.T) {
	assert.Equal(t, BestSplit(tenSamples(), Gini, 1), BestSplit(tenSamples(), nil, 1))
}

func BenchmarkBestSplit(b *testing.B) {
	d := randomDataset(200, 8, 3, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BestSplit(d, Gini, 1)
	}
}
