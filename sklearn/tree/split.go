package tree

import (
	"math"

	"github.com/YuminosukeSato/cartree/core/parallel"
)

// parallelSplitMinSamples is the group size below which the split search
// stays on one goroutine even when workers > 1.
const parallelSplitMinSamples = 64

// Split is the outcome of the split search on one group.
type Split struct {
	Feature   int
	Threshold float64
	Score     float64 // impurity of (Left, Right)

	// Left holds samples with Feature < Threshold, Right the rest.
	Left, Right Dataset
}

// BestSplit searches every (feature, observed value) pair of d for the split
// with the lowest impurity under c. Features are visited in ascending
// order and thresholds in dataset order; only a strictly lower score
// replaces the incumbent, so the first minimum found wins ties.
//
// The search costs O(n²·m) criterion evaluations for n samples and m
// features. With workers > 1 features are searched concurrently and the
// per-feature winners are merged in feature order, which yields the same
// Split as the sequential search. d must not be empty.
func BestSplit(d Dataset, c Criterion, workers int) Split {
	if c == nil {
		c = Gini
	}
	classes := d.Classes()
	nFeatures := d.NumFeatures()

	perFeature := make([]Split, nFeatures)
	search := func(start, end int) {
		for f := start; f < end; f++ {
			perFeature[f] = bestSplitOnFeature(d, f, c, classes)
		}
	}

	if workers > 1 && len(d) >= parallelSplitMinSamples {
		parallel.ParallelizeWithThreshold(nFeatures, 1, workers, search)
	} else {
		search(0, nFeatures)
	}

	best := Split{Score: math.Inf(1)}
	for _, s := range perFeature {
		if s.Score < best.Score {
			best = s
		}
	}
	return best
}

func bestSplitOnFeature(d Dataset, feature int, c Criterion, classes []float64) Split {
	best := Split{Feature: feature, Score: math.Inf(1)}
	groups := make([]Dataset, 2)
	for _, s := range d {
		threshold := s[feature]
		left, right := d.partition(feature, threshold)
		groups[0], groups[1] = left, right
		if score := c.Impurity(groups, classes); score < best.Score {
			best = Split{
				Feature:   feature,
				Threshold: threshold,
				Score:     score,
				Left:      left,
				Right:     right,
			}
		}
	}
	return best
}
