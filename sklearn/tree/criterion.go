package tree

import (
	"math"
	"sort"
	"strings"

	"github.com/YuminosukeSato/cartree/pkg/errors"
)

// Criterion scores how mixed the labels of a split are. Implementations
// weight each non-empty group by its share of the split and skip empty
// groups. A split whose groups are all pure scores 0.
type Criterion interface {
	// Name returns the lower-case criterion name, e.g. "gini".
	Name() string

	// Impurity scores groups against the sorted set of known classes.
	Impurity(groups []Dataset, classes []float64) float64
}

var (
	// Gini is the Gini index criterion (default).
	Gini Criterion = giniCriterion{}

	// Entropy is the Shannon entropy criterion, in bits.
	Entropy Criterion = entropyCriterion{}
)

// CriterionByName returns the criterion registered under name ("gini" or
// "entropy", case-insensitive).
func CriterionByName(name string) (Criterion, error) {
	switch strings.ToLower(name) {
	case "gini":
		return Gini, nil
	case "entropy":
		return Entropy, nil
	default:
		return nil, errors.NewValidationError("criterion", "must be \"gini\" or \"entropy\"", name)
	}
}

// GiniIndex returns the weighted Gini impurity of a split:
//
//	Σ_g (|g| / total) · (1 − Σ_c p(c|g)²)
//
// where total counts the samples of every group. Empty groups contribute
// nothing. Labels outside classes are ignored when computing p(c|g).
func GiniIndex(groups []Dataset, classes []float64) float64 {
	return weightedImpurity(groups, classes, giniScore)
}

type giniCriterion struct{}

func (giniCriterion) Name() string { return "gini" }

func (giniCriterion) Impurity(groups []Dataset, classes []float64) float64 {
	return GiniIndex(groups, classes)
}

type entropyCriterion struct{}

func (entropyCriterion) Name() string { return "entropy" }

func (entropyCriterion) Impurity(groups []Dataset, classes []float64) float64 {
	return weightedImpurity(groups, classes, entropyScore)
}

func weightedImpurity(groups []Dataset, classes []float64, score func(counts []int, size int) float64) float64 {
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	if total == 0 {
		return 0
	}

	impurity := 0.0
	for _, g := range groups {
		size := len(g)
		if size == 0 {
			continue
		}
		impurity += score(classCounts(g, classes), size) * float64(size) / float64(total)
	}
	return impurity
}

func giniScore(counts []int, size int) float64 {
	sum := 0.0
	for _, c := range counts {
		p := float64(c) / float64(size)
		sum += p * p
	}
	return 1.0 - sum
}

func entropyScore(counts []int, size int) float64 {
	h := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(size)
		h -= p * math.Log2(p)
	}
	return h
}

// classCounts tallies the labels of group against classes, which must be
// sorted ascending. The result is aligned with classes.
func classCounts(group Dataset, classes []float64) []int {
	counts := make([]int, len(classes))
	for _, s := range group {
		label := s.Label()
		i := sort.SearchFloat64s(classes, label)
		if i < len(classes) && classes[i] == label {
			counts[i]++
		}
	}
	return counts
}
