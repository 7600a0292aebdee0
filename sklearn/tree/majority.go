package tree

import (
	"math"
	"sort"
)

// MajorityLabel returns the most frequent label of group. Ties go to the
// numerically smallest label. It returns NaN for an empty group.
func MajorityLabel(group Dataset) float64 {
	if len(group) == 0 {
		return math.NaN()
	}

	tally := make(map[float64]int)
	for _, s := range group {
		tally[s.Label()]++
	}

	labels := make([]float64, 0, len(tally))
	for label := range tally {
		labels = append(labels, label)
	}
	sort.Float64s(labels)

	best := labels[0]
	for _, label := range labels[1:] {
		if tally[label] > tally[best] {
			best = label
		}
	}
	return best
}
