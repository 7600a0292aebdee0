package tree

import (
	"sort"

	"github.com/YuminosukeSato/cartree/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Sample is one training row: the feature values followed by the class
// label in the last position.
type Sample []float64

// Features returns the feature part of the sample.
func (s Sample) Features() []float64 {
	return s[:len(s)-1]
}

// Label returns the class label stored in the last position.
func (s Sample) Label() float64 {
	return s[len(s)-1]
}

// Dataset is an ordered sequence of samples. The order matters: the split
// search visits candidate thresholds in dataset order.
//
// A subset of a Dataset produced by a split is called a group. Groups may be
// empty.
type Dataset []Sample

// NewDataset builds a Dataset from a feature matrix and a label column.
// X is (n_samples, n_features), y is (n_samples, 1).
func NewDataset(X, y mat.Matrix) (Dataset, error) {
	rows, cols := X.Dims()
	yRows, yCols := y.Dims()

	if rows == 0 {
		return nil, errors.NewModelError("NewDataset", "validation", errors.ErrEmptyData)
	}
	if yRows != rows {
		return nil, errors.NewDimensionError("NewDataset", rows, yRows, 0)
	}
	if yCols != 1 {
		return nil, errors.NewDimensionError("NewDataset", 1, yCols, 1)
	}

	d := make(Dataset, rows)
	for i := 0; i < rows; i++ {
		s := make(Sample, cols+1)
		for j := 0; j < cols; j++ {
			s[j] = X.At(i, j)
		}
		s[cols] = y.At(i, 0)
		d[i] = s
	}
	return d, nil
}

// NumFeatures returns the number of feature columns, derived from the first
// sample. It returns 0 for an empty dataset.
func (d Dataset) NumFeatures() int {
	if len(d) == 0 {
		return 0
	}
	return len(d[0]) - 1
}

// Classes returns the distinct labels of the dataset in ascending order.
func (d Dataset) Classes() []float64 {
	seen := make(map[float64]struct{}, 4)
	classes := make([]float64, 0, 4)
	for _, s := range d {
		label := s.Label()
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		classes = append(classes, label)
	}
	sort.Float64s(classes)
	return classes
}

// Validate checks the dataset before a build: it must be non-empty, every
// sample must have the same length with at least one feature, and no value
// may be NaN or infinite.
func (d Dataset) Validate() error {
	if len(d) == 0 {
		return errors.NewModelError("tree.Build", "validation", errors.ErrEmptyData)
	}

	width := len(d[0])
	if width < 2 {
		// 特徴量が1つもない
		return errors.NewDimensionError("tree.Build", 1, width-1, 1)
	}

	for i, s := range d {
		if len(s) != width {
			return errors.NewDimensionError("tree.Build", width-1, len(s)-1, 1)
		}
		if err := errors.CheckNumericalStability("dataset_validation", s, i); err != nil {
			return err
		}
	}
	return nil
}

// partition splits d on feature: values strictly below threshold go left,
// the rest go right. Both groups keep dataset order.
func (d Dataset) partition(feature int, threshold float64) (left, right Dataset) {
	for _, s := range d {
		if s[feature] < threshold {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}
	return left, right
}
