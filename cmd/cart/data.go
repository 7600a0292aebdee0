package main

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/YuminosukeSato/cartree/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// readCSV reads numeric rows whose last column is the class label. With
// header set, the first row names the columns. Without a header, features
// are named X0, X1, ...
func readCSV(r io.Reader, header bool) (X, y *mat.Dense, featureNames []string, err error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "reading CSV")
	}
	if header && len(records) > 0 {
		featureNames = records[0][:len(records[0])-1]
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, nil, nil, errors.Wrap(errors.ErrEmptyData, "reading CSV")
	}

	cols := len(records[0])
	if cols < 2 {
		return nil, nil, nil, errors.NewDimensionError("readCSV", 2, cols, 1)
	}
	nFeatures := cols - 1

	X = mat.NewDense(len(records), nFeatures, nil)
	y = mat.NewDense(len(records), 1, nil)
	for i, rec := range records {
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, nil, errors.Wrapf(err, "row %d, column %d", i+1, j+1)
			}
			if j < nFeatures {
				X.Set(i, j, v)
			} else {
				y.Set(i, 0, v)
			}
		}
	}

	if featureNames == nil {
		featureNames = make([]string, nFeatures)
		for j := range featureNames {
			featureNames[j] = "X" + strconv.Itoa(j)
		}
	}
	return X, y, featureNames, nil
}

// tenSamples is the dataset of the demo command: two well separated
// clusters of five samples each.
func tenSamples() (X, y *mat.Dense) {
	X = mat.NewDense(10, 2, []float64{
		2.771244718, 1.784783929,
		1.728571309, 1.169761413,
		3.678319846, 2.81281357,
		3.961043357, 2.61995032,
		2.999208922, 2.209014212,
		7.497545867, 3.162953546,
		9.00220326, 3.339047188,
		7.444542326, 0.476683375,
		10.12493903, 3.234550982,
		6.642287351, 3.319983761,
	})
	y = mat.NewDense(10, 1, []float64{0, 0, 0, 0, 0, 1, 1, 1, 1, 1})
	return X, y
}
