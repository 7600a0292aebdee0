// Package cartree provides CART classification trees for Go.
//
// A tree is grown by recursive binary partitioning: every decision node
// tests one feature against a threshold drawn from the training values, and
// the split with the lowest Gini impurity wins. Growth stops at a maximum
// depth, at a minimum group size, or when a split leaves one side empty.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/cartree/sklearn/tree"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 1, []float64{1, 2, 8, 9})
//	    y := mat.NewDense(4, 1, []float64{0, 0, 1, 1})
//
//	    clf := tree.NewDecisionTreeClassifier(tree.WithMaxDepth(3))
//	    if err := clf.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    pred, err := clf.Predict(mat.NewDense(1, 1, []float64{7}))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(pred.At(0, 0), clf.Tree())
//	}
//
// Samples routed to a branch that saw no training data have no prediction;
// Predict and Tree.Classify then return an error wrapping tree.ErrNoPrediction.
//
// # Packages
//
//   - sklearn/tree: tree builder, predictor and DecisionTreeClassifier
//   - metrics: accuracy and confusion matrix
//   - core/model: estimator interfaces and fitted-state bookkeeping
//   - core/parallel: parallel processing utilities
//   - pkg/errors: typed errors with stack traces
//   - pkg/log: structured logging backed by zerolog
//
// The cart command (cmd/cart) grows trees from CSV files and prints them.
package cartree
