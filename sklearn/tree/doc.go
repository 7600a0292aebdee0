// Package tree implements binary classification trees (CART).
//
// Build grows a Tree from a Dataset whose samples hold the features followed
// by the class label. Each decision node splits its group on the observed
// feature value with the lowest impurity (Gini by default); samples with
// x[feature] < threshold go left. A split that leaves one side empty gets a
// leaf on the other side only, so the empty side stays absent and
// Tree.Classify reports ErrNoPrediction for samples routed there.
//
// DecisionTreeClassifier wraps Build behind a scikit-learn style API over
// gonum matrices.
package tree
