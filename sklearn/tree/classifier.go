package tree

import (
	"fmt"
	"math"
	"time"

	"github.com/YuminosukeSato/cartree/core/model"
	"github.com/YuminosukeSato/cartree/metrics"
	"github.com/YuminosukeSato/cartree/pkg/errors"
	"github.com/YuminosukeSato/cartree/pkg/log"
	"gonum.org/v1/gonum/mat"
)

var (
	_ model.Classifier      = (*DecisionTreeClassifier)(nil)
	_ model.ParameterGetter = (*DecisionTreeClassifier)(nil)
	_ model.ParameterSetter = (*DecisionTreeClassifier)(nil)
)

// DecisionTreeClassifier is a CART classifier with a scikit-learn style API
// over gonum matrices.
//
//	clf := tree.NewDecisionTreeClassifier(tree.WithMaxDepth(3))
//	if err := clf.Fit(X, y); err != nil { ... }
//	pred, err := clf.Predict(X)
type DecisionTreeClassifier struct {
	state *model.StateManager

	// ハイパーパラメータ
	criterion string
	maxDepth  int
	minSize   int
	workers   int
	logger    log.Logger

	// 学習結果
	tree_      *Tree
	classes_   []float64
	nClasses_  int
	nFeatures_ int
}

// Option is a functional option for DecisionTreeClassifier.
type Option func(*DecisionTreeClassifier)

// WithCriterion sets the split criterion: "gini" (default) or "entropy".
func WithCriterion(criterion string) Option {
	return func(c *DecisionTreeClassifier) {
		c.criterion = criterion
	}
}

// WithMaxDepth sets the maximum depth of the tree.
func WithMaxDepth(depth int) Option {
	return func(c *DecisionTreeClassifier) {
		c.maxDepth = depth
	}
}

// WithMinSize sets the group size at or below which a node becomes a leaf.
func WithMinSize(size int) Option {
	return func(c *DecisionTreeClassifier) {
		c.minSize = size
	}
}

// WithWorkers sets the number of goroutines used during Fit.
func WithWorkers(n int) Option {
	return func(c *DecisionTreeClassifier) {
		c.workers = n
	}
}

// WithLogger sets the logger. By default the package logger named "tree"
// is used.
func WithLogger(logger log.Logger) Option {
	return func(c *DecisionTreeClassifier) {
		c.logger = logger
	}
}

// NewDecisionTreeClassifier creates a classifier. Hyperparameters are
// validated by Fit.
func NewDecisionTreeClassifier(opts ...Option) *DecisionTreeClassifier {
	c := &DecisionTreeClassifier{
		state:     model.NewStateManager(),
		criterion: "gini",
		maxDepth:  DefaultMaxDepth,
		minSize:   DefaultMinSize,
		workers:   1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *DecisionTreeClassifier) getLogger() log.Logger {
	if c.logger != nil {
		return c.logger
	}
	return log.GetLoggerWithName("tree").With(log.ModelNameKey, "DecisionTreeClassifier")
}

// Fit builds the tree from X (n_samples, n_features) and y (n_samples, 1).
func (c *DecisionTreeClassifier) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "DecisionTreeClassifier.Fit")

	logger := c.getLogger()
	start := time.Now()
	c.state.Reset()
	c.tree_ = nil

	criterion, err := CriterionByName(c.criterion)
	if err != nil {
		logger.Error("Fit failed", err, log.OperationKey, log.OperationFit)
		return err
	}

	d, err := NewDataset(X, y)
	if err != nil {
		logger.Error("Fit failed", err, log.OperationKey, log.OperationFit)
		return err
	}

	logger.Debug("Fit started",
		log.OperationKey, log.OperationFit,
		log.PhaseKey, log.PhaseTraining,
		log.SamplesKey, len(d),
		log.FeaturesKey, d.NumFeatures(),
		log.MaxDepthKey, c.maxDepth,
		log.MinSizeKey, c.minSize,
		log.CriterionKey, criterion.Name(),
		log.WorkersKey, c.workers,
	)

	t, err := Build(d,
		MaxDepth(c.maxDepth),
		MinSize(c.minSize),
		SplitCriterion(criterion),
		Workers(c.workers),
	)
	if err != nil {
		logger.Error("Fit failed", err, log.OperationKey, log.OperationFit)
		return err
	}

	c.tree_ = t
	c.classes_ = t.Classes
	c.nClasses_ = len(t.Classes)
	c.nFeatures_ = t.NFeatures
	c.state.SetFitted(t.NFeatures, len(d))

	stats := t.Stats()
	logger.Info("Fit completed",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, len(d),
		log.ClassesKey, c.nClasses_,
		log.TreeDepthKey, stats.Depth,
		log.LeavesKey, stats.Leaves,
		log.AbsentChildrenKey, stats.AbsentChildren,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// IsFitted reports whether Fit has succeeded.
func (c *DecisionTreeClassifier) IsFitted() bool {
	return c.state.IsFitted()
}

func (c *DecisionTreeClassifier) checkInput(X mat.Matrix, method string) (rows, cols int, err error) {
	if err := c.state.RequireFitted("DecisionTreeClassifier", method); err != nil {
		return 0, 0, err
	}
	rows, cols = X.Dims()
	if err := c.state.RequireFeatures("DecisionTreeClassifier."+method, cols); err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

// Predict returns the predicted label of every row of X as an (n_samples, 1)
// matrix. It fails with an error wrapping ErrNoPrediction if any row reaches
// an absent child.
func (c *DecisionTreeClassifier) Predict(X mat.Matrix) (mat.Matrix, error) {
	rows, cols, err := c.checkInput(X, "Predict")
	if err != nil {
		return nil, err
	}

	out := mat.NewDense(rows, 1, nil)
	x := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(x, i, X)
		label, err := c.tree_.Classify(x)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		out.Set(i, 0, label)
	}
	return out, nil
}

// PredictProba returns, for every row of X, the class distribution of the
// leaf it reaches. Columns follow Classes(). Rows reaching an absent child
// fail like in Predict.
func (c *DecisionTreeClassifier) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	rows, cols, err := c.checkInput(X, "PredictProba")
	if err != nil {
		return nil, err
	}

	out := mat.NewDense(rows, c.nClasses_, nil)
	x := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(x, i, X)
		leaf, err := c.tree_.leafFor(x)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		for j, n := range leaf.ClassCounts {
			out.Set(i, j, errors.SafeDivide(float64(n), float64(leaf.Samples)))
		}
	}
	return out, nil
}

// Score returns the accuracy of the classifier on X and y. Rows without a
// prediction count as misclassified and raise an UndefinedMetricWarning.
func (c *DecisionTreeClassifier) Score(X, y mat.Matrix) (float64, error) {
	rows, cols, err := c.checkInput(X, "Score")
	if err != nil {
		return 0, err
	}

	pred := mat.NewVecDense(rows, nil)
	undefined := 0
	x := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(x, i, X)
		label, err := c.tree_.Classify(x)
		switch {
		case errors.Is(err, ErrNoPrediction):
			undefined++
			pred.SetVec(i, math.NaN())
		case err != nil:
			return 0, err
		default:
			pred.SetVec(i, label)
		}
	}

	acc, err := metrics.AccuracyMatrix(y, pred)
	if err != nil {
		return 0, err
	}
	if undefined > 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("accuracy",
			fmt.Sprintf("%d of %d samples have no prediction", undefined, rows), acc))
	}

	c.getLogger().Debug("Score computed",
		log.OperationKey, log.OperationScore,
		log.PhaseKey, log.PhaseInference,
		log.PredsKey, rows,
		log.UndefinedPredsKey, undefined,
		log.AccuracyKey, acc,
	)
	return acc, nil
}

// Tree returns the fitted tree, or nil before Fit.
func (c *DecisionTreeClassifier) Tree() *Tree {
	return c.tree_
}

// Classes returns the sorted class labels seen during Fit.
func (c *DecisionTreeClassifier) Classes() []float64 {
	return c.classes_
}

// GetFeatureImportances returns the normalised impurity decrease per
// feature, or nil before Fit.
func (c *DecisionTreeClassifier) GetFeatureImportances() []float64 {
	if c.tree_ == nil {
		return nil
	}
	return c.tree_.FeatureImportances()
}

// GetDepth returns the depth of the fitted tree (a single split has depth 1).
func (c *DecisionTreeClassifier) GetDepth() int {
	if c.tree_ == nil {
		return 0
	}
	return c.tree_.Stats().Depth
}

// GetNLeaves returns the number of leaves of the fitted tree.
func (c *DecisionTreeClassifier) GetNLeaves() int {
	if c.tree_ == nil {
		return 0
	}
	return c.tree_.Stats().Leaves
}

// GetParams returns the hyperparameters.
func (c *DecisionTreeClassifier) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"criterion": c.criterion,
		"max_depth": c.maxDepth,
		"min_size":  c.minSize,
		"workers":   c.workers,
	}
}

// SetParams sets hyperparameters by name. Integer parameters accept int or
// integral float64 values. It takes effect on the next Fit.
func (c *DecisionTreeClassifier) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "criterion":
			name, ok := value.(string)
			if !ok {
				return errors.NewValidationError(key, "must be a string", value)
			}
			if _, err := CriterionByName(name); err != nil {
				return err
			}
			c.criterion = name
		case "max_depth", "min_size", "workers":
			n, ok := toInt(value)
			if !ok {
				return errors.NewValidationError(key, "must be an integer", value)
			}
			switch key {
			case "max_depth":
				c.maxDepth = n
			case "min_size":
				c.minSize = n
			default:
				c.workers = n
			}
		default:
			return errors.NewValidationError(key, "unknown parameter", value)
		}
	}
	return nil
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}
