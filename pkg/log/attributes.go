// Standard attribute keys for structured logging. Keys follow a
// hierarchical naming convention ("model.name", "data.samples") so that log
// records can be filtered consistently.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the type of model, e.g. "DecisionTreeClassifier".
	ModelNameKey = "model.name"

	// OperationKey is the operation being performed: "fit", "predict", "score".
	OperationKey = "ml.operation"

	// ComponentKey identifies the package or subsystem emitting the record.
	ComponentKey = "ml.component"

	// PhaseKey indicates the lifecycle phase: "training", "inference".
	PhaseKey = "ml.phase"
)

// Data shape.
const (
	SamplesKey  = "data.samples"
	FeaturesKey = "data.features"
	ClassesKey  = "data.classes"
)

// Tree structure.
const (
	// TreeDepthKey is the depth of the deepest node, root at depth 0.
	TreeDepthKey = "tree.depth"

	// LeavesKey is the number of leaf nodes.
	LeavesKey = "tree.leaves"

	// DecisionNodesKey is the number of decision nodes.
	DecisionNodesKey = "tree.decision_nodes"

	// AbsentChildrenKey counts child slots left empty by degenerate splits.
	AbsentChildrenKey = "tree.absent_children"

	// MaxDepthKey and MinSizeKey record the stopping criteria used.
	MaxDepthKey = "hyperparams.max_depth"
	MinSizeKey  = "hyperparams.min_size"

	// CriterionKey is the impurity criterion name.
	CriterionKey = "hyperparams.criterion"

	// WorkersKey is the number of goroutines allowed during the build.
	WorkersKey = "hyperparams.workers"
)

// Performance and evaluation.
const (
	DurationMsKey = "perf.duration_ms"
	AccuracyKey   = "metrics.accuracy"

	// UndefinedPredsKey counts samples that reached an absent child.
	UndefinedPredsKey = "preds.undefined"
	PredsKey          = "preds.count"
)

// Error context.
const (
	ErrorTypeKey  = "error.type"
	SuggestionKey = "error.suggestion"
)

// Standard attribute values.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"

	PhaseTraining  = "training"
	PhaseInference = "inference"
)
