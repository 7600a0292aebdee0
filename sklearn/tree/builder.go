package tree

import (
	"context"
	"sync"
	"time"

	"github.com/YuminosukeSato/cartree/pkg/errors"
	"github.com/YuminosukeSato/cartree/pkg/log"
)

// Default stopping criteria.
const (
	DefaultMaxDepth = 10
	DefaultMinSize  = 1
)

// Tree is a built classification tree. It is immutable and safe for
// concurrent use.
type Tree struct {
	Root Node

	// Classes are the distinct training labels in ascending order.
	Classes []float64

	NFeatures int
	MaxDepth  int
	MinSize   int
	Criterion string
}

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	maxDepth  int
	minSize   int
	criterion Criterion
	workers   int
}

// MaxDepth limits the depth of the tree. The root's children are at depth 1,
// so MaxDepth(1) builds a single decision node with two leaves.
func MaxDepth(n int) BuildOption {
	return func(c *buildConfig) {
		c.maxDepth = n
	}
}

// MinSize makes every group of at most n samples a leaf.
func MinSize(n int) BuildOption {
	return func(c *buildConfig) {
		c.minSize = n
	}
}

// SplitCriterion sets the impurity criterion. The default is Gini.
func SplitCriterion(c Criterion) BuildOption {
	return func(cfg *buildConfig) {
		cfg.criterion = c
	}
}

// Workers bounds the goroutines used for the split search and for building
// sibling subtrees. n <= 1 builds on the calling goroutine. The result does
// not depend on n.
func Workers(n int) BuildOption {
	return func(c *buildConfig) {
		c.workers = n
	}
}

func (c *buildConfig) validate() error {
	if c.maxDepth < 1 {
		return errors.NewValidationError("max_depth", "must be at least 1", c.maxDepth)
	}
	if c.minSize < 1 {
		return errors.NewValidationError("min_size", "must be at least 1", c.minSize)
	}
	if c.criterion == nil {
		return errors.NewValidationError("criterion", "must not be nil", nil)
	}
	return nil
}

// Build grows a classification tree from d.
//
// Starting at the root, each node takes the best split of its group. If one
// side of the split is empty the other side becomes a leaf and the empty
// side is left absent. Otherwise, at depth >= MaxDepth both sides become
// leaves; below it each side becomes a leaf when it holds at most MinSize
// samples and is split again otherwise.
//
// Build fails before creating any node when d is empty, when samples differ
// in length or carry no feature, when a value is NaN or infinite, or when
// the stopping criteria are out of range.
func Build(d Dataset, opts ...BuildOption) (*Tree, error) {
	cfg := buildConfig{
		maxDepth:  DefaultMaxDepth,
		minSize:   DefaultMinSize,
		criterion: Gini,
		workers:   1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	b := newBuilder(cfg, d)
	t := &Tree{
		Root:      b.split(d, 1),
		Classes:   b.classes,
		NFeatures: d.NumFeatures(),
		MaxDepth:  cfg.maxDepth,
		MinSize:   cfg.minSize,
		Criterion: cfg.criterion.Name(),
	}

	logger := log.GetLoggerWithName("tree.builder")
	if logger.Enabled(context.Background(), log.LevelDebug) {
		stats := t.Stats()
		logger.Debug("Tree built",
			log.SamplesKey, len(d),
			log.FeaturesKey, t.NFeatures,
			log.ClassesKey, len(t.Classes),
			log.TreeDepthKey, stats.Depth,
			log.LeavesKey, stats.Leaves,
			log.DecisionNodesKey, stats.DecisionNodes,
			log.AbsentChildrenKey, stats.AbsentChildren,
			log.DurationMsKey, time.Since(start).Milliseconds(),
		)
	}
	return t, nil
}

type builder struct {
	cfg     buildConfig
	classes []float64
	total   int

	// tokens for sibling subtrees built on their own goroutine
	sem chan struct{}
}

func newBuilder(cfg buildConfig, d Dataset) *builder {
	b := &builder{
		cfg:     cfg,
		classes: d.Classes(),
		total:   len(d),
	}
	if cfg.workers > 1 {
		b.sem = make(chan struct{}, cfg.workers-1)
	}
	return b
}

func (b *builder) split(group Dataset, depth int) *DecisionNode {
	s := BestSplit(group, b.cfg.criterion, b.cfg.workers)
	node := &DecisionNode{
		Feature:   s.Feature,
		Threshold: s.Threshold,
		Impurity:  s.Score,
		Samples:   len(group),
	}

	if len(s.Left) == 0 || len(s.Right) == 0 {
		if len(s.Left) > 0 {
			node.Left = b.leaf(s.Left)
		} else {
			node.Right = b.leaf(s.Right)
		}
		return node
	}

	parent := b.cfg.criterion.Impurity([]Dataset{group}, group.Classes())
	if gain := parent - s.Score; gain > 0 {
		node.gain = gain * float64(len(group)) / float64(b.total)
	}

	if depth >= b.cfg.maxDepth {
		node.Left = b.leaf(s.Left)
		node.Right = b.leaf(s.Right)
		return node
	}

	select {
	case b.sem <- struct{}{}:
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-b.sem }()
			node.Left = b.child(s.Left, depth)
		}()
		node.Right = b.child(s.Right, depth)
		wg.Wait()
	default:
		node.Left = b.child(s.Left, depth)
		node.Right = b.child(s.Right, depth)
	}
	return node
}

func (b *builder) child(group Dataset, depth int) Node {
	if len(group) <= b.cfg.minSize {
		return b.leaf(group)
	}
	return b.split(group, depth+1)
}

func (b *builder) leaf(group Dataset) *LeafNode {
	return &LeafNode{
		Label:       MajorityLabel(group),
		Samples:     len(group),
		ClassCounts: classCounts(group, b.classes),
	}
}
