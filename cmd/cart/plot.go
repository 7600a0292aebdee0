package main

import (
	"math"
	"strconv"

	"github.com/YuminosukeSato/cartree/pkg/errors"
	"github.com/YuminosukeSato/cartree/sklearn/tree"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// plotSplits draws a scatter plot of a two-feature dataset, one colour per
// class, with a line for every decision threshold of t. The image format
// follows the extension of path (.png, .svg, .pdf, ...).
func plotSplits(path string, t *tree.Tree, X, y mat.Matrix, featureNames []string) error {
	rows, cols := X.Dims()
	if cols != 2 {
		return errors.NewDimensionError("plotSplits", 2, cols, 1)
	}

	p := plot.New()
	p.Title.Text = "Decision thresholds"
	p.X.Label.Text = featureNames[0]
	p.Y.Label.Text = featureNames[1]

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	byClass := make(map[float64]plotter.XYs)
	for i := 0; i < rows; i++ {
		px, py := X.At(i, 0), X.At(i, 1)
		minX, maxX = math.Min(minX, px), math.Max(maxX, px)
		minY, maxY = math.Min(minY, py), math.Max(maxY, py)
		label := y.At(i, 0)
		byClass[label] = append(byClass[label], plotter.XY{X: px, Y: py})
	}

	for i, class := range t.Classes {
		pts, ok := byClass[class]
		if !ok {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return errors.Wrap(err, "scatter")
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Shape = plotutil.Shape(i)
		p.Add(s)
		p.Legend.Add("class "+strconv.FormatFloat(class, 'g', -1, 64), s)
	}

	err := t.Walk(func(n tree.NodeInfo) error {
		if n.Kind != tree.KindDecision {
			return nil
		}
		var line plotter.XYs
		if n.Feature == 0 {
			line = plotter.XYs{{X: n.Threshold, Y: minY}, {X: n.Threshold, Y: maxY}}
		} else {
			line = plotter.XYs{{X: minX, Y: n.Threshold}, {X: maxX, Y: n.Threshold}}
		}
		l, err := plotter.NewLine(line)
		if err != nil {
			return errors.Wrap(err, "threshold line")
		}
		l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		l.LineStyle.Width = vg.Points(1.5 / float64(n.Depth+1))
		p.Add(l)
		return nil
	})
	if err != nil {
		return err
	}

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "saving plot to %s", path)
	}
	return nil
}
