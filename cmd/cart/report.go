package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/YuminosukeSato/cartree/pkg/errors"
	"github.com/YuminosukeSato/cartree/sklearn/tree"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gonum.org/v1/gonum/mat"
)

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	style := table.StyleLight
	style.Format.Footer = text.FormatDefault
	t.SetStyle(style)
	t.SetTitle(title)
	return t
}

// renderNodes lists the nodes of t in pre-order.
func renderNodes(w io.Writer, t *tree.Tree, featureNames []string) error {
	tw := newTable(w, "TREE NODES")
	tw.AppendHeader(table.Row{"#", "Depth", "Kind", "Rule", t.Criterion, "Samples", "Label"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	i := 0
	err := t.Walk(func(n tree.NodeInfo) error {
		indent := strings.Repeat("  ", n.Depth)
		switch n.Kind {
		case tree.KindDecision:
			rule := fmt.Sprintf("%s%s < %.6g", indent, featureNames[n.Feature], n.Threshold)
			tw.AppendRow(table.Row{i, n.Depth, n.Kind, rule, fmt.Sprintf("%.4f", n.Impurity), n.Samples, ""})
		default:
			tw.AppendRow(table.Row{i, n.Depth, n.Kind, indent + "=>", "", n.Samples, n.Label})
		}
		i++
		return nil
	})
	if err != nil {
		return err
	}

	stats := t.Stats()
	tw.AppendFooter(table.Row{"", "", "", fmt.Sprintf("depth %d, %d leaves, %d absent", stats.Depth, stats.Leaves, stats.AbsentChildren)})
	tw.Render()
	return nil
}

// renderPredictions classifies every row of X and compares the result with
// y. Rows without a prediction are NaN in the returned vector.
func renderPredictions(w io.Writer, t *tree.Tree, X, y mat.Matrix, featureNames []string) (pred *mat.VecDense, undefined int, err error) {
	tw := newTable(w, "PREDICTIONS")
	header := table.Row{"#"}
	for _, name := range featureNames {
		header = append(header, name)
	}
	tw.AppendHeader(append(header, "Label", "Predicted", ""))

	rows, cols := X.Dims()
	pred = mat.NewVecDense(rows, nil)
	x := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(x, i, X)
		row := table.Row{i}
		for _, v := range x {
			row = append(row, fmt.Sprintf("%.4g", v))
		}
		label := y.At(i, 0)

		p, err := t.Classify(x)
		switch {
		case errors.Is(err, tree.ErrNoPrediction):
			undefined++
			pred.SetVec(i, math.NaN())
			row = append(row, label, "-", "no prediction")
		case err != nil:
			return nil, 0, err
		case p == label:
			pred.SetVec(i, p)
			row = append(row, label, p, "ok")
		default:
			pred.SetVec(i, p)
			row = append(row, label, p, "wrong")
		}
		tw.AppendRow(row)
	}
	tw.Render()
	return pred, undefined, nil
}

// renderConfusion prints a confusion matrix with true labels as rows.
func renderConfusion(w io.Writer, cm mat.Matrix, labels []float64) {
	tw := newTable(w, "CONFUSION MATRIX")
	tw.SetCaption("rows: true, columns: predicted")
	header := table.Row{"true \\ pred"}
	for _, l := range labels {
		header = append(header, l)
	}
	tw.AppendHeader(header)
	for i, l := range labels {
		row := table.Row{l}
		for j := range labels {
			row = append(row, int(cm.At(i, j)))
		}
		tw.AppendRow(row)
	}
	tw.Render()
}
