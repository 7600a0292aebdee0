package main

import (
	"fmt"
	"io"
	"os"

	"github.com/YuminosukeSato/cartree/metrics"
	"github.com/YuminosukeSato/cartree/pkg/errors"
	"github.com/YuminosukeSato/cartree/pkg/log"
	"github.com/YuminosukeSato/cartree/sklearn/tree"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

type outputFlags struct {
	dotOutput  string
	plotOutput string
	quiet      bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.dotOutput, "dot", "", "write the tree as a Graphviz DOT file to this path")
	cmd.Flags().StringVar(&o.plotOutput, "plot", "", "plot samples and thresholds to this image path (two-feature data only)")
	cmd.Flags().BoolVarP(&o.quiet, "quiet", "q", false, "print only the tree, without the node and prediction tables")
}

type fitCmdConfig struct {
	*rootCmdConfig
	outputFlags
	dataInput string
	header    bool
}

func fitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &fitCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Grow a tree from a CSV file",
		Long: `Grow a classification tree from a CSV file whose last column is the class
label, print it, and classify every training sample with it`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := cmd.InOrStdin()
			if config.dataInput != "" && config.dataInput != "-" {
				f, err := os.Open(config.dataInput)
				if err != nil {
					return errors.Wrapf(err, "opening %s", config.dataInput)
				}
				defer f.Close()
				r = f
			}

			X, y, names, err := readCSV(r, config.header)
			if err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), config.Config, &config.outputFlags, X, y, names)
		},
	}
	cmd.Flags().StringVarP(&config.dataInput, "input", "i", "", "path to an input CSV file (defaults to STDIN)")
	cmd.Flags().BoolVar(&config.header, "header", false, "the first CSV row holds column names")
	config.outputFlags.register(cmd)
	return cmd
}

// report fits a classifier on X and y and writes the tree, its nodes, the
// training-set predictions and the confusion matrix to w.
func report(w io.Writer, cfg *Config, out *outputFlags, X, y *mat.Dense, featureNames []string) error {
	logger := log.GetLoggerWithName("cli")

	clf := tree.NewDecisionTreeClassifier(cfg.classifierOptions()...)
	if err := clf.Fit(X, y); err != nil {
		return err
	}
	t := clf.Tree()

	fmt.Fprint(w, t.String())
	if out.quiet {
		return out.export(t, X, y, featureNames)
	}

	fmt.Fprintln(w)
	if err := renderNodes(w, t, featureNames); err != nil {
		return err
	}

	fmt.Fprintln(w)
	pred, undefined, err := renderPredictions(w, t, X, y, featureNames)
	if err != nil {
		return err
	}
	if undefined > 0 {
		logger.Warn("Samples without prediction", log.UndefinedPredsKey, undefined)
	}

	accuracy, err := metrics.AccuracyMatrix(y, pred)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "accuracy = %.4f (%d without prediction)\n", accuracy, undefined)

	cm, labels, err := metrics.ConfusionMatrix(mat.VecDenseCopyOf(y.ColView(0)), pred)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	renderConfusion(w, cm, labels)

	importances := clf.GetFeatureImportances()
	fmt.Fprintln(w)
	for i, name := range featureNames {
		fmt.Fprintf(w, "importance(%s) = %.4f\n", name, importances[i])
	}

	rows, _ := X.Dims()
	logger.Info("Report written",
		log.SamplesKey, rows,
		log.AccuracyKey, accuracy,
		log.UndefinedPredsKey, undefined,
	)
	return out.export(t, X, y, featureNames)
}

func (o *outputFlags) export(t *tree.Tree, X, y mat.Matrix, featureNames []string) error {
	if o.dotOutput != "" {
		f, err := os.Create(o.dotOutput)
		if err != nil {
			return errors.Wrapf(err, "creating %s", o.dotOutput)
		}
		if err := tree.ExportGraphviz(t, f, featureNames); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return errors.Wrapf(err, "closing %s", o.dotOutput)
		}
	}
	if o.plotOutput != "" {
		// gonum/plot panics on some degenerate axis ranges
		err := errors.SafeExecute("cart.plot", func() error {
			return plotSplits(o.plotOutput, t, X, y, featureNames)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
