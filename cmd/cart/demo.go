package main

import (
	"github.com/spf13/cobra"
)

type demoCmdConfig struct {
	*rootCmdConfig
	outputFlags
}

func demoCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &demoCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Grow a tree on a built-in ten-sample dataset",
		Long: `Grow a tree on a built-in dataset of ten two-feature samples in two
well separated classes, print it and classify every sample with it.
Try it with --max-depth 1 --min-size 1 for a single split.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			X, y := tenSamples()
			return report(cmd.OutOrStdout(), config.Config, &config.outputFlags, X, y, []string{"X0", "X1"})
		},
	}
	config.outputFlags.register(cmd)
	return cmd
}
