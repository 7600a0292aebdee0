// Command cart grows CART classification trees and reports on them.
//
//	cart demo                      # ten-sample walkthrough
//	cart fit -i data.csv --header  # grow a tree from a CSV file
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmdConfig carries the settings resolved before a subcommand runs.
type rootCmdConfig struct {
	*Config
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:   "cart",
		Short: "cart grows binary classification trees",
		Long: `A tool to grow CART classification trees from numeric data, print them,
and check how well they classify their training samples`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			config.Config = cfg
			return setupLogging(cmd, cfg)
		},
	}
	addConfigFlags(rootCmd)
	rootCmd.AddCommand(versionCmd(), demoCmd(config), fitCmd(config))
	return rootCmd
}
