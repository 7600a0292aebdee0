package main

import (
	"strings"

	"github.com/YuminosukeSato/cartree/pkg/errors"
	"github.com/YuminosukeSato/cartree/pkg/log"
	"github.com/YuminosukeSato/cartree/sklearn/tree"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the settings shared by all commands. Values come from, in
// decreasing priority: flags, CART_* environment variables, the YAML file
// named by --config, and defaults.
type Config struct {
	MaxDepth   int
	MinSize    int
	Criterion  string
	Workers    int
	LogLevel   string
	LogConsole bool
}

const (
	keyConfig     = "config"
	keyMaxDepth   = "max-depth"
	keyMinSize    = "min-size"
	keyCriterion  = "criterion"
	keyWorkers    = "workers"
	keyLogLevel   = "log-level"
	keyLogConsole = "log-console"
)

func addConfigFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String(keyConfig, "", "path to a YAML configuration file")
	flags.Int(keyMaxDepth, tree.DefaultMaxDepth, "maximum depth of the tree (root children are at depth 1)")
	flags.Int(keyMinSize, tree.DefaultMinSize, "groups of at most this many samples become leaves")
	flags.String(keyCriterion, "gini", `split criterion, "gini" or "entropy"`)
	flags.Int(keyWorkers, 1, "goroutines used while growing the tree")
	flags.String(keyLogLevel, "warn", "log level: debug, info, warn or error")
	flags.Bool(keyLogConsole, true, "write human readable logs instead of JSON lines")
}

func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("cart")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, errors.Wrap(err, "binding flags")
	}

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}

	cfg := &Config{
		MaxDepth:   v.GetInt(keyMaxDepth),
		MinSize:    v.GetInt(keyMinSize),
		Criterion:  v.GetString(keyCriterion),
		Workers:    v.GetInt(keyWorkers),
		LogLevel:   v.GetString(keyLogLevel),
		LogConsole: v.GetBool(keyLogConsole),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings before any data is read.
func (c *Config) Validate() error {
	if c.MaxDepth < 1 {
		return errors.NewValidationError(keyMaxDepth, "must be at least 1", c.MaxDepth)
	}
	if c.MinSize < 1 {
		return errors.NewValidationError(keyMinSize, "must be at least 1", c.MinSize)
	}
	if _, err := tree.CriterionByName(c.Criterion); err != nil {
		return err
	}
	if _, err := log.ToLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// classifierOptions maps the settings to estimator options.
func (c *Config) classifierOptions() []tree.Option {
	return []tree.Option{
		tree.WithMaxDepth(c.MaxDepth),
		tree.WithMinSize(c.MinSize),
		tree.WithCriterion(c.Criterion),
		tree.WithWorkers(c.Workers),
	}
}

func setupLogging(cmd *cobra.Command, cfg *Config) error {
	return log.SetupLoggerTo(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogConsole)
}
