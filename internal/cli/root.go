// Package cli implements the itunes-search command line.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/itunes-search/internal/config"
	logpkg "github.com/kailas-cloud/itunes-search/internal/logger"
	"github.com/kailas-cloud/itunes-search/internal/version"
)

// app carries state shared by all commands of one invocation.
type app struct {
	cfgFile  string
	logLevel string

	env    string
	cfg    config.Config
	logger *zap.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "itunes-search",
		Short: "Build and send iTunes Search API queries",
		Long: `itunes-search builds iTunes Search API requests from a term and a media
category, checks entity and attribute against the category's vocabulary,
and either prints the request URL or sends it and prints the raw response.`,
		Version:           version.Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.initialize,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetVersionTemplate(version.Info() + "\n")

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./config/$ENV.yaml when present)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newURLCommand(a),
		newSendCommand(a),
		newVocabCommand(),
		newVersionCommand(),
	)
	return root
}

// initialize loads configuration and the logger.
func (a *app) initialize(cmd *cobra.Command, _ []string) error {
	a.env = config.GetEnv()

	cfg, err := config.Load(a.cfgFile, a.env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	level := cfg.Logging.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	logger, err := logpkg.NewLogger(a.env, level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.logger = logger

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logpkg.ContextWithLogger(ctx, logger))

	logger.Debug("configuration loaded",
		zap.String("env", a.env),
		zap.String("base_url", cfg.Search.BaseURL),
		zap.String("lang", cfg.Search.Lang),
		zap.String("country", cfg.Search.Country),
		zap.Int("limit", cfg.Search.Limit),
	)
	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			return err
		},
	}
}
