package main

import (
	"log/slog"
	"os"

	"github.com/paddison/lesolver/internal/cli"
	"github.com/paddison/lesolver/internal/config"
	"github.com/paddison/lesolver/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lesolver",
	Short: "lesolver solves linear systems uploaded to object storage",
	Long: `lesolver reacts to object storage notifications: it fetches the uploaded text file,
solves the linear system it describes, and stores the result in a second bucket.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		tui.NewRenderer(os.Stderr).Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (text, json)")
	rootCmd.PersistentFlags().String("backend", "", "Object store backend (s3, file, redis, memory)")
}

// loadConfig reads the configuration and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.Log.Format = v
	}
	if v, _ := cmd.Flags().GetString("backend"); v != "" {
		cfg.Backend = config.Backend(v)
	}
	return cfg, nil
}

// setup loads the configuration and builds the logger. Logs go to stderr.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger, err := cli.NewLogger(cfg, os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
