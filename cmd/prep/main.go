// Command prep exposes the goprep preprocessing toolkit on the command line.
//
// Usage:
//
//	prep clean remove-missing --values '1,2,,None,4'
//	prep numeric normalize --values '1,2,3' --new-min 0 --new-max 1
//	prep numeric describe --file data.csv --column price
//	prep text tokenize --input-text 'Hello World!'
//	prep struct shuffle --values '1,2,3' --seed 42
package main

import (
	"fmt"
	"os"

	"github.com/sartorproj/goprep/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by every command of one invocation.
type app struct {
	// Global flags
	configPath string
	verbose    bool
	output     string

	cfg    *config.Config
	logger *zap.Logger
}

func newApp() *app {
	return &app{}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "prep",
		Short: "Data preprocessing utilities",
		Long: `prep cleans, scales and reshapes small data sets passed on the command line.

Values are given as a comma-separated list. For missing-value commands the
literal None and empty entries are treated as missing.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "Output format: repr or json (default from config)")

	root.AddCommand(
		a.cleanCmd(),
		a.numericCmd(),
		a.textCmd(),
		a.structCmd(),
	)
	return root
}

// setup loads the configuration and initializes the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.output != "" {
		cfg.Output = a.output
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	if a.logger != nil {
		return nil
	}

	zapCfg := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	a.logger, err = zapCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.String("output", cfg.Output),
	)
	return nil
}

func main() {
	if err := newApp().rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
