// Command ddsolve computes double-dummy tables and best plays from the
// command line, or serves them over HTTP.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ddsbridge/dds-go/pkg/dds"
	"github.com/ddsbridge/dds-go/pkg/dds/logging"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "ddsolve",
	Short:         "Double-dummy bridge solver",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(tableCmd, solveCmd, serveCmd, versionCmd)
}

func main() {
	// A missing .env is normal.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func loadConfig() (dds.Config, error) {
	cfg := dds.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = dds.LoadConfig(configPath); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(cfg dds.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	level := zapcore.InfoLevel
	if cfg.LogLevel != "" {
		parsed, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("log_level: %w", err)
		}
		level = parsed
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}

// openSolver loads configuration and opens the engine. The returned func
// closes the solver and flushes the logger.
func openSolver() (*dds.Solver, *zap.Logger, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	zl, err := newLogger(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	s, err := dds.Open(cfg, dds.WithLogger(logging.NewZap(zl)))
	if err != nil {
		_ = zl.Sync()
		if errors.Is(err, dds.ErrNotBuilt) {
			return nil, nil, nil, fmt.Errorf("engine unavailable (rebuild with -tags dds): %w", err)
		}
		return nil, nil, nil, err
	}
	return s, zl, func() {
		if cerr := s.Close(); cerr != nil {
			zl.Warn("close solver", zap.Error(cerr))
		}
		_ = zl.Sync()
	}, nil
}
