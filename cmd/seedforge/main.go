package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/seedforge/seedforge/pkg/config"
	"github.com/seedforge/seedforge/pkg/generate"
	"github.com/seedforge/seedforge/pkg/namegen"
	"github.com/seedforge/seedforge/pkg/store"
	"github.com/seedforge/seedforge/pkg/textgen"
	"github.com/seedforge/seedforge/pkg/validate"
)

var (
	firstNamesPath string
	lastNamesPath  string
)

func main() {
	root := &cobra.Command{
		Use:   "seedforge",
		Short: "Generates realistic demo data for a project-management tool",
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Reset the store and generate a full demo dataset",
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVar(&firstNamesPath, "first-names", "", "CSV file overriding the bundled first-name corpus")
	generateCmd.Flags().StringVar(&lastNamesPath, "last-names", "", "CSV file overriding the bundled last-name corpus")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Run the consistency sweep against an existing store",
		RunE:  runValidate,
	}

	root.AddCommand(generateCmd, validateCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := newLogger(&cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("starting generation run",
		zap.String("driver", cfg.Database.Driver),
		zap.Int64("seed", cfg.Generation.Seed))

	db, err := store.NewStore(&cfg.Database)
	if err != nil {
		logger.Error("failed to open store", zap.Error(err))
		return err
	}
	defer db.Close()

	if err := db.Reset(); err != nil {
		logger.Error("failed to reset schema", zap.Error(err))
		return err
	}

	names, err := loadNames()
	if err != nil {
		logger.Error("failed to load name corpus", zap.Error(err))
		return err
	}

	r := rand.New(rand.NewSource(cfg.Generation.Seed))

	var primary textgen.Provider
	if cfg.LLM.APIKey != "" {
		primary = textgen.NewGroqProvider(&cfg.LLM)
		logger.Info("text provider configured", zap.String("model", cfg.LLM.Model))
	} else {
		logger.Info("no text provider API key, using static fallback")
	}
	text := textgen.NewGenerator(primary, textgen.NewStaticProvider(r), cfg.LLM.CallDelay, logger)

	pipeline := generate.NewPipeline(db, cfg, logger, r, names, text)
	if err := pipeline.Run(cmd.Context()); err != nil {
		logger.Error("generation failed", zap.Error(err))
		return err
	}

	return nil
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := newLogger(&cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	db, err := store.NewStore(&cfg.Database)
	if err != nil {
		logger.Error("failed to open store", zap.Error(err))
		return err
	}
	defer db.Close()

	findings, err := validate.New(db.DB(), logger).Run(cmd.Context())
	if err != nil {
		logger.Error("validation sweep failed", zap.Error(err))
		return err
	}

	if total := validate.Violations(findings); total > 0 {
		logger.Warn("validation finished with violations", zap.Int64("total", total))
	} else {
		logger.Info("validation passed, no violations found")
	}
	return nil
}

func loadNames() (*namegen.Provider, error) {
	if firstNamesPath == "" && lastNamesPath == "" {
		return namegen.New(), nil
	}
	if firstNamesPath == "" || lastNamesPath == "" {
		return nil, fmt.Errorf("--first-names and --last-names must be set together")
	}
	return namegen.NewFromCSV(firstNamesPath, lastNamesPath)
}

func newLogger(cfg *config.LoggingConfig) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
