package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"stakedrop/internal/aggregate"
	"stakedrop/internal/config"
	"stakedrop/internal/export"
	"stakedrop/internal/report"
	"stakedrop/internal/storage"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "stakedrop",
		Short:        "Generate DAO drops from Cosmos chain JSON exports",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runDrop,
	}

	root.Flags().String("config", "", "config file path (defaults to ./config.{yaml,json,toml} when present)")
	root.Flags().StringP("file-path", "f", "", "path to the chain export JSON file")
	root.Flags().StringP("min-staked-amount", "m", config.DefaultMinStakedAmount, "minimum staked amount to be eligible (exclusive)")
	root.Flags().StringP("whale-cap", "w", config.DefaultWhaleCap, "maximum amount a single account is eligible for")
	root.Flags().StringP("out", "o", config.DefaultOut, "output CSV path")
	root.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	return root
}

func runDrop(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.FilePath == "" {
		return fmt.Errorf("file path is required")
	}
	if cfg.Out == "" {
		return fmt.Errorf("output path is required")
	}

	logger.Info("drop start",
		zap.String("file_path", cfg.FilePath),
		zap.String("min_staked_amount", cfg.MinStakedAmount.Dec()),
		zap.String("whale_cap", cfg.WhaleCap.Dec()),
		zap.String("out", cfg.Out),
	)

	data, err := export.ReadFile(cfg.FilePath)
	if err != nil {
		return fmt.Errorf("load export: %w", err)
	}

	doc, err := export.Parse(data)
	if err != nil {
		return err
	}

	agg := aggregate.NewAggregator(aggregate.Config{WhaleCap: cfg.WhaleCap}, logger)
	ledger, err := agg.Run(doc)
	if err != nil {
		return fmt.Errorf("aggregate delegations: %w", err)
	}

	reporter := report.NewReporter(report.Config{MinStakedAmount: cfg.MinStakedAmount}, storage.NewCSVStorage(cfg.Out), logger)
	totals, err := reporter.Run(ledger.Accounts())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Number of accounts: %d\n", totals.Count)
	fmt.Fprintf(out, "Total drop amount: %s\n", totals.Amount.Dec())

	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
