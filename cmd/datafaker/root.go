package main

import (
	"github.com/spf13/cobra"

	"datafaker/internal/config"
)

// options holds the command-line flags. Flags override the config file and
// environment only when set explicitly.
type options struct {
	configPath         string
	rows               int64
	targetSize         string
	batchSize          int
	seed               string
	startImageID       uint32
	reset              bool
	count              bool
	checkpointInterval int
	workers            int
	validate           bool
	metricsBackend     string
	pushgatewayURL     string
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "datafaker",
		Short: "Generate deterministic synthetic image analytics rows and bulk-load them",
		Long: `datafaker produces rows for the images_analytical table as a pure function of
(seed, image_id) and loads them in batches. Progress is checkpointed after
every acknowledged batch, so an interrupted or failed run resumes where it
stopped and produces the same rows a single run would have.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.configPath, "config", "", "config file (.json, .yaml or .yml)")
	f.Int64VarP(&o.rows, "rows", "r", 0, "target number of rows")
	f.StringVarP(&o.targetSize, "target-size", "s", config.DefaultTargetSize, "target data size, e.g. 100GB; a bare number means GB")
	f.IntVarP(&o.batchSize, "batch-size", "b", config.DefaultBatchSize, "rows per insert batch (recommended minimum 10000)")
	f.StringVar(&o.seed, "seed", "", "random seed for reproducibility (default: random)")
	f.Uint32Var(&o.startImageID, "start-image-id", 0, "first image_id for a fresh run (default: from checkpoint or 1)")
	f.BoolVar(&o.reset, "reset", false, "delete any existing checkpoint and start fresh")
	f.BoolVarP(&o.count, "count", "c", false, "print the current row count of the destination table and exit")
	f.IntVar(&o.checkpointInterval, "checkpoint-interval", 1, "batches between checkpoint saves")
	f.IntVar(&o.workers, "workers", 0, "goroutines generating rows (default from config)")
	f.BoolVar(&o.validate, "validate", false, "validate the configuration and exit")
	f.StringVar(&o.metricsBackend, "metrics-backend", "", "metrics backend: none, prom, datadog (overrides METRICS_BACKEND)")
	f.StringVar(&o.pushgatewayURL, "pushgateway-url", "", "Pushgateway base URL (overrides PUSHGATEWAY_URL)")
	return cmd
}

// applyFlags copies explicitly set flags onto cfg.
func applyFlags(cmd *cobra.Command, o options, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("rows") {
		cfg.Generator.TargetRows = o.rows
	}
	if f.Changed("target-size") {
		cfg.Generator.TargetSize = o.targetSize
		if !f.Changed("rows") {
			cfg.Generator.TargetRows = 0
		}
	}
	if f.Changed("batch-size") {
		cfg.Generator.BatchSize = o.batchSize
	}
	if f.Changed("seed") {
		cfg.Generator.Seed = o.seed
	}
	if f.Changed("start-image-id") {
		cfg.Generator.StartImageID = o.startImageID
	}
	if f.Changed("checkpoint-interval") {
		cfg.Generator.CheckpointInterval = o.checkpointInterval
	}
	if f.Changed("workers") {
		cfg.Generator.Workers = o.workers
	}
}
