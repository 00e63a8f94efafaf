package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"datafaker/internal/checkpoint"
	"datafaker/internal/config"
	"datafaker/internal/ddl"
	"datafaker/internal/logger"
	"datafaker/internal/pipeline"
	"datafaker/internal/row"
	"datafaker/internal/storage"
)

func run(cmd *cobra.Command, o options) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, o, &cfg)

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return err
	}
	defer log.Sync()
	log = log.With("job", cfg.Job)

	if o.count {
		return printCount(ctx, cfg, out)
	}

	issues := config.Validate(cfg)
	for _, iss := range issues {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
	}
	if err := config.Check(issues); err != nil {
		return err
	}
	if o.validate {
		fmt.Fprintln(out, "configuration is valid")
		return nil
	}

	flush := setupMetrics(cfg, o, log)
	defer flush()

	store, closeStore, err := openCheckpoint(ctx, cfg.Checkpoint)
	if err != nil {
		return err
	}
	defer closeStore()

	if o.reset {
		if err := store.Delete(ctx); err != nil {
			return err
		}
		log.Info("checkpoint reset", "location", store.Location())
	}

	rec, err := resolveRecord(ctx, cmd, cfg, store, log)
	if err != nil {
		return err
	}
	if rec.Done() {
		fmt.Fprintf(out, "Target already reached: %s of %s rows inserted.\n",
			humanize.Comma(rec.RowsInserted), humanize.Comma(rec.TargetRows))
		return nil
	}

	repo, err := storage.New(ctx, storageConfig(cfg, rec.WaitForAsyncInsert))
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.Storage.Kind, err)
	}
	defer repo.Close()

	if cfg.Storage.AutoCreateTable {
		if err := storage.EnsureTable(ctx, cfg.Storage.Kind, repo, tableSpec(cfg)); err != nil {
			return fmt.Errorf("ensure table: %w", err)
		}
	}

	d := pipeline.New(repo, store, log, pipeline.Options{
		Job:                cfg.Job,
		Workers:            cfg.Generator.Workers,
		CheckpointInterval: cfg.Generator.CheckpointInterval,
		Assembler:          row.Assembler{ContentBaseURL: cfg.Generator.ContentBaseURL},
	})
	final, err := d.Run(ctx, rec)
	switch {
	case errors.Is(err, pipeline.ErrInterrupted):
		fmt.Fprintf(out, "Interrupted. Progress saved to %s; rerun to resume from image_id %d.\n",
			store.Location(), final.NextImageID())
		printSummary(out, final)
		return nil
	case err != nil:
		return err
	}
	printSummary(out, final)
	return nil
}

// resolveRecord loads the checkpoint or creates a fresh record. On resume,
// explicitly set --rows/--target-size and --batch-size replace the stored
// values and the stored seed always wins. A start image id from the flag
// applies in both cases; one from config only seeds a fresh run.
func resolveRecord(ctx context.Context, cmd *cobra.Command, cfg config.Config, store checkpoint.Store, log *logger.Logger) (checkpoint.Record, error) {
	target, err := cfg.Generator.ResolveTargetRows()
	if err != nil {
		return checkpoint.Record{}, err
	}
	f := cmd.Flags()

	rec, resumed := checkpoint.LoadOrWarn(ctx, store, log)
	if resumed {
		if f.Changed("rows") || f.Changed("target-size") {
			rec.TargetRows = target
		}
		if f.Changed("batch-size") {
			rec.BatchSize = cfg.Generator.BatchSize
		}
		if cfg.Generator.Seed != "" && cfg.Generator.Seed != rec.Seed {
			log.Warn("ignoring seed; resuming with the checkpoint's seed", "seed", cfg.Generator.Seed, "checkpoint_seed", rec.Seed)
		}
		log.Info("resuming from checkpoint",
			"location", store.Location(),
			"seed", rec.Seed,
			"last_image_id", rec.LastImageID,
			"rows_inserted", rec.RowsInserted,
			"batches_completed", rec.BatchesCompleted)
	} else {
		seed := cfg.Generator.Seed
		if seed == "" {
			seed = strconv.FormatUint(rand.Uint64(), 36)
		}
		rec = checkpoint.NewInitial(seed, target, cfg.Generator.BatchSize, cfg.Storage.WaitForAsyncInsert, time.Now())
		log.Info("starting fresh run", "seed", seed)
	}

	if start := cfg.Generator.StartImageID; start > 0 && (!resumed || f.Changed("start-image-id")) {
		rec.LastImageID = start - 1
		rec.RowsInserted = int64(start - 1)
		log.Info("starting from image_id", "image_id", start)
	}

	log.Info("generation plan",
		"target_rows", rec.TargetRows,
		"remaining_rows", rec.Remaining(),
		"batch_size", rec.BatchSize,
		"first_image_id", rec.NextImageID())
	return rec, nil
}

func openCheckpoint(ctx context.Context, c config.Checkpoint) (checkpoint.Store, func(), error) {
	switch c.Kind {
	case "redis":
		s, err := checkpoint.NewRedisStore(ctx, c.RedisAddr, c.RedisKey)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	default:
		return checkpoint.NewFileStore(c.Path), func() {}, nil
	}
}

func storageConfig(cfg config.Config, waitAsync bool) storage.Config {
	return storage.Config{
		Kind:               cfg.Storage.Kind,
		DSN:                cfg.Storage.DSN,
		Table:              cfg.Storage.Table,
		Columns:            row.Columns(),
		Fields:             row.Schema(),
		AsyncInsert:        cfg.Storage.AsyncInsert,
		WaitForAsyncInsert: waitAsync,
	}
}

func tableSpec(cfg config.Config) ddl.TableSpec {
	spec := row.TableSpec(cfg.Storage.Table)
	spec.Engine = cfg.Storage.Engine
	spec.OrderBy = cfg.Storage.OrderBy
	spec.Settings = cfg.Storage.Settings
	return spec
}

func printCount(ctx context.Context, cfg config.Config, out io.Writer) error {
	repo, err := storage.New(ctx, storageConfig(cfg, cfg.Storage.WaitForAsyncInsert))
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.Storage.Kind, err)
	}
	defer repo.Close()
	n, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count %s: %w", cfg.Storage.Table, err)
	}
	fmt.Fprintf(out, "%s rows in %s\n", humanize.Comma(n), cfg.Storage.Table)
	return nil
}

func printSummary(out io.Writer, rec checkpoint.Record) {
	size := uint64(rec.RowsInserted) * config.BytesPerRowEstimate
	fmt.Fprintln(out, "Summary")
	fmt.Fprintf(out, "  rows inserted:  %s\n", humanize.Comma(rec.RowsInserted))
	fmt.Fprintf(out, "  batches:        %s\n", humanize.Comma(rec.BatchesCompleted))
	fmt.Fprintf(out, "  data size:      ~%s\n", humanize.Bytes(size))
	if rec.TotalTimeSeconds != nil {
		elapsed := time.Duration(*rec.TotalTimeSeconds * float64(time.Second))
		fmt.Fprintf(out, "  elapsed:        %s\n", elapsed.Truncate(time.Millisecond))
	}
	if rec.AverageRateRowsPerSec != nil {
		rate := *rec.AverageRateRowsPerSec
		fmt.Fprintf(out, "  average rate:   %s rows/sec\n", humanize.Comma(int64(rate)))
		fmt.Fprintf(out, "  throughput:     %s/sec\n", humanize.Bytes(uint64(rate*config.BytesPerRowEstimate)))
	}
}
