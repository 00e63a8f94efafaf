// Package pipeline drives generation: it produces rows for consecutive image
// ids, hands each full batch to the store in one call and advances the
// checkpoint only after the store acknowledges the batch.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"datafaker/internal/checkpoint"
	"datafaker/internal/logger"
	"datafaker/internal/metrics"
	"datafaker/internal/row"
)

// MinBatchSize is the smallest batch the store handles efficiently. Smaller
// batches work but are flagged.
const MinBatchSize = 10000

// ErrInterrupted is returned when ctx is cancelled. The returned record is
// the last committed one and has been saved.
var ErrInterrupted = errors.New("pipeline: interrupted")

// Loader is the bulk-insert collaborator. CopyFrom is all-or-nothing.
type Loader interface {
	CopyFrom(ctx context.Context, columns []string, rows [][]any) (int64, error)
}

// Options tunes a Driver. Zero values pick defaults.
type Options struct {
	// Job labels metrics.
	Job string
	// Workers generating rows in parallel; defaults to 1.
	Workers int
	// CheckpointInterval saves every N batches; the last batch is always
	// saved. Defaults to 1.
	CheckpointInterval int
	// MinBatchSize overrides the package constant, mainly for tests.
	MinBatchSize int
	// Assembler builds rows; its Now also stamps updated_at.
	Assembler row.Assembler
	// Now is the driver's clock for elapsed time and checkpoints.
	Now func() time.Time
}

// Driver runs one generation job. A Driver is single-use per Run call but
// may be reused sequentially.
type Driver struct {
	loader Loader
	store  checkpoint.Store
	log    *logger.Logger
	opts   Options
	state  stateBox
}

// New returns a Driver. log may be nil.
func New(loader Loader, store checkpoint.Store, log *logger.Logger, opts Options) *Driver {
	if log == nil {
		log = logger.Nop()
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.CheckpointInterval < 1 {
		opts.CheckpointInterval = 1
	}
	if opts.MinBatchSize <= 0 {
		opts.MinBatchSize = MinBatchSize
	}
	if opts.Job == "" {
		opts.Job = "datafaker"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Driver{loader: loader, store: store, log: log, opts: opts}
}

// State returns the current state. Safe to call from other goroutines.
func (d *Driver) State() State { return d.state.load() }

func (d *Driver) setState(s State) {
	prev := d.state.swap(s)
	if prev == s {
		return
	}
	d.log.Debug("pipeline state", "from", prev.String(), "to", s.String())
	if s.Terminal() {
		d.log.Info("pipeline finished", "state", s.String())
	}
}

// Run generates and loads rows from rec.NextImageID() until rec.TargetRows
// rows are inserted. It returns the last committed record in every case.
func (d *Driver) Run(ctx context.Context, rec checkpoint.Record) (checkpoint.Record, error) {
	d.setState(Initializing)

	if rec.BatchSize <= 0 {
		d.setState(Failed)
		return rec, fmt.Errorf("pipeline: batch size must be > 0, got %d", rec.BatchSize)
	}
	if rec.Done() {
		d.log.Info("target already reached", "rows_inserted", rec.RowsInserted, "target_rows", rec.TargetRows)
		d.setState(Complete)
		return rec, nil
	}
	if last := uint64(rec.LastImageID) + uint64(rec.Remaining()); last > math.MaxUint32 {
		d.setState(Failed)
		return rec, fmt.Errorf("pipeline: image ids would exceed %d (last id %d)", uint32(math.MaxUint32), last)
	}
	if rec.BatchSize < d.opts.MinBatchSize && rec.TargetRows >= int64(d.opts.MinBatchSize) {
		d.log.Warn("batch size below recommended minimum; inserts will be less efficient",
			"batch_size", rec.BatchSize, "min_batch_size", d.opts.MinBatchSize)
	}

	var (
		columns   = row.Columns()
		committed = rec
		start     = d.opts.Now()
		prior     time.Duration
		sinceSave int
		lastFlush = start
	)
	if rec.TotalTimeSeconds != nil {
		prior = time.Duration(*rec.TotalTimeSeconds * float64(time.Second))
	}

	d.log.Info("generation starting",
		"seed", rec.Seed,
		"run_id", rec.RunID,
		"first_image_id", rec.NextImageID(),
		"remaining", rec.Remaining(),
		"batch_size", rec.BatchSize,
		"workers", d.opts.Workers)

	for committed.Remaining() > 0 {
		if ctx.Err() != nil {
			return d.interrupt(committed, sinceSave)
		}

		d.setState(Generating)
		n := int(min(int64(rec.BatchSize), committed.Remaining()))
		first := committed.NextImageID()

		genStart := time.Now()
		rows, err := generate(ctx, d.opts.Assembler, committed.Seed, first, n, d.opts.Workers)
		metrics.RecordStep(d.opts.Job, metrics.StepGenerate, err, time.Since(genStart))
		if err != nil {
			if ctx.Err() != nil {
				return d.interrupt(committed, sinceSave)
			}
			d.setState(Failed)
			return committed, fmt.Errorf("pipeline: generate ids %d-%d: %w", first, first+uint32(n)-1, err)
		}
		metrics.RecordRow(d.opts.Job, "generated", int64(n))

		d.setState(Flushing)
		// The batch already handed to the store completes even if ctx is
		// cancelled meanwhile; its checkpoint follows it.
		flushCtx := context.WithoutCancel(ctx)
		insStart := time.Now()
		got, err := d.loader.CopyFrom(flushCtx, columns, rows)
		insDur := time.Since(insStart)
		metrics.RecordStep(d.opts.Job, metrics.StepInsert, err, insDur)
		if err != nil {
			metrics.RecordRow(d.opts.Job, "dropped", int64(n))
			return d.fail(committed, first, n, err)
		}
		if got != int64(n) {
			d.log.Warn("store reported a different row count", "sent", n, "reported", got)
		}

		now := d.opts.Now()
		lastID := first + uint32(n) - 1
		committed = checkpoint.Advance(committed, lastID,
			committed.RowsInserted+int64(n), committed.BatchesCompleted+1,
			prior+now.Sub(start), now)
		sinceSave++

		final := committed.Remaining() == 0
		if sinceSave >= d.opts.CheckpointInterval || final {
			if err := d.save(flushCtx, committed); err != nil {
				d.setState(Failed)
				return committed, err
			}
			sinceSave = 0
		}

		metrics.RecordRow(d.opts.Job, "inserted", int64(n))
		metrics.RecordBatches(d.opts.Job, 1)
		metrics.RecordBatchRate(d.opts.Job, n, insDur)
		d.logProgress(committed, n, now, lastFlush, now.Sub(start))
		lastFlush = now

		if final && n < d.opts.MinBatchSize && committed.TargetRows >= int64(d.opts.MinBatchSize) {
			d.log.Warn("final batch is smaller than the recommended minimum",
				"rows", n, "min_batch_size", d.opts.MinBatchSize)
		}
	}

	d.setState(Complete)
	d.log.Info("generation complete",
		"rows_inserted", committed.RowsInserted,
		"batches_completed", committed.BatchesCompleted,
		"last_image_id", committed.LastImageID)
	return committed, nil
}

func (d *Driver) save(ctx context.Context, rec checkpoint.Record) error {
	t := time.Now()
	err := d.store.Save(ctx, rec)
	metrics.RecordStep(d.opts.Job, metrics.StepCheckpoint, err, time.Since(t))
	if err != nil {
		return fmt.Errorf("pipeline: save checkpoint to %s: %w", d.store.Location(), err)
	}
	return nil
}

// fail persists the last acknowledged record and reports where to resume.
func (d *Driver) fail(committed checkpoint.Record, first uint32, n int, cause error) (checkpoint.Record, error) {
	d.setState(Failed)
	err := fmt.Errorf("pipeline: insert ids %d-%d: %w; progress saved to %s, rerun to resume from image_id %d",
		first, first+uint32(n)-1, cause, d.store.Location(), committed.NextImageID())
	if serr := d.save(context.Background(), committed); serr != nil {
		err = errors.Join(err, serr)
	}
	d.log.Error("batch insert failed",
		"error", cause,
		"first_image_id", first,
		"rows", n,
		"checkpoint", d.store.Location(),
		"resume_from", committed.NextImageID())
	return committed, err
}

// interrupt saves the last committed record once and stops. Rows generated
// but not flushed are dropped.
func (d *Driver) interrupt(committed checkpoint.Record, unsaved int) (checkpoint.Record, error) {
	d.setState(ShuttingDown)
	d.log.Info("interrupted, saving checkpoint",
		"last_image_id", committed.LastImageID,
		"rows_inserted", committed.RowsInserted,
		"unsaved_batches", unsaved)
	if err := d.save(context.Background(), committed); err != nil {
		return committed, errors.Join(ErrInterrupted, err)
	}
	return committed, ErrInterrupted
}

func (d *Driver) logProgress(rec checkpoint.Record, n int, now, lastFlush time.Time, runElapsed time.Duration) {
	sinceLast := now.Sub(lastFlush)
	rps := 0.0
	if sinceLast > 0 {
		rps = float64(n) / sinceLast.Seconds()
	}
	kv := []any{
		"batch", rec.BatchesCompleted,
		"rps", int64(rps),
		"inserted", n,
		"total_inserted", rec.RowsInserted,
		"target_rows", rec.TargetRows,
		"elapsed", runElapsed.Truncate(time.Millisecond).String(),
	}
	if rec.AverageRateRowsPerSec != nil && *rec.AverageRateRowsPerSec > 0 {
		eta := time.Duration(float64(rec.Remaining()) / *rec.AverageRateRowsPerSec * float64(time.Second))
		kv = append(kv, "avg_rps", int64(*rec.AverageRateRowsPerSec), "eta", eta.Truncate(time.Second).String())
	}
	d.log.Info("batch flushed", kv...)
}
