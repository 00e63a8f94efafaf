// Package checkpoint persists pipeline progress so an interrupted or failed
// run resumes at the next unprocessed image id.
package checkpoint

import (
	"time"

	"github.com/google/uuid"
)

// Record is the persisted progress of one generation run.
type Record struct {
	LastImageID        uint32    `json:"last_image_id"`
	RowsInserted       int64     `json:"rows_inserted"`
	BatchesCompleted   int64     `json:"batches_completed"`
	StartTime          time.Time `json:"start_time"`
	LastCheckpoint     time.Time `json:"last_checkpoint"`
	Seed               string    `json:"seed"`
	TargetRows         int64     `json:"target_rows"`
	BatchSize          int       `json:"batch_size"`
	WaitForAsyncInsert bool      `json:"wait_for_async_insert"`

	// Set once a batch has completed.
	TotalTimeSeconds      *float64 `json:"total_time_seconds,omitempty"`
	AverageRateRowsPerSec *float64 `json:"average_rate_rows_per_sec,omitempty"`

	RunID string `json:"run_id"`
}

// NewInitial returns a fresh record starting before image id 1.
func NewInitial(seed string, targetRows int64, batchSize int, waitForAsync bool, now time.Time) Record {
	now = now.UTC()
	return Record{
		StartTime:          now,
		LastCheckpoint:     now,
		Seed:               seed,
		TargetRows:         targetRows,
		BatchSize:          batchSize,
		WaitForAsyncInsert: waitForAsync,
		RunID:              uuid.NewString(),
	}
}

// Advance returns a copy of rec bumped to the given progress. A non-negative
// elapsed sets the cumulative time and, when positive, the average rate.
func Advance(rec Record, lastID uint32, rows, batches int64, elapsed time.Duration, now time.Time) Record {
	out := rec
	out.LastImageID = lastID
	out.RowsInserted = rows
	out.BatchesCompleted = batches
	out.LastCheckpoint = now.UTC()
	if elapsed >= 0 {
		secs := elapsed.Seconds()
		out.TotalTimeSeconds = &secs
		out.AverageRateRowsPerSec = nil
		if secs > 0 {
			rate := float64(rows) / secs
			out.AverageRateRowsPerSec = &rate
		}
	}
	return out
}

// Remaining is the number of rows still to insert.
func (r Record) Remaining() int64 {
	return max(0, r.TargetRows-r.RowsInserted)
}

// Done reports whether the target has been reached.
func (r Record) Done() bool { return r.RowsInserted >= r.TargetRows }

// NextImageID is the first id not yet inserted.
func (r Record) NextImageID() uint32 { return r.LastImageID + 1 }

// stamp sets last_checkpoint and recomputes the average rate from the
// cumulative time, as every Save does.
func stamp(rec Record, now time.Time) Record {
	rec.LastCheckpoint = now.UTC()
	if rec.TotalTimeSeconds != nil && *rec.TotalTimeSeconds > 0 {
		rate := float64(rec.RowsInserted) / *rec.TotalTimeSeconds
		rec.AverageRateRowsPerSec = &rate
	}
	return rec
}
