package pipeline

import (
	"context"
	"fmt"
	"testing"
	"time"

	"datafaker/internal/checkpoint"
	"datafaker/internal/row"
)

// discardLoader reports every row as inserted without storing anything.
type discardLoader struct{}

func (discardLoader) CopyFrom(_ context.Context, _ []string, rows [][]any) (int64, error) {
	return int64(len(rows)), nil
}

// BenchmarkGenerate measures row assembly alone at several worker counts.
//
//	go test ./internal/pipeline -run=^$ -bench ^BenchmarkGenerate$ -benchmem
func BenchmarkGenerate(b *testing.B) {
	asm := row.Assembler{Now: func() time.Time { return epoch }}
	const batch = 10000

	for _, workers := range []int{1, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := generate(context.Background(), asm, "bench", uint32(i*batch)+1, batch, workers); err != nil {
					b.Fatal(err)
				}
			}
			b.ReportMetric(float64(b.N*batch)/b.Elapsed().Seconds(), "rows/s")
		})
	}
}

// BenchmarkRun drives the full batch loop against a loader that does no I/O,
// so the result is the generation plus checkpoint bookkeeping ceiling.
func BenchmarkRun(b *testing.B) {
	const target = 50000

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d := New(discardLoader{}, &memStore{}, nil, Options{
			Workers:   4,
			Assembler: row.Assembler{Now: func() time.Time { return epoch }},
		})
		if _, err := d.Run(context.Background(), checkpoint.NewInitial("bench", target, 10000, false, epoch)); err != nil {
			b.Fatalf("Run: %v", err)
		}
	}
	b.ReportMetric(float64(b.N*target)/b.Elapsed().Seconds(), "rows/s")
}
