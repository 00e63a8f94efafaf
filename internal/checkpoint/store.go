package checkpoint

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"datafaker/internal/logger"
)

// Store persists a single Record. Load reports (zero, false, nil) when
// nothing is stored.
type Store interface {
	Load(ctx context.Context) (Record, bool, error)
	Save(ctx context.Context, rec Record) error
	Delete(ctx context.Context) error
	Location() string
}

// LoadOrWarn loads the stored record. An unreadable or corrupt record is
// logged and treated as absent; generation never fails on load.
func LoadOrWarn(ctx context.Context, s Store, log *logger.Logger) (Record, bool) {
	rec, ok, err := s.Load(ctx)
	if err != nil {
		log.Warn("checkpoint unreadable, starting fresh", "location", s.Location(), "error", err)
		return Record{}, false
	}
	return rec, ok
}

func encode(rec Record) ([]byte, error) {
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("checkpoint: encode: %w", err)
	}
	return append(b, '\n'), nil
}

// UnmarshalJSON defaults wait_for_async_insert to true when the field is
// absent, as records written before the field existed expect.
func (r *Record) UnmarshalJSON(b []byte) error {
	type plain Record
	aux := struct {
		*plain
		WaitForAsyncInsert *bool `json:"wait_for_async_insert"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	r.WaitForAsyncInsert = aux.WaitForAsyncInsert == nil || *aux.WaitForAsyncInsert
	return nil
}

func decode(b []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return Record{}, fmt.Errorf("checkpoint: decode: %w", err)
	}
	return rec, nil
}

type clock func() time.Time

func (c clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}
