package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return FromZap(zap.New(core)), logs
}

func TestRedactsCredentialKeys(t *testing.T) {
	t.Parallel()

	log, logs := observed()
	log.Info("connect", "storage_dsn", "clickhouse://u:p@h", "redis_password", "x", "table", "images_analytical")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["storage_dsn"] != redacted || fields["redis_password"] != redacted {
		t.Fatalf("credentials not redacted: %v", fields)
	}
	if fields["table"] != "images_analytical" {
		t.Fatalf("table = %v, want images_analytical", fields["table"])
	}
}

func TestWithCarriesFields(t *testing.T) {
	t.Parallel()

	log, logs := observed()
	log.With("run_id", "abc", "api_token", "t").Warn("slow batch")

	fields := logs.All()[0].ContextMap()
	if fields["run_id"] != "abc" || fields["api_token"] != redacted {
		t.Fatalf("fields = %v", fields)
	}
}

func TestSanitizeKVs_OddLength(t *testing.T) {
	t.Parallel()

	got := sanitizeKVs([]any{"a", 1, "dangling"})
	if len(got) != 3 || got[2] != "dangling" {
		t.Fatalf("got %v", got)
	}
}

func TestNew_Modes(t *testing.T) {
	t.Parallel()

	for _, mode := range []string{"prod", "dev", ""} {
		l, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		l.Debug("ok")
	}
}
