package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalid is wrapped by Check when any error-severity issue is found.
var ErrInvalid = errors.New("config: invalid configuration")

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError blocks generation.
	SeverityError IssueSeverity = "error"
	// SeverityWarning is reported but does not block.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation finding. Path is a dotted path into
// the config (e.g. "generator.batch_size").
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

var (
	knownStorage    = []string{"clickhouse", "postgres", "mysql", "mssql", "sqlite"}
	knownCheckpoint = []string{"file", "redis"}
	knownMetrics    = []string{"", "none", "prom", "prometheus", "datadog", "dogstatsd"}
)

// Validate performs static checks and returns every issue found. It does not
// mutate cfg.
func Validate(cfg Config) []Issue {
	var issues []Issue
	if strings.TrimSpace(cfg.Job) == "" {
		issues = append(issues, Issue{SeverityError, "job", "job must not be empty; it labels metrics and logs"})
	}
	issues = append(issues, validateGenerator(cfg.Generator)...)
	issues = append(issues, validateStorage(cfg.Storage)...)
	issues = append(issues, validateCheckpoint(cfg.Checkpoint)...)
	if !slices.Contains(knownMetrics, strings.ToLower(cfg.Metrics.Backend)) {
		issues = append(issues, Issue{SeverityWarning, "metrics.backend",
			fmt.Sprintf("unknown metrics backend %q; metrics will be disabled", cfg.Metrics.Backend)})
	}
	return issues
}

func validateGenerator(g Generator) []Issue {
	var issues []Issue

	if g.TargetRows < 0 {
		issues = append(issues, Issue{SeverityError, "generator.target_rows", "target_rows must not be negative"})
	}
	if g.TargetRows == 0 && g.TargetSize != "" {
		if n, err := ParseTargetSize(g.TargetSize); err != nil {
			issues = append(issues, Issue{SeverityError, "generator.target_size", err.Error()})
		} else if RowsForSize(n) < 1 {
			issues = append(issues, Issue{SeverityError, "generator.target_size",
				fmt.Sprintf("target_size %q is less than one row (%d bytes)", g.TargetSize, BytesPerRowEstimate)})
		}
	}
	target, _ := g.ResolveTargetRows()

	switch {
	case g.BatchSize <= 0:
		issues = append(issues, Issue{SeverityError, "generator.batch_size", "batch_size must be positive"})
	case g.BatchSize < MinBatchSize && target >= MinBatchSize:
		issues = append(issues, Issue{SeverityWarning, "generator.batch_size",
			fmt.Sprintf("batch_size=%d is below the recommended minimum of %d; inserts will be less efficient", g.BatchSize, MinBatchSize)})
	}
	if g.Workers < 0 {
		issues = append(issues, Issue{SeverityError, "generator.workers", "workers must not be negative"})
	}
	if g.CheckpointInterval < 1 {
		issues = append(issues, Issue{SeverityError, "generator.checkpoint_interval", "checkpoint_interval must be at least 1"})
	}
	return issues
}

func validateStorage(s Storage) []Issue {
	var issues []Issue

	if strings.TrimSpace(s.Kind) == "" {
		return append(issues, Issue{SeverityError, "storage.kind", "storage.kind must not be empty"})
	}
	if !slices.Contains(knownStorage, s.Kind) {
		issues = append(issues, Issue{SeverityWarning, "storage.kind",
			fmt.Sprintf("unknown storage kind %q; ensure a matching backend is registered", s.Kind)})
	}
	if strings.TrimSpace(s.DSN) == "" {
		issues = append(issues, Issue{SeverityError, "storage.dsn", "storage.dsn must not be empty"})
	}
	if strings.TrimSpace(s.Table) == "" {
		issues = append(issues, Issue{SeverityError, "storage.table", "storage.table must not be empty"})
	}
	if s.WaitForAsyncInsert && !s.AsyncInsert && s.Kind == "clickhouse" {
		issues = append(issues, Issue{SeverityWarning, "storage.wait_for_async_insert",
			"wait_for_async_insert has no effect without async_insert"})
	}
	return issues
}

func validateCheckpoint(c Checkpoint) []Issue {
	if !slices.Contains(knownCheckpoint, c.Kind) {
		return []Issue{{SeverityError, "checkpoint.kind",
			fmt.Sprintf("checkpoint.kind must be one of %v, got %q", knownCheckpoint, c.Kind)}}
	}
	if c.Kind == "redis" && strings.TrimSpace(c.RedisAddr) == "" {
		return []Issue{{SeverityError, "checkpoint.redis_addr", "redis checkpoint requires redis_addr"}}
	}
	return nil
}

// Check returns an error wrapping ErrInvalid and listing every
// error-severity issue, or nil when none are present.
func Check(issues []Issue) error {
	var errs []error
	for _, iss := range issues {
		if iss.Severity == SeverityError {
			errs = append(errs, iss)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
