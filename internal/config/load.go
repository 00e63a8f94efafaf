package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DATAFAKER_"

// Load builds a Config from Default, the optional file at path, a .env file
// in the working directory (if present) and DATAFAKER_* variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return fmt.Errorf("config: decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return fmt.Errorf("config: decode %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config: unsupported file type %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
	return nil
}

type lookupFunc func(string) (string, bool)

// applyEnv overrides cfg from the environment. Unset variables leave the
// field alone; malformed numbers and booleans are errors.
func applyEnv(cfg *Config, lookup lookupFunc) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	var errs []error
	num := func(name string, set func(int64)) {
		v, ok := lookup(EnvPrefix + name)
		if !ok || strings.TrimSpace(v) == "" {
			return
		}
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("config: %s%s: %w", EnvPrefix, name, err))
			return
		}
		set(n)
	}
	flag := func(name string, dst *bool) {
		v, ok := lookup(EnvPrefix + name)
		if !ok || strings.TrimSpace(v) == "" {
			return
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("config: %s%s: %w", EnvPrefix, name, err))
			return
		}
		*dst = b
	}

	str("JOB", &cfg.Job)
	str("SEED", &cfg.Generator.Seed)
	str("TARGET_SIZE", &cfg.Generator.TargetSize)
	str("CONTENT_BASE_URL", &cfg.Generator.ContentBaseURL)
	num("TARGET_ROWS", func(n int64) { cfg.Generator.TargetRows = n })
	num("BATCH_SIZE", func(n int64) { cfg.Generator.BatchSize = int(n) })
	num("START_IMAGE_ID", func(n int64) { cfg.Generator.StartImageID = uint32(n) })
	num("WORKERS", func(n int64) { cfg.Generator.Workers = int(n) })
	num("CHECKPOINT_INTERVAL", func(n int64) { cfg.Generator.CheckpointInterval = int(n) })

	str("STORAGE_KIND", &cfg.Storage.Kind)
	str("STORAGE_DSN", &cfg.Storage.DSN)
	str("STORAGE_TABLE", &cfg.Storage.Table)
	flag("AUTO_CREATE_TABLE", &cfg.Storage.AutoCreateTable)
	flag("ASYNC_INSERT", &cfg.Storage.AsyncInsert)
	flag("WAIT_FOR_ASYNC_INSERT", &cfg.Storage.WaitForAsyncInsert)

	str("CHECKPOINT_KIND", &cfg.Checkpoint.Kind)
	str("CHECKPOINT_PATH", &cfg.Checkpoint.Path)
	str("REDIS_ADDR", &cfg.Checkpoint.RedisAddr)
	str("REDIS_KEY", &cfg.Checkpoint.RedisKey)

	str("METRICS_BACKEND", &cfg.Metrics.Backend)
	str("PUSHGATEWAY_URL", &cfg.Metrics.PushgatewayURL)
	str("DATADOG_ADDR", &cfg.Metrics.DatadogAddr)
	str("LOG_MODE", &cfg.Log.Mode)

	return errors.Join(errs...)
}
