// Package config defines the datafaker configuration model and loads it from
// an optional JSON or YAML file, a .env file and DATAFAKER_* environment
// variables, in that order of increasing precedence.
//
// Example (YAML):
//
//	job: nightly-fill
//	generator:
//	  seed: demo
//	  target_size: 10GB
//	  batch_size: 50000
//	storage:
//	  kind: clickhouse
//	  dsn: clickhouse://default@localhost:9000/default
//	  auto_create_table: true
//	checkpoint:
//	  kind: file
//	  path: .checkpoints/progress.json
package config

const (
	// MinBatchSize is the smallest batch the store handles efficiently.
	MinBatchSize = 10000
	// DefaultBatchSize is used when none is configured.
	DefaultBatchSize = MinBatchSize
	// DefaultTargetSize is the data volume targeted when no row count is given.
	DefaultTargetSize = "100GB"
	// BytesPerRowEstimate converts between row counts and data volume.
	BytesPerRowEstimate = 500
)

// Config is the top-level object.
type Config struct {
	// Job labels metrics and log lines.
	Job        string     `json:"job" yaml:"job"`
	Generator  Generator  `json:"generator" yaml:"generator"`
	Storage    Storage    `json:"storage" yaml:"storage"`
	Checkpoint Checkpoint `json:"checkpoint" yaml:"checkpoint"`
	Metrics    Metrics    `json:"metrics" yaml:"metrics"`
	Log        Log        `json:"log" yaml:"log"`
}

// Generator controls what is generated and how it is batched.
type Generator struct {
	Seed string `json:"seed" yaml:"seed"`

	// TargetRows wins over TargetSize when both are set.
	TargetRows int64  `json:"target_rows" yaml:"target_rows"`
	TargetSize string `json:"target_size" yaml:"target_size"`

	BatchSize          int    `json:"batch_size" yaml:"batch_size"`
	StartImageID       uint32 `json:"start_image_id" yaml:"start_image_id"`
	Workers            int    `json:"workers" yaml:"workers"`
	ContentBaseURL     string `json:"content_base_url" yaml:"content_base_url"`
	CheckpointInterval int    `json:"checkpoint_interval" yaml:"checkpoint_interval"`
}

// Storage selects the destination backend.
type Storage struct {
	Kind  string `json:"kind" yaml:"kind"`
	DSN   string `json:"dsn" yaml:"dsn"`
	Table string `json:"table" yaml:"table"`

	AutoCreateTable    bool `json:"auto_create_table" yaml:"auto_create_table"`
	AsyncInsert        bool `json:"async_insert" yaml:"async_insert"`
	WaitForAsyncInsert bool `json:"wait_for_async_insert" yaml:"wait_for_async_insert"`

	// ClickHouse table layout, used only when the table is created.
	Engine   string            `json:"engine" yaml:"engine"`
	OrderBy  []string          `json:"order_by" yaml:"order_by"`
	Settings map[string]string `json:"settings" yaml:"settings"`
}

// Checkpoint selects where progress is persisted: "file" or "redis".
type Checkpoint struct {
	Kind      string `json:"kind" yaml:"kind"`
	Path      string `json:"path" yaml:"path"`
	RedisAddr string `json:"redis_addr" yaml:"redis_addr"`
	RedisKey  string `json:"redis_key" yaml:"redis_key"`
}

// Metrics selects the metrics backend: "none", "prom"/"prometheus" or
// "datadog"/"dogstatsd".
type Metrics struct {
	Backend        string `json:"backend" yaml:"backend"`
	PushgatewayURL string `json:"pushgateway_url" yaml:"pushgateway_url"`
	DatadogAddr    string `json:"datadog_addr" yaml:"datadog_addr"`
	Namespace      string `json:"namespace" yaml:"namespace"`
}

// Log selects "prod" (JSON) or "dev" (console) output.
type Log struct {
	Mode string `json:"mode" yaml:"mode"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Job: "datafaker",
		Generator: Generator{
			TargetSize:         DefaultTargetSize,
			BatchSize:          DefaultBatchSize,
			Workers:            4,
			CheckpointInterval: 1,
		},
		Storage: Storage{
			Kind:               "clickhouse",
			Table:              "images_analytical",
			AsyncInsert:        true,
			WaitForAsyncInsert: true,
			Engine:             "ReplacingMergeTree(updated_at)",
			OrderBy: []string{
				"has_face", "detection_top_class_id", "body_pose_cluster_512",
				"hand_position_cluster_128", "site_name_id", "location_id",
				"upload_date", "image_id",
			},
			Settings: map[string]string{"allow_nullable_key": "1"},
		},
		Checkpoint: Checkpoint{Kind: "file", Path: ".checkpoints/progress.json"},
		Metrics:    Metrics{Backend: "none", Namespace: "datafaker"},
		Log:        Log{Mode: "dev"},
	}
}
