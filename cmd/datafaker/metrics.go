package main

import (
	"os"
	"strings"

	"datafaker/internal/config"
	"datafaker/internal/logger"
	"datafaker/internal/metrics"
	"datafaker/internal/metrics/datadog"
	"datafaker/internal/metrics/prompush"
)

// setupMetrics installs the backend chosen by flag, then METRICS_BACKEND,
// then config. The returned func flushes it and is always safe to call.
func setupMetrics(cfg config.Config, o options, log *logger.Logger) func() {
	name := firstNonEmpty(o.metricsBackend, os.Getenv("METRICS_BACKEND"), cfg.Metrics.Backend)

	var (
		b   metrics.Backend
		err error
	)
	switch strings.ToLower(name) {
	case "prom", "prometheus", "pushgateway":
		url := firstNonEmpty(o.pushgatewayURL, os.Getenv("PUSHGATEWAY_URL"), cfg.Metrics.PushgatewayURL, "http://localhost:9091")
		b, err = prompush.NewBackend(cfg.Job, url)
		if err == nil {
			log.Info("metrics enabled", "backend", "pushgateway", "url", url, "job", cfg.Job)
		}
	case "datadog", "dogstatsd":
		addr := firstNonEmpty(cfg.Metrics.DatadogAddr, "127.0.0.1:8125")
		b, err = datadog.NewBackend(datadog.Config{
			Addr:       addr,
			Namespace:  cfg.Metrics.Namespace,
			GlobalTags: []string{"job:" + cfg.Job},
		})
		if err == nil {
			log.Info("metrics enabled", "backend", "datadog", "addr", addr)
		}
	case "", "none":
		log.Debug("metrics disabled")
		return func() {}
	default:
		log.Warn("unknown metrics backend; metrics disabled", "backend", name)
		return func() {}
	}
	if err != nil {
		log.Warn("metrics backend init failed; using nop", "backend", name, "error", err)
		return func() {}
	}

	metrics.SetBackend(b)
	return func() {
		if err := metrics.Flush(); err != nil {
			log.Warn("metrics flush failed", "error", err)
		}
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
