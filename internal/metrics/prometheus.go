// Package metrics counts processed operations on a private Prometheus registry.
package metrics

import (
	"fmt"
	"log/slog"

	"github.com/benx421/card-authorizer/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
)

// Collector records authorizer activity
type Collector struct {
	registry       *prometheus.Registry
	operations     *prometheus.CounterVec
	violations     *prometheus.CounterVec
	availableLimit prometheus.Gauge
	logger         *slog.Logger
}

// NewCollector creates a Collector with its own registry
func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		operations: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "authorizer_operations_total",
			Help: "Total number of processed operations by kind and outcome",
		}, []string{"kind", "outcome"}),
		violations: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "authorizer_violations_total",
			Help: "Total number of reported violations by label",
		}, []string{"violation"}),
		availableLimit: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "authorizer_available_limit",
			Help: "Available limit of the held account after the latest operation",
		}),
		logger: logger,
	}
}

// RecordOperation counts one processed operation and the violations it produced
func (c *Collector) RecordOperation(kind models.OperationKind, state models.AccountState) {
	outcome := outcomeAccepted
	if !state.Accepted() {
		outcome = outcomeRejected
	}

	c.operations.WithLabelValues(string(kind), outcome).Inc()
	for _, v := range state.Violations {
		c.violations.WithLabelValues(v.String()).Inc()
	}

	if reportsHeldAccount(state) {
		c.availableLimit.Set(float64(state.AvailableLimit))
	}
}

// reportsHeldAccount is false for states that do not describe the session's
// account: no account held yet, or the fields of a rejected second account.
func reportsHeldAccount(state models.AccountState) bool {
	for _, v := range state.Violations {
		if v == models.ViolationAccountNotInitialized || v == models.ViolationAccountAlreadyInitialized {
			return false
		}
	}
	return true
}

// WriteTextfile writes every metric in the text exposition format to path,
// for pickup by a node exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}

	c.logger.Info("metrics written", "path", path)
	return nil
}
