// Package metrics holds the Prometheus collectors of the connex components.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "connex"

var (
	driverOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "driver",
		Name:      "operations_total",
		Help:      "Count of driver operations.",
	}, []string{"operation", "network", "status"})
	driverOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "driver",
		Name:      "operation_duration_seconds",
		Help:      "Duration of driver operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown(network string) string {
	if network == "" {
		return "unknown"
	}
	return network
}

// Driver tracks metrics for calls made to a chain driver.
type Driver struct {
	network string
}

// NewDriver constructs a metrics collector for driver calls on network.
func NewDriver(network string) *Driver {
	return &Driver{network: orUnknown(network)}
}

// Observe records a single driver call outcome and duration.
func (m Driver) Observe(operation string, err error, started time.Time) {
	s := status(err)
	driverOperationsTotal.WithLabelValues(operation, m.network, s).Inc()
	driverOperationDuration.WithLabelValues(operation, m.network, s).Observe(time.Since(started).Seconds())
}
