package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/connex-go/pkg/guard"
)

var guardViolationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "guard",
	Name:      "violations_total",
	Help:      "Count of driver calls that broke the driver contract.",
}, []string{"method", "network"})

// Guard counts driver contract violations.
type Guard struct {
	network string
	logger  *zap.Logger
}

// NewGuard constructs a Guard collector for network. Each violation is also
// logged at warn level.
func NewGuard(network string, logger *zap.Logger) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{network: orUnknown(network), logger: logger}
}

// ObserveViolation records one violation report. It matches the guard's
// violation handler signature.
func (m *Guard) ObserveViolation(err error) {
	method := "unknown"
	var v *guard.ViolationError
	if errors.As(err, &v) {
		method = v.Method
	}
	guardViolationsTotal.WithLabelValues(method, m.network).Inc()
	m.logger.Warn("driver contract violation", zap.String("method", method), zap.Error(err))
}
