package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	headPollTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "head_tracker",
		Name:      "poll_total",
		Help:      "Count of head polls.",
	}, []string{"network", "status"})

	headPollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "head_tracker",
		Name:      "poll_duration_seconds",
		Help:      "Duration of a head poll, including the wait for a new block.",
		Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 15, 30, 60},
	}, []string{"network", "status"})

	headNumber = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "head_tracker",
		Name:      "head_number",
		Help:      "Number of the best known head.",
	}, []string{"network"})

	headProgress = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "head_tracker",
		Name:      "sync_progress",
		Help:      "Estimated sync progress in [0,1].",
	}, []string{"network"})
)

// HeadTracker tracks metrics for the head tracker loop.
type HeadTracker struct {
	network string
}

// NewHeadTracker constructs a HeadTracker collector for network.
func NewHeadTracker(network string) *HeadTracker {
	return &HeadTracker{network: orUnknown(network)}
}

// ObservePoll records a poll outcome and duration.
func (m HeadTracker) ObservePoll(err error, started time.Time) {
	s := status(err)
	headPollTotal.WithLabelValues(m.network, s).Inc()
	headPollDuration.WithLabelValues(m.network, s).Observe(time.Since(started).Seconds())
}

// ObserveHead records a new head.
func (m HeadTracker) ObserveHead(number uint32, progress float64) {
	headNumber.WithLabelValues(m.network).Set(float64(number))
	headProgress.WithLabelValues(m.network).Set(progress)
}
