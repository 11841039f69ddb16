package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricGatewayCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lumina",
		Name:      "gateway_calls_total",
		Help:      "AI gateway calls by operation and outcome.",
	}, []string{"operation", "outcome"})
	metricGatewayLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lumina",
		Name:      "gateway_call_seconds",
		Help:      "AI gateway call latency.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 80},
	}, []string{"operation"})
	metricRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lumina",
		Name:      "requests_rejected_total",
		Help:      "Operations rejected by the session admission gate.",
	}, []string{"reason"})
	metricSessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "lumina",
		Name:      "sessions_active",
		Help:      "Sessions currently held in memory.",
	})
)

// RecordGatewayCall records one gateway round trip.
func RecordGatewayCall(operation string, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metricGatewayCalls.WithLabelValues(operation, outcome).Inc()
	metricGatewayLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func RecordRejected(reason string) {
	metricRejected.WithLabelValues(reason).Inc()
}

func SetSessionsActive(n int) {
	metricSessionsActive.Set(float64(n))
}
