// Package metrics exports ledger engine metrics to Prometheus.
package metrics

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "ledger_"

	resultSuccess = "success"
)

// Observer records one counter sample and one latency sample per engine call. It
// satisfies ledger.Observer.
type Observer struct {
	operations *prometheus.CounterVec
	latency    *prometheus.HistogramVec
}

// NewObserver creates the engine metrics and registers them with reg.
func NewObserver(reg prometheus.Registerer) (*Observer, error) {
	o := &Observer{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "operations_total",
				Help: "Total ledger operations by operation and result",
			},
			[]string{"op", "result"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "operation_latency_seconds",
				Help:    "Ledger operation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op", "result"},
		),
	}
	for _, c := range []prometheus.Collector{o.operations, o.latency} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// ObserveOperation implements ledger.Observer. The result label is "success" or the
// error kind, e.g. "InsufficientFunds".
func (o *Observer) ObserveOperation(op string, err error, elapsed time.Duration) {
	result := resultSuccess
	if err != nil {
		result = domain.KindOf(err).String()
	}
	o.operations.WithLabelValues(op, result).Inc()
	o.latency.WithLabelValues(op, result).Observe(elapsed.Seconds())
}
