package vm

import (
	stdbig "math/big"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tokenvest/vesting-actors/actors/abi"
)

const (
	namespace = "vesting"
	subsystem = "vm"
)

type metrics struct {
	messages    *prometheus.CounterVec
	transfers   *prometheus.CounterVec
	amounts     *prometheus.CounterVec
	applyTiming prometheus.Histogram
}

// newMetrics creates the VM collectors on reg. A nil registerer leaves them unregistered.
func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		messages: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "messages_total",
			Help:      "Messages applied, by method and exit code.",
		}, []string{"method", "exit_code"}),
		transfers: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "transfers_total",
			Help:      "Outbound transfers executed after committed messages, by denomination.",
		}, []string{"denom"}),
		amounts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "transferred_amount_total",
			Help:      "Sum of transferred amounts, by denomination. Precision is lost above 2^53.",
		}, []string{"denom"}),
		applyTiming: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "apply_seconds",
			Help:      "Time spent applying a message.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14),
		}),
	}
}

func (m *metrics) observe(method abi.MethodNum, result MessageResult, elapsed time.Duration) {
	m.messages.WithLabelValues(method.String(), result.Code.String()).Inc()
	m.applyTiming.Observe(elapsed.Seconds())
	for _, t := range result.Transfers {
		denom := t.Denom.String()
		m.transfers.WithLabelValues(denom).Inc()
		f, _ := new(stdbig.Float).SetInt(t.Amount.Int).Float64()
		m.amounts.WithLabelValues(denom).Add(f)
	}
}
