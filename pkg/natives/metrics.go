package natives

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vilterp/balnative/pkg/lang"
)

type metrics struct {
	registry *prometheus.Registry

	// Counters
	invocations *prometheus.CounterVec
	errors      *prometheus.CounterVec

	// Gauges
	registeredNatives prometheus.GaugeFunc

	// Latency
	invocationLatency *prometheus.SummaryVec
}

func newMetrics(namespace string, r *Registry) *metrics {
	m := &metrics{
		invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "invocations",
				Help:      "number of native invocations",
			},
			[]string{"native"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "invocation_errors",
				Help:      "number of native invocations that failed, by error kind",
			},
			[]string{"native", "kind"},
		),
		registeredNatives: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "registered_natives",
				Help:      "number of natives in the registry",
			},
			func() float64 {
				return float64(len(r.natives))
			},
		),
		invocationLatency: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Namespace: namespace,
				Name:      "invocation_latency_ns",
				Help:      "latency of native invocations",
			},
			[]string{"native"},
		),
	}
	m.registry = prometheus.NewPedanticRegistry()
	reg := m.registry

	reg.MustRegister(m.invocations)
	reg.MustRegister(m.errors)
	reg.MustRegister(m.registeredNatives)
	reg.MustRegister(m.invocationLatency)
	return m
}

func (m *metrics) observe(native string, duration time.Duration, err *lang.Error) {
	m.invocations.WithLabelValues(native).Inc()
	m.invocationLatency.WithLabelValues(native).Observe(float64(duration.Nanoseconds()))
	if err != nil {
		m.errors.WithLabelValues(native, err.Kind.String()).Inc()
	}
}
