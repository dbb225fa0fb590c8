package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ProbeLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "healthchecker_probe_latency_ms",
			Help:    "Probe latency in milliseconds",
			Buckets: []float64{5, 10, 25, 50, 100, 200, 300, 400, 500, 750, 1000},
		},
		[]string{"domain"},
	)
	ProbesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthchecker_probes_total",
			Help: "Probes run, labelled by verdict kind",
		},
		[]string{"domain", "kind"},
	)
	AvailabilityPercent = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "healthchecker_availability_percent",
			Help: "Availability of a domain over its recorded history",
		},
		[]string{"domain"},
	)
	SweepsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "healthchecker_sweeps_total",
			Help: "Completed sweeps over the endpoint list",
		},
	)
)

// MustRegister adds the collectors to the default registry. Call once.
func MustRegister() {
	prometheus.MustRegister(ProbeLatencyMs, ProbesTotal, AvailabilityPercent, SweepsTotal)
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveProbe(domain, kind string, latencyMS float64) {
	ProbeLatencyMs.WithLabelValues(domain).Observe(latencyMS)
	ProbesTotal.WithLabelValues(domain, kind).Inc()
}

func SetAvailability(domain string, percent float64) {
	AvailabilityPercent.WithLabelValues(domain).Set(percent)
}

func SweepDone() {
	SweepsTotal.Inc()
}
