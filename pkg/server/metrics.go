package server

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "solarquote_"

	resultSuccess = "success"
	resultInvalid = "invalid"
	resultError   = "error"

	kindSimulate = "simulate"
	kindCompare  = "compare"
)

var (
	registerOnce sync.Once

	simulationsTotal  *prometheus.CounterVec
	simulationLatency *prometheus.HistogramVec
)

func initMetrics() {
	registerOnce.Do(func() {
		simulationsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "simulations_total",
				Help: "Total simulation requests by kind and result",
			},
			[]string{"kind", "result"},
		)
		simulationLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "simulation_duration_seconds",
				Help:    "Simulation request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		)
		prometheus.MustRegister(simulationsTotal, simulationLatency)
	})
}

// observeSimulation records one simulation request.
func observeSimulation(kind, result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if simulationsTotal != nil {
		simulationsTotal.WithLabelValues(kind, result).Inc()
	}
	if simulationLatency != nil {
		simulationLatency.WithLabelValues(kind).Observe(duration.Seconds())
	}
}
