package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	parseTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "planner",
		Name:      "parse_total",
		Help:      "Parse attempts by parser source and outcome.",
	}, []string{"source", "status"})

	scheduledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "planner",
		Name:      "events_scheduled_total",
		Help:      "Events committed to the calendar, by how the start time was chosen.",
	}, []string{"source", "slot"})

	scheduleFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "planner",
		Name:      "schedule_failures_total",
		Help:      "Schedule requests that did not produce an event, by error kind.",
	}, []string{"kind"})

	oracleLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "planner",
		Name:      "oracle_request_duration_seconds",
		Help:      "Latency of remote parser calls.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16},
	})
)
