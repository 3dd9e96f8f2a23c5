package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK             = "ok"
	outcomeEmpty          = "empty"
	outcomeBackendError   = "backend_error"
	outcomeMalformed      = "malformed"
	outcomeTransportError = "transport_error"
)

var (
	comparisonsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tarsiah_comparisons_total",
		Help: "Comparison pipeline runs by outcome.",
	}, []string{"source", "outcome"})

	comparisonResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tarsiah_comparison_results",
		Help:    "Number of results produced per successful comparison.",
		Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
	})

	comparisonFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tarsiah_comparison_fallback_entries_total",
		Help: "Malformed evaluator entries replaced by placeholder results.",
	})

	comparisonDiscrepanciesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tarsiah_comparison_discrepancies_total",
		Help: "Comparisons where fewer proposals were evaluated than uploaded.",
	})

	tablesSavedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tarsiah_tables_saved_total",
		Help: "Saved document tables by table name.",
	}, []string{"table"})
)
