package solver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "argand",
		Subsystem: "solver",
		Name:      "requests_total",
		Help:      "Solve requests by outcome.",
	}, []string{"result"})

	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "argand",
		Subsystem: "solver",
		Name:      "duration_seconds",
		Help:      "Time spent waiting for the model.",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 80, 120},
	})
)
