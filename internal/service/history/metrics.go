package history

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	entriesGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "argand",
		Subsystem: "history",
		Name:      "entries",
		Help:      "Number of entries currently held in the history.",
	})

	ingestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "argand",
		Subsystem: "history",
		Name:      "ingest_total",
		Help:      "Ingest attempts by outcome.",
	}, []string{"result"})

	evictedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "argand",
		Subsystem: "history",
		Name:      "evicted_total",
		Help:      "Entries dropped by the retention window at load.",
	})

	storageErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "argand",
		Subsystem: "history",
		Name:      "storage_errors_total",
		Help:      "Absorbed storage failures by operation.",
	}, []string{"op"})
)
