package vanity

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	attemptsMetric = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pocxwallet",
		Subsystem: "vanity",
		Name:      "attempts_total",
		Help:      "Candidate wallets derived and checked by vanity searches.",
	})
	searchesMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pocxwallet",
		Subsystem: "vanity",
		Name:      "searches_total",
		Help:      "Completed vanity searches partitioned by outcome.",
	}, []string{"outcome"})
)
