package waitsrv

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	waiterPollsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "oci",
		Subsystem: "waiter",
		Name:      "polls_total",
		Help:      "Total number of status fetches issued by waiters",
	})

	waiterWaitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "oci",
		Subsystem: "waiter",
		Name:      "waits_total",
		Help:      "Total number of finished waits by outcome",
	}, []string{"outcome"})

	waiterWaitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "oci",
		Subsystem: "waiter",
		Name:      "wait_duration_seconds",
		Help:      "Wall-clock duration of finished waits",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200, 3600},
	}, []string{"outcome"})
)

const (
	outcomeTimeout      = "timeout"
	outcomeFetchFailed  = "fetch_failed"
	outcomeFailureState = "failure_state"
	outcomeCanceled     = "canceled"
	outcomeInvalid      = "invalid_handle"
)
