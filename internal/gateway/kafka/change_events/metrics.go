package change_events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChangeEventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "change_events_published_total",
			Help: "Total number of entity change events sent to Kafka",
		},
		[]string{"entity", "action", "result"},
	)

	ChangeEventPublishRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "change_event_publish_retries_total",
			Help: "Total number of change event send attempts retried after a broker error",
		},
	)

	ChangeEventPublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "change_event_publish_duration_seconds",
			Help:    "Duration of change event publishing including retries",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"entity"},
	)
)
