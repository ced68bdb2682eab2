package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NotificationsEnqueuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notifications_enqueued_total",
			Help: "Total number of notifications accepted into the dispatch queue",
		},
	)

	NotificationsDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notifications_dropped_total",
			Help: "Total number of notifications dropped because the dispatch queue was full",
		},
	)

	NotificationsPublishFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notifications_publish_failed_total",
			Help: "Total number of notifications that failed to publish to the broker",
		},
	)
)
