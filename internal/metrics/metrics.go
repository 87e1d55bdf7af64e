package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fallguard_events_ingested_total",
		Help: "Events accepted by the ingress path, by kind and ingress format.",
	}, []string{"kind", "format"})

	ImageUploadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fallguard_image_upload_failures_total",
		Help: "Event images dropped because the blob store upload failed.",
	})

	Heartbeats = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fallguard_heartbeats_total",
		Help: "Device heartbeats received.",
	})

	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fallguard_notifications_total",
		Help: "Notification delivery attempts by channel and outcome.",
	}, []string{"channel", "outcome"})
)

// KindLabel bounds the label cardinality of free-text event kinds.
func KindLabel(kind string) string {
	switch kind {
	case "caida", "test":
		return kind
	default:
		return "other"
	}
}
