package camera

import "github.com/prometheus/client_golang/prometheus"

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kodakam_camera_requests_total",
			Help: "Camera requests by command and decoded outcome (error for transport failures).",
		},
		[]string{"command", "outcome"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kodakam_camera_request_duration_seconds",
			Help:    "Camera request latency by command.",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"command"},
	)

	sweepsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "kodakam_camera_sweeps_total",
			Help: "Completed bulk sweeps.",
		},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration, sweepsTotal)
}
