package server

import "github.com/prometheus/client_golang/prometheus"

var (
	chatRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_chat_requests_total",
		Help: "Chat requests by outcome.",
	}, []string{"status"})

	chatDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "portfolio_chat_turn_duration_seconds",
		Help:    "End-to-end duration of one chat turn, including the completion call.",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(chatRequests, chatDuration)
}
