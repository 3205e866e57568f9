package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Synthesis metrics
	synthesisRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tts_server_synthesis_requests_total",
		Help: "Total number of synthesis requests",
	}, []string{"endpoint", "status"}) // endpoint: "tts" or "tts_base64"

	synthesisLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tts_server_synthesis_latency_seconds",
		Help:    "Synthesis call latency in seconds",
		Buckets: []float64{0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
	})

	audioBytesOut = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tts_server_audio_bytes_total",
		Help: "Total synthesized audio bytes returned to clients",
	})

	// Voice catalog metrics
	voicesRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tts_server_voices_requests_total",
		Help: "Total number of voice catalog requests",
	}, []string{"status"})

	// Activity log metrics
	activityLogWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tts_server_activity_log_writes_total",
		Help: "Total number of activity log write attempts",
	}, []string{"status"}) // status: "ok", "error", "skipped"
)

// RecordSynthesis records the outcome of one synthesis request
func RecordSynthesis(endpoint, status string, elapsed time.Duration, audioBytes int) {
	synthesisRequests.WithLabelValues(endpoint, status).Inc()
	synthesisLatency.Observe(elapsed.Seconds())
	if audioBytes > 0 {
		audioBytesOut.Add(float64(audioBytes))
	}
}

// RecordVoicesRequest records the outcome of one voice catalog request
func RecordVoicesRequest(status string) {
	voicesRequests.WithLabelValues(status).Inc()
}

// RecordActivityLogWrite records the outcome of one activity log write attempt
func RecordActivityLogWrite(status string) {
	activityLogWrites.WithLabelValues(status).Inc()
}
