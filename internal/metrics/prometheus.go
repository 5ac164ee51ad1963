package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains the Prometheus collectors of the voice sentiment service
type Metrics struct {
	// Pipeline metrics
	StageDuration *prometheus.HistogramVec
	StageFailures *prometheus.CounterVec
	UploadSize    prometheus.Histogram
	ReplySize     prometheus.Histogram
	ReplyDuration prometheus.Histogram
	SlotWrites    prometheus.Counter

	// HTTP API metrics
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPErrors          *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "voice_stage_duration_seconds",
			Help:    "Duration of pipeline stages",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12), // 50ms to ~100s
		}, []string{"stage"}),
		StageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "voice_stage_failures_total",
			Help: "Total number of failed pipeline stages",
		}, []string{"stage"}),
		UploadSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "voice_upload_size_bytes",
			Help:    "Size of uploaded recordings",
			Buckets: prometheus.ExponentialBuckets(16*1024, 2, 12), // 16KB to ~32MB
		}),
		ReplySize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "voice_reply_size_bytes",
			Help:    "Size of synthesized replies",
			Buckets: prometheus.ExponentialBuckets(4*1024, 2, 12),
		}),
		ReplyDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "voice_reply_duration_seconds",
			Help:    "Playback length of synthesized replies",
			Buckets: prometheus.ExponentialBuckets(1, 2, 9), // 1s to ~4 minutes
		}),
		SlotWrites: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "voice_slot_writes_total",
			Help: "Total number of writes to the last-reply slot",
		}),

		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "voice_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "endpoint", "status_code"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "voice_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
		HTTPErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "voice_http_errors_total",
			Help: "Total number of HTTP errors",
		}, []string{"method", "endpoint", "error_type"}),
	}

	reg.MustRegister(
		m.StageDuration, m.StageFailures,
		m.UploadSize, m.ReplySize, m.ReplyDuration, m.SlotWrites,
		m.HTTPRequests, m.HTTPRequestDuration, m.HTTPErrors,
	)
	return m
}

// RecordStage records one stage run
func (m *Metrics) RecordStage(stage string, durationSeconds float64, failed bool) {
	m.StageDuration.WithLabelValues(stage).Observe(durationSeconds)
	if failed {
		m.StageFailures.WithLabelValues(stage).Inc()
	}
}

// RecordUpload records the size of an accepted upload
func (m *Metrics) RecordUpload(sizeBytes int) {
	m.UploadSize.Observe(float64(sizeBytes))
}

// RecordReply records a synthesized reply stored in the slot
func (m *Metrics) RecordReply(sizeBytes int, durationSeconds float64) {
	m.SlotWrites.Inc()
	m.ReplySize.Observe(float64(sizeBytes))
	if durationSeconds > 0 {
		m.ReplyDuration.Observe(durationSeconds)
	}
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, durationSeconds float64) {
	m.HTTPRequests.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(durationSeconds)
}

// RecordHTTPError records an HTTP error
func (m *Metrics) RecordHTTPError(method, endpoint, errorType string) {
	m.HTTPErrors.WithLabelValues(method, endpoint, errorType).Inc()
}
