package metrics

import "github.com/prometheus/client_golang/prometheus"

// Submission outcomes recorded by IntakeMetrics.
const (
	OutcomeAccepted     = "accepted"
	OutcomeInvalid      = "invalid"
	OutcomeStorageError = "storage_error"
)

// IntakeMetrics exposes counters/histograms for the lead intake flow.
type IntakeMetrics struct {
	submissionsTotal *prometheus.CounterVec
	sinkWritesTotal  *prometheus.CounterVec
	submitLatency    prometheus.Histogram
}

func NewIntakeMetrics(reg prometheus.Registerer) *IntakeMetrics {
	m := &IntakeMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aivora",
			Subsystem: "intake",
			Name:      "submissions_total",
			Help:      "Total lead submissions by outcome",
		}, []string{"outcome"}),
		sinkWritesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aivora",
			Subsystem: "intake",
			Name:      "sink_writes_total",
			Help:      "Best-effort mirror and notification writes by sink and status",
		}, []string{"sink", "status"}),
		submitLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "aivora",
			Subsystem: "intake",
			Name:      "submit_latency_seconds",
			Help:      "Latency of lead submission handling including sinks",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.sinkWritesTotal, m.submitLatency)
	return m
}

func (m *IntakeMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveSinkWrite counts a sink write; a non-nil err is recorded as status "error".
func (m *IntakeMetrics) ObserveSinkWrite(sink string, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.sinkWritesTotal.WithLabelValues(sink, status).Inc()
}

func (m *IntakeMetrics) ObserveSubmitLatency(seconds float64) {
	if m == nil {
		return
	}
	m.submitLatency.Observe(seconds)
}
