// Package metrics exposes admission outcomes to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"activitybooking/internal/domain"
)

const outcomeAdmitted = "admitted"

// Metrics implements domain.AdmissionRecorder on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	// Admission outcomes by activity and result kind
	Admissions *prometheus.CounterVec

	// Participants registered by activity
	Participants *prometheus.CounterVec

	// Participants per request, admitted or not
	BatchSize prometheus.Histogram
}

// New creates a Metrics instance. Process and Go runtime collectors are
// registered alongside the admission metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Admissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "activitybooking_admissions_total",
			Help: "Registration requests by activity and outcome",
		}, []string{"activity", "outcome"}),

		Participants: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "activitybooking_registered_participants_total",
			Help: "Participants registered into activity turns",
		}, []string{"activity"}),

		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "activitybooking_batch_size",
			Help:    "Participants per registration request",
			Buckets: []float64{1, 2, 3, 4, 5, 6, 8, 10},
		}),
	}
}

// RecordAdmission counts one admission decision. An empty kind is a success.
func (m *Metrics) RecordAdmission(activityName string, kind domain.AdmissionKind, participants int) {
	if m == nil {
		return
	}
	if activityName == "" {
		activityName = "unknown"
	}
	outcome := string(kind)
	if kind == "" {
		outcome = outcomeAdmitted
		m.Participants.WithLabelValues(activityName).Add(float64(participants))
	}
	m.Admissions.WithLabelValues(activityName, outcome).Inc()
	m.BatchSize.Observe(float64(participants))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
