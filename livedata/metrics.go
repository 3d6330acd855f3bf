/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package livedata

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/robertalv/convex-panel-sub012/internal/libinfo"
)

const metricsLabelSource = "source"

// MetricsCollector represents a collector of metrics about pause/resume transitions
// and the observed update rate of live data controllers.
type MetricsCollector interface {
	// IncAutoPauses increments the total number of auto-pause episodes.
	IncAutoPauses(source string)

	// IncManualPauses increments the total number of explicit Pause calls.
	IncManualPauses(source string)

	// IncResumes increments the total number of Resume calls.
	IncResumes(source string)

	// ObserveRate sets the last observed update rate.
	ObserveRate(source string, rate int)
}

// PrometheusMetrics represents Prometheus metrics for live data controllers.
type PrometheusMetrics struct {
	AutoPausesTotal   *prometheus.CounterVec
	ManualPausesTotal *prometheus.CounterVec
	ResumesTotal      *prometheus.CounterVec
	UpdateRate        *prometheus.GaugeVec
}

var _ MetricsCollector = (*PrometheusMetrics)(nil)

// NewPrometheusMetrics creates a new instance of PrometheusMetrics.
func NewPrometheusMetrics(namespace string) *PrometheusMetrics {
	autoPausesTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   namespace,
		Name:        "live_data_auto_pauses_total",
		Help:        "Number of times live data delivery was paused because the update rate exceeded the threshold.",
		ConstLabels: libinfo.AddPrometheusLibVersionLabel(nil),
	}, []string{metricsLabelSource})

	manualPausesTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   namespace,
		Name:        "live_data_manual_pauses_total",
		Help:        "Number of times live data delivery was paused explicitly.",
		ConstLabels: libinfo.AddPrometheusLibVersionLabel(nil),
	}, []string{metricsLabelSource})

	resumesTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   namespace,
		Name:        "live_data_resumes_total",
		Help:        "Number of times live data delivery was resumed.",
		ConstLabels: libinfo.AddPrometheusLibVersionLabel(nil),
	}, []string{metricsLabelSource})

	updateRate := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "live_data_update_rate",
		Help:        "Number of live data updates observed in the trailing window.",
		ConstLabels: libinfo.AddPrometheusLibVersionLabel(nil),
	}, []string{metricsLabelSource})

	return &PrometheusMetrics{
		AutoPausesTotal:   autoPausesTotal,
		ManualPausesTotal: manualPausesTotal,
		ResumesTotal:      resumesTotal,
		UpdateRate:        updateRate,
	}
}

// MustRegister does registration of metrics collector in Prometheus and panics if any error occurs.
func (pm *PrometheusMetrics) MustRegister() {
	prometheus.MustRegister(pm.AllMetrics()...)
}

// Unregister cancels registration of metrics collector in Prometheus.
func (pm *PrometheusMetrics) Unregister() {
	for _, m := range pm.AllMetrics() {
		prometheus.Unregister(m)
	}
}

// AllMetrics returns a list of metrics of this collector.
// This can be used to register these metrics in a non-global registry.
func (pm *PrometheusMetrics) AllMetrics() []prometheus.Collector {
	return []prometheus.Collector{
		pm.AutoPausesTotal,
		pm.ManualPausesTotal,
		pm.ResumesTotal,
		pm.UpdateRate,
	}
}

// IncAutoPauses increments the total number of auto-pause episodes.
func (pm *PrometheusMetrics) IncAutoPauses(source string) {
	pm.AutoPausesTotal.With(prometheus.Labels{metricsLabelSource: source}).Inc()
}

// IncManualPauses increments the total number of explicit Pause calls.
func (pm *PrometheusMetrics) IncManualPauses(source string) {
	pm.ManualPausesTotal.With(prometheus.Labels{metricsLabelSource: source}).Inc()
}

// IncResumes increments the total number of Resume calls.
func (pm *PrometheusMetrics) IncResumes(source string) {
	pm.ResumesTotal.With(prometheus.Labels{metricsLabelSource: source}).Inc()
}

// ObserveRate sets the last observed update rate.
func (pm *PrometheusMetrics) ObserveRate(source string, rate int) {
	pm.UpdateRate.With(prometheus.Labels{metricsLabelSource: source}).Set(float64(rate))
}

type disabledMetrics struct{}

func (disabledMetrics) IncAutoPauses(string)    {}
func (disabledMetrics) IncManualPauses(string)  {}
func (disabledMetrics) IncResumes(string)       {}
func (disabledMetrics) ObserveRate(string, int) {}
