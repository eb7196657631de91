// Package telemetry provides Prometheus metrics and OpenTelemetry tracing
// for the crisis detector.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "crisis-detector"

// Metrics holds all detector Prometheus metrics.
type Metrics struct {
	// Assessment outcomes
	AssessmentsTotal *prometheus.CounterVec // by final tier
	KeywordTierTotal *prometheus.CounterVec // by pre-fusion keyword tier

	// Pipeline internals
	FusionAdjustments     *prometheus.CounterVec // by adjustment trace
	MetaphorSuppressions  prometheus.Counter
	NormalizationFailures prometheus.Counter

	// Latency
	AssessmentDuration prometheus.Histogram
}

// Provider wraps the tracer and metrics handed to the detector.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry. A nil registerer falls back to the
// default Prometheus registry; tests pass their own registry so repeated
// construction does not collide.
func NewProvider(reg prometheus.Registerer) *Provider {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(reg),
	}
}

// Handler returns the Prometheus HTTP handler for a /metrics endpoint backed
// by the default registry.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		AssessmentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crisis_assessments_total",
			Help: "Total assessments by final risk tier",
		}, []string{"tier"}),
		KeywordTierTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crisis_keyword_tier_total",
			Help: "Total assessments by pre-fusion keyword tier",
		}, []string{"tier"}),
		FusionAdjustments: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crisis_fusion_adjustments_total",
			Help: "Total emotion-fusion tier adjustments by trace",
		}, []string{"adjustment"}),
		MetaphorSuppressions: factory.NewCounter(prometheus.CounterOpts{
			Name: "crisis_metaphor_suppressions_total",
			Help: "Total keyword hits downgraded by metaphorical context",
		}),
		NormalizationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "crisis_normalization_failures_total",
			Help: "Total degraded single-pass assessments after normalizer failure",
		}),
		AssessmentDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "crisis_assessment_duration_seconds",
			Help:    "End-to-end assessment latency",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
	}
}
