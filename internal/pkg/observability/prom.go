package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "stroopsvc"
)

var (
	AnalysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "analysis", "duration_seconds"),
		Help:    "Duration of session analysis in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
	}, []string{})
	AnalysisLabelSource = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "analysis", "label_source_total"),
		Help: "Source of the label used for each analysis",
	}, []string{"source", "label"})
	ClassifierFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "classifier", "failures_total"),
		Help: "Classifier predictions that fell back to the heuristic",
	}, []string{"reason"})
	StimulusItemsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "stimulus", "items_total"),
		Help: "Stimulus items generated, by difficulty and congruency",
	}, []string{"difficulty", "congruent"})
	TrendOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "trend", "outcomes_total"),
		Help: "Trend classifications returned by the insight engine",
	}, []string{"trend"})
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "cache", "lookups_total"),
		Help: "Result cache lookups by cache name and outcome",
	}, []string{"cache", "outcome"})
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "events", "published_total"),
		Help: "Events published to JetStream by subject and outcome",
	}, []string{"subject", "outcome"})
)
