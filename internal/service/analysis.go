package service

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Ivan-Pavelic/stroop-effect/internal/app/appconfig"
	"github.com/Ivan-Pavelic/stroop-effect/internal/core/analysis"
	"github.com/Ivan-Pavelic/stroop-effect/internal/core/classifier"
	"github.com/Ivan-Pavelic/stroop-effect/internal/model"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/cache"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/flog"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/jetstream"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/observability"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/sterr"
)

var tracer = otel.Tracer("service")

type Analysis struct {
	Config     *appconfig.Config
	Classifier *classifier.Adapter
	Analyzer   *analysis.Analyzer
	Results    *cache.Set[model.PerformanceReport]
	Publisher  *jetstream.Publisher
}

func NewAnalysis(conf *appconfig.Config, adapter *classifier.Adapter, store cache.Store, publisher *jetstream.Publisher) *Analysis {
	return &Analysis{
		Config:     conf,
		Classifier: adapter,
		Analyzer:   analysis.NewAnalyzer(adapter),
		Results:    cache.NewSet[model.PerformanceReport](store, "analysis", conf.ResultCacheTTL),
		Publisher:  publisher,
	}
}

type analysisEvent struct {
	Metrics model.SessionMetrics    `json:"metrics"`
	Report  model.PerformanceReport `json:"report"`
}

// Analyze scores a session. Identical sessions under the same classifier
// are served from the result cache.
func (s *Analysis) Analyze(ctx context.Context, m model.SessionMetrics) (*model.PerformanceReport, error) {
	ctx, span := tracer.Start(ctx, "service.analysis.analyze")
	defer span.End()

	if s.Config.RequireModel && !s.Classifier.Available() {
		return nil, sterr.ErrModelUnavailable
	}

	compute := func() (model.PerformanceReport, error) {
		timer := prometheus.NewTimer(observability.AnalysisDuration.WithLabelValues())
		defer timer.ObserveDuration()
		return s.Analyzer.Analyze(m), nil
	}

	var (
		report   model.PerformanceReport
		computed = true
	)
	key, err := cache.Key(struct {
		Model   string
		Metrics model.SessionMetrics
	}{s.Classifier.Describe(), m})
	if err != nil {
		flog.FromCtx(ctx).Warn().Err(err).Msg("analysis: skipping result cache")
		report, _ = compute()
	} else {
		report, computed, err = s.Results.MutexGetSet(ctx, key, compute)
		if err != nil {
			return nil, err
		}
	}

	observability.AnalysisLabelSource.
		WithLabelValues(string(report.LabelSource), strconv.Itoa(int(report.Label))).
		Inc()
	span.SetAttributes(
		attribute.Int("stroop.label", int(report.Label)),
		attribute.String("stroop.label_source", string(report.LabelSource)),
		attribute.Bool("stroop.cached", !computed),
	)

	if computed {
		s.Publisher.Publish(context.Background(), jetstream.SubjectAnalysis, requestID(ctx), analysisEvent{
			Metrics: m,
			Report:  report,
		})
	}

	return &report, nil
}
