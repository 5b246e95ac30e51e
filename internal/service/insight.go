package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Ivan-Pavelic/stroop-effect/internal/app/appconfig"
	"github.com/Ivan-Pavelic/stroop-effect/internal/core/trend"
	"github.com/Ivan-Pavelic/stroop-effect/internal/model"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/cache"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/flog"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/jetstream"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/observability"
)

type Insight struct {
	Results   *cache.Set[model.TrendReport]
	Publisher *jetstream.Publisher
}

func NewInsight(conf *appconfig.Config, store cache.Store, publisher *jetstream.Publisher) *Insight {
	return &Insight{
		Results:   cache.NewSet[model.TrendReport](store, "insights", conf.ResultCacheTTL),
		Publisher: publisher,
	}
}

type insightsEvent struct {
	GamesPlayed int               `json:"gamesPlayed"`
	Report      model.TrendReport `json:"report"`
}

func (s *Insight) Insights(ctx context.Context, history []model.SessionSummary) (*model.TrendReport, error) {
	ctx, span := tracer.Start(ctx, "service.insight.insights")
	defer span.End()

	compute := func() (model.TrendReport, error) {
		return trend.Insights(history), nil
	}

	var (
		report   model.TrendReport
		computed = true
	)
	key, err := cache.Key(history)
	if err != nil {
		flog.FromCtx(ctx).Warn().Err(err).Msg("insight: skipping result cache")
		report, _ = compute()
	} else {
		report, computed, err = s.Results.MutexGetSet(ctx, key, compute)
		if err != nil {
			return nil, err
		}
	}
	if report.Insights == nil {
		report.Insights = []string{}
	}

	observability.TrendOutcomes.WithLabelValues(string(report.Trend)).Inc()
	span.SetAttributes(
		attribute.Int("stroop.games", len(history)),
		attribute.String("stroop.trend", string(report.Trend)),
	)

	if computed {
		s.Publisher.Publish(context.Background(), jetstream.SubjectInsights, requestID(ctx), insightsEvent{
			GamesPlayed: len(history),
			Report:      report,
		})
	}

	return &report, nil
}
