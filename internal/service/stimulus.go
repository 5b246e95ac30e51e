package service

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Ivan-Pavelic/stroop-effect/internal/app/appconfig"
	"github.com/Ivan-Pavelic/stroop-effect/internal/core/stimulus"
	"github.com/Ivan-Pavelic/stroop-effect/internal/model"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/observability"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/sterr"
)

type Stimulus struct {
	Config    *appconfig.Config
	Generator *stimulus.Generator
}

func NewStimulus(conf *appconfig.Config) *Stimulus {
	return &Stimulus{
		Config:    conf,
		Generator: stimulus.NewGenerator(stimulus.NewLockedSource(conf.StimulusSeed)),
	}
}

// WithSeed returns a copy of s drawing from a source seeded with seed.
func (s *Stimulus) WithSeed(seed int64) *Stimulus {
	return &Stimulus{
		Config:    s.Config,
		Generator: stimulus.NewGenerator(stimulus.NewLockedSource(seed)),
	}
}

// Generate returns count items for difficulty. An empty difficulty means
// medium and a non-positive count means the default count.
func (s *Stimulus) Generate(ctx context.Context, difficulty string, count int, perf *model.UserPerformance) ([]model.StimulusItem, error) {
	_, span := tracer.Start(ctx, "service.stimulus.generate")
	defer span.End()

	if count <= 0 {
		count = stimulus.DefaultCount
	}
	if count > s.Config.MaxTaskCount {
		return nil, sterr.ErrInvalidReq.Msg("invalid request: count must be at most %d", s.Config.MaxTaskCount)
	}

	d := stimulus.NormalizeDifficulty(difficulty)
	items := s.Generator.Generate(d, count, perf)

	congruent := 0
	for _, it := range items {
		if it.IsCongruent {
			congruent++
		}
	}
	observability.StimulusItemsGenerated.WithLabelValues(string(d), strconv.FormatBool(true)).Add(float64(congruent))
	observability.StimulusItemsGenerated.WithLabelValues(string(d), strconv.FormatBool(false)).Add(float64(len(items) - congruent))

	span.SetAttributes(
		attribute.String("stroop.difficulty", string(d)),
		attribute.Int("stroop.count", count),
	)

	return items, nil
}
