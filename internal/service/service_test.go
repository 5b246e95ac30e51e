package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ivan-Pavelic/stroop-effect/internal/app/appconfig"
	"github.com/Ivan-Pavelic/stroop-effect/internal/model"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/cache"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/sterr"
)

func testConfig(modify func(c *appconfig.ConfigSpec)) *appconfig.Config {
	spec := appconfig.ConfigSpec{
		ModelPath:      "testdata/does_not_exist.json",
		StimulusSeed:   42,
		MaxTaskCount:   1000,
		ResultCacheTTL: time.Minute,
	}
	if modify != nil {
		modify(&spec)
	}
	return &appconfig.Config{ConfigSpec: spec}
}

func metrics() model.SessionMetrics {
	return model.SessionMetrics{
		CorrMean:    0.9,
		RTMean:      1200,
		Age:         50,
		Sex:         0.5,
		TimeOfDay:   720,
		RoundTimes:  []float64{1000, 1100, 1300, 1400},
		Answers:     []any{},
		TotalRounds: 4,
	}
}

func TestNewClassifier(t *testing.T) {
	assert.False(t, NewClassifier(testConfig(nil)).Available())

	a := NewClassifier(testConfig(func(c *appconfig.ConfigSpec) {
		c.ModelPath = "../core/classifier/testdata/unknown_kind.json"
	}))
	assert.False(t, a.Available())

	a = NewClassifier(testConfig(func(c *appconfig.ConfigSpec) {
		c.ModelPath = "../core/classifier/testdata/rule.json"
	}))
	assert.True(t, a.Available())
}

func TestAnalysisHeuristicFallback(t *testing.T) {
	conf := testConfig(nil)
	s := NewAnalysis(conf, NewClassifier(conf), cache.NewMemoryStore(), NewPublisher(nil))

	report, err := s.Analyze(context.Background(), metrics())
	require.NoError(t, err)
	assert.Equal(t, model.LabelTypical, report.Label)
	assert.Equal(t, model.LabelSourceHeuristic, report.LabelSource)
	assert.Equal(t, 100.0, report.CognitiveScore)

	again, err := s.Analyze(context.Background(), metrics())
	require.NoError(t, err)
	assert.Equal(t, report, again)
}

func TestAnalysisRequireModel(t *testing.T) {
	conf := testConfig(func(c *appconfig.ConfigSpec) { c.RequireModel = true })
	s := NewAnalysis(conf, NewClassifier(conf), cache.NewMemoryStore(), NewPublisher(nil))

	_, err := s.Analyze(context.Background(), metrics())
	assert.ErrorIs(t, err, sterr.ErrModelUnavailable)
}

func TestAnalysisWithModel(t *testing.T) {
	conf := testConfig(func(c *appconfig.ConfigSpec) {
		c.ModelPath = "../core/classifier/testdata/rule.json"
		c.RequireModel = true
	})
	s := NewAnalysis(conf, NewClassifier(conf), cache.NewMemoryStore(), NewPublisher(nil))

	m := metrics()
	m.RTMean = 2600
	report, err := s.Analyze(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, model.LabelImpaired, report.Label)
	assert.Equal(t, model.LabelSourceModel, report.LabelSource)
	assert.Equal(t, 53.5, report.CognitiveScore)
}

func TestStimulusGenerate(t *testing.T) {
	s := NewStimulus(testConfig(nil))

	items, err := s.Generate(context.Background(), "", 0, nil)
	require.NoError(t, err)
	assert.Len(t, items, 10)
	assert.Equal(t, model.DifficultyMedium, items[0].Difficulty)

	items, err = s.Generate(context.Background(), "HARD", 25, &model.UserPerformance{Accuracy: 95})
	require.NoError(t, err)
	assert.Len(t, items, 25)
	assert.Equal(t, model.DifficultyHard, items[0].Difficulty)

	_, err = s.Generate(context.Background(), "easy", 1001, nil)
	var se *sterr.StroopError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, sterr.CodeInvalidRequest, se.ErrorCode)
}

func TestInsights(t *testing.T) {
	s := NewInsight(testConfig(nil), cache.NewMemoryStore(), NewPublisher(nil))

	r, err := s.Insights(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.TrendNeutral, r.Trend)
	assert.NotNil(t, r.Insights)
	assert.Nil(t, r.Statistics)

	history := []model.SessionSummary{
		{CognitiveScore: 53.5, Accuracy: 60, AvgTime: 2100},
		{CognitiveScore: 53.5, Accuracy: 65, AvgTime: 2000},
		{CognitiveScore: 100, Accuracy: 80, AvgTime: 1500},
		{CognitiveScore: 100, Accuracy: 85, AvgTime: 1400},
	}
	r, err = s.Insights(context.Background(), history)
	require.NoError(t, err)
	assert.Equal(t, model.TrendImproving, r.Trend)
	require.NotNil(t, r.Statistics)
	assert.Equal(t, 4, r.Statistics.GamesPlayed)

	cached, err := s.Insights(context.Background(), history)
	require.NoError(t, err)
	assert.Equal(t, r, cached)
}

func TestHealthStatusWithoutDependencies(t *testing.T) {
	h := NewHealth(NewClassifier(testConfig(nil)), nil, nil)
	status := h.Status(context.Background())

	assert.False(t, status.ModelLoaded)
	assert.Equal(t, "none", status.Model)
	assert.Equal(t, map[string]string{"redis": DependencyDisabled, "nats": DependencyDisabled}, status.Dependencies)
}

func TestStimulusWithSeed(t *testing.T) {
	s := NewStimulus(testConfig(nil))

	a, err := s.WithSeed(7).Generate(context.Background(), "easy", 30, nil)
	require.NoError(t, err)
	b, err := s.WithSeed(7).Generate(context.Background(), "easy", 30, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
