package analysis

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ivan-Pavelic/stroop-effect/internal/model"
)

type fixedClassifier struct {
	label model.Label
	ok    bool
}

func (f fixedClassifier) Classify(model.Features) (model.Label, bool) {
	return f.label, f.ok
}

func TestHeuristicLabelAndScore(t *testing.T) {
	cases := []struct {
		name      string
		corrMean  float64
		rtMean    float64
		wantLabel model.Label
		wantScore float64
	}{
		{"low accuracy", 0.59, 1000, model.LabelImpaired, 53.5},
		{"slow", 0.95, 2501, model.LabelImpaired, 53.5},
		{"both", 0.2, 4000, model.LabelImpaired, 53.5},
		{"at thresholds", 0.6, 2500, model.LabelTypical, 100},
		{"typical", 0.9, 900, model.LabelTypical, 100},
	}

	for _, unavailable := range []Classifier{nil, fixedClassifier{ok: false}} {
		a := NewAnalyzer(unavailable)
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				r := a.Analyze(model.SessionMetrics{CorrMean: c.corrMean, RTMean: c.rtMean})
				assert.Equal(t, c.wantLabel, r.Label)
				assert.Equal(t, c.wantLabel, r.Y)
				assert.Equal(t, c.wantScore, r.CognitiveScore)
				assert.Equal(t, model.LabelSourceHeuristic, r.LabelSource)
			})
		}
	}
}

func TestClassifierLabelWins(t *testing.T) {
	a := NewAnalyzer(fixedClassifier{label: model.LabelImpaired, ok: true})

	r := a.Analyze(model.SessionMetrics{CorrMean: 0.95, RTMean: 800})
	assert.Equal(t, model.LabelImpaired, r.Label)
	assert.Equal(t, 53.5, r.CognitiveScore)
	assert.Equal(t, model.LevelAverage, r.Level)
	assert.Equal(t, model.LevelColorYellow, r.LevelColor)
	assert.Equal(t, model.LabelSourceModel, r.LabelSource)
}

func TestLevelOf(t *testing.T) {
	cases := []struct {
		score float64
		level model.Level
		color model.LevelColor
	}{
		{100, model.LevelExcellent, model.LevelColorGreen},
		{85, model.LevelExcellent, model.LevelColorGreen},
		{84.9, model.LevelGood, model.LevelColorBlue},
		{70, model.LevelGood, model.LevelColorBlue},
		{69.9, model.LevelAverage, model.LevelColorYellow},
		{53.5, model.LevelAverage, model.LevelColorYellow},
		{50, model.LevelAverage, model.LevelColorYellow},
		{49.9, model.LevelNeedsImprovement, model.LevelColorOrange},
		{0, model.LevelNeedsImprovement, model.LevelColorOrange},
	}
	for _, c := range cases {
		level, color := LevelOf(c.score)
		assert.Equal(t, c.level, level, "score %v", c.score)
		assert.Equal(t, c.color, color, "score %v", c.score)
	}
}

func TestConsistencyScore(t *testing.T) {
	assert.Equal(t, 50.0, ConsistencyScore(nil))
	assert.Equal(t, 50.0, ConsistencyScore([]float64{}))
	assert.Equal(t, 50.0, ConsistencyScore([]float64{1200}))

	assert.Equal(t, 100.0, ConsistencyScore([]float64{1000, 1000}))
	assert.InDelta(t, 85.858, ConsistencyScore([]float64{1000, 1200}), 1e-3)
	assert.Equal(t, 0.0, ConsistencyScore([]float64{0, 2000}))
}

func TestImprovement(t *testing.T) {
	assert.Equal(t, 0.0, Improvement(nil))
	assert.Equal(t, 0.0, Improvement([]float64{1000}))
	assert.Equal(t, 0.0, Improvement([]float64{2000, 1000, 500}))

	assert.InDelta(t, 50.0, Improvement([]float64{1000, 1000, 500, 500}), 1e-9)
	assert.InDelta(t, -100.0, Improvement([]float64{500, 500, 1000, 1000}), 1e-9)
	// odd length: first half is the floor split
	assert.InDelta(t, 25.926, Improvement([]float64{1000, 800, 800, 600, 600}), 1e-3)
	// zero first half is guarded
	assert.Equal(t, 0.0, Improvement([]float64{0, 0, 100, 100}))
}

func TestSpeedScore(t *testing.T) {
	assert.Equal(t, 100.0, SpeedScore(500))
	assert.Equal(t, 100.0, SpeedScore(100))
	assert.InDelta(t, 50.0, SpeedScore(1750), 1e-9)
	assert.Equal(t, 0.0, SpeedScore(3000))
	assert.Equal(t, 0.0, SpeedScore(4000))
}

func TestRecommend(t *testing.T) {
	assert.Equal(t, encouragementRecommendations, Recommend(90, 1000, 80))
	// thresholds are strict
	assert.Len(t, Recommend(80, 1500, 70), 2)

	all := Recommend(50, 2000, 50)
	require.Len(t, all, 6)
	assert.Equal(t, accuracyRecommendations, all[0:2])
	assert.Equal(t, speedRecommendations, all[2:4])
	assert.Equal(t, consistencyRecommendations, all[4:6])

	assert.Equal(t, speedRecommendations, Recommend(95, 1600, 90))
}

func TestFeedback(t *testing.T) {
	assert.Equal(t,
		FeedbackAccuracyExcellent+" "+FeedbackSpeedFast+" "+FeedbackConsistencyHigh+" "+FeedbackImproved,
		Feedback(95, 800, 90, 20),
	)
	assert.Equal(t,
		FeedbackAccuracyGood+" "+FeedbackSpeedGood+" "+FeedbackConsistencyFair,
		Feedback(75, 1500, 65, 10),
	)
	assert.Equal(t,
		FeedbackAccuracyLow+" "+FeedbackSpeedSlow+" "+FeedbackConsistencyLow+" "+FeedbackDeclined,
		Feedback(50, 2500, 10, -20),
	)
}

func TestAnalyzeReport(t *testing.T) {
	a := NewAnalyzer(nil)
	r := a.Analyze(model.SessionMetrics{
		CorrMean:   0.9,
		RTMean:     1200,
		Age:        50,
		Sex:        0.5,
		TimeOfDay:  720,
		RoundTimes: []float64{1000, 1100, 1200, 1300},
	})

	assert.Equal(t, model.LabelTypical, r.Label)
	assert.Equal(t, 100.0, r.CognitiveScore)
	assert.Equal(t, model.LevelExcellent, r.Level)
	assert.Equal(t, model.LevelColorGreen, r.LevelColor)
	assert.Equal(t, model.ScoreComponents{Accuracy: 0.9, Speed: 72, Consistency: 87.1}, r.Components)
	assert.Equal(t, -19.0, r.Improvement)
	assert.Equal(t, 39, r.WeightedScore)
	assert.Equal(t,
		FeedbackAccuracyLow+" "+FeedbackSpeedGood+" "+FeedbackConsistencyHigh+" "+FeedbackDeclined,
		r.Feedback,
	)
	assert.Equal(t, accuracyRecommendations, r.Recommendations)
	assert.Nil(t, r.StroopEffect)
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	a := NewAnalyzer(nil)
	m := model.SessionMetrics{
		CorrMean:   0.72,
		RTMean:     1830,
		Age:        31,
		Sex:        1,
		TimeOfDay:  1290,
		RoundTimes: []float64{1900, 2100, 1750, 1600, 1800, 1500},
		Trials: []model.Trial{
			{IsCongruent: true, IsCorrect: true},
			{IsCongruent: false, IsCorrect: false},
		},
	}

	first, err := json.Marshal(a.Analyze(m))
	require.NoError(t, err)
	second, err := json.Marshal(a.Analyze(m))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRecommendationsNeverEmpty(t *testing.T) {
	a := NewAnalyzer(nil)
	for _, m := range []model.SessionMetrics{
		{},
		{CorrMean: 100, RTMean: 500, RoundTimes: []float64{500, 500}},
		{CorrMean: 10, RTMean: 5000, RoundTimes: []float64{100, 5000, 200, 6000}},
	} {
		assert.NotEmpty(t, a.Analyze(m).Recommendations)
	}
}

func TestStroopEffectOf(t *testing.T) {
	assert.Nil(t, StroopEffectOf(nil))

	trials := []model.Trial{
		{IsCongruent: true, IsCorrect: true},
		{IsCongruent: true, IsCorrect: true},
		{IsCongruent: true, IsCorrect: true},
		{IsCongruent: true, IsCorrect: true},
		{IsCongruent: false, IsCorrect: true},
		{IsCongruent: false, IsCorrect: false},
		{IsCongruent: false, IsCorrect: true},
		{IsCongruent: false, IsCorrect: false},
	}
	assert.Equal(t, &model.StroopEffect{
		CongruentAccuracy:   100,
		IncongruentAccuracy: 50,
		Interference:        50,
	}, StroopEffectOf(trials))

	onlyIncongruent := []model.Trial{{IsCongruent: false, IsCorrect: true}}
	assert.Equal(t, &model.StroopEffect{
		CongruentAccuracy:   0,
		IncongruentAccuracy: 100,
		Interference:        -100,
	}, StroopEffectOf(onlyIncongruent))
}
