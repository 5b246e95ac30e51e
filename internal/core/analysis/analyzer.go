// Package analysis turns the aggregate metrics of one Stroop session into a
// performance report.
package analysis

import (
	"github.com/samber/lo"

	"github.com/Ivan-Pavelic/stroop-effect/internal/model"
	"github.com/Ivan-Pavelic/stroop-effect/internal/util"
)

const (
	heuristicMinAccuracy = 0.6
	heuristicMaxRTMean   = 2500

	impairedScore = 53.5
	typicalScore  = 100

	defaultConsistencyScore = 50

	speedCeilingMs = 3000
	speedRangeMs   = 2500
)

// Classifier yields a label for a feature vector, or ok=false when no label
// can be obtained.
type Classifier interface {
	Classify(features model.Features) (label model.Label, ok bool)
}

type Analyzer struct {
	classifier Classifier
}

// NewAnalyzer returns an analyzer consulting c. A nil c makes every analysis
// use the heuristic label.
func NewAnalyzer(c Classifier) *Analyzer {
	return &Analyzer{classifier: c}
}

// Analyze scores a session. It is deterministic for a given classifier.
func (a *Analyzer) Analyze(m model.SessionMetrics) model.PerformanceReport {
	label, source := a.Label(m)

	accuracy := m.CorrMean
	speed := SpeedScore(m.RTMean)
	consistency := ConsistencyScore(m.RoundTimes)
	improvement := Improvement(m.RoundTimes)

	score := Score(label)
	level, color := LevelOf(score)

	return model.PerformanceReport{
		Label:          label,
		Y:              label,
		CognitiveScore: score,
		Level:          level,
		LevelColor:     color,
		Components: model.ScoreComponents{
			Accuracy:    util.RoundFloat64(accuracy, 1),
			Speed:       util.RoundFloat64(speed, 1),
			Consistency: util.RoundFloat64(consistency, 1),
		},
		WeightedScore:   WeightedScore(accuracy, speed, consistency),
		Improvement:     util.RoundFloat64(improvement, 1),
		Feedback:        Feedback(accuracy, m.RTMean, consistency, improvement),
		Recommendations: Recommend(accuracy, m.RTMean, consistency),
		LabelSource:     source,
		StroopEffect:    StroopEffectOf(m.Trials),
	}
}

// Label consults the classifier and falls back to Heuristic when it is
// unavailable.
func (a *Analyzer) Label(m model.SessionMetrics) (model.Label, model.LabelSource) {
	if a.classifier != nil {
		if label, ok := a.classifier.Classify(m.Features()); ok {
			return label, model.LabelSourceModel
		}
	}
	return Heuristic(m), model.LabelSourceHeuristic
}

func Heuristic(m model.SessionMetrics) model.Label {
	if m.CorrMean < heuristicMinAccuracy || m.RTMean > heuristicMaxRTMean {
		return model.LabelImpaired
	}
	return model.LabelTypical
}

// Score is driven by the label alone. The weighted blend of components is
// reported separately and does not influence it.
func Score(label model.Label) float64 {
	return lo.Ternary(label == model.LabelImpaired, impairedScore, float64(typicalScore))
}

func LevelOf(score float64) (model.Level, model.LevelColor) {
	switch {
	case score >= 85:
		return model.LevelExcellent, model.LevelColorGreen
	case score >= 70:
		return model.LevelGood, model.LevelColorBlue
	case score >= 50:
		return model.LevelAverage, model.LevelColorYellow
	default:
		return model.LevelNeedsImprovement, model.LevelColorOrange
	}
}

// ConsistencyScore maps the sample standard deviation of round times onto
// 0-100. Fewer than two rounds give the neutral 50.
func ConsistencyScore(roundTimes []float64) float64 {
	if len(roundTimes) < 2 {
		return defaultConsistencyScore
	}
	sd := util.StdDev(roundTimes, true)
	return max(0, 100-sd/10)
}

// Improvement is the percentage drop of mean round time from the first half
// of the session to the second. It needs at least four rounds.
func Improvement(roundTimes []float64) float64 {
	if len(roundTimes) < 4 {
		return 0
	}
	half := len(roundTimes) / 2
	first := util.Mean(roundTimes[:half])
	second := util.Mean(roundTimes[half:])
	if first <= 0 {
		return 0
	}
	return (first - second) / first * 100
}

func SpeedScore(rtMean float64) float64 {
	return util.Clamp((speedCeilingMs-rtMean)/speedRangeMs*100, 0, 100)
}

func WeightedScore(accuracy, speed, consistency float64) int {
	return util.Clamp(int(accuracy*0.5+speed*0.3+consistency*0.2), 0, 100)
}

// StroopEffectOf splits accuracy by congruency. It returns nil without trials.
func StroopEffectOf(trials []model.Trial) *model.StroopEffect {
	if len(trials) == 0 {
		return nil
	}

	congruent := lo.Filter(trials, func(t model.Trial, _ int) bool { return t.IsCongruent })
	incongruent := lo.Filter(trials, func(t model.Trial, _ int) bool { return !t.IsCongruent })
	accuracyOf := func(ts []model.Trial) float64 {
		if len(ts) == 0 {
			return 0
		}
		return float64(lo.CountBy(ts, func(t model.Trial) bool { return t.IsCorrect })) / float64(len(ts)) * 100
	}

	c, i := accuracyOf(congruent), accuracyOf(incongruent)
	return &model.StroopEffect{
		CongruentAccuracy:   util.RoundFloat64(c, 1),
		IncongruentAccuracy: util.RoundFloat64(i, 1),
		Interference:        util.RoundFloat64(c-i, 1),
	}
}
