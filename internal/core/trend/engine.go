// Package trend derives longitudinal insights from a history of session
// summaries.
package trend

import (
	"github.com/ahmetb/go-linq/v3"
	"github.com/samber/lo"

	"github.com/Ivan-Pavelic/stroop-effect/internal/core/analysis"
	"github.com/Ivan-Pavelic/stroop-effect/internal/model"
	"github.com/Ivan-Pavelic/stroop-effect/internal/util"
)

const (
	MessageInsufficientHistory = "Play more games to get personalized insights!"
	MessageEstablishingTrend   = "Keep playing to establish your performance trend."
	MessageImproving           = "Your cognitive performance is improving! Keep up the great work."
	MessageDeclining           = "Your recent scores are lower than before. Consider practicing more frequently."
	MessageStable              = "Your performance is consistent. Try challenging yourself with harder difficulty."

	RecommendationBaseline = "Keep practicing to establish your baseline performance."

	InsightAccuracyExcellent = "Your accuracy is excellent - you're great at ignoring distracting information."
	InsightAccuracyLow       = "Focus on accuracy over speed to improve your overall score."
	InsightTimeFast          = "Your response time is very fast - excellent processing speed!"
	InsightTimeSlow          = "Working on response speed could significantly boost your score."
)

const (
	minHistory  = 2
	recentSize  = 3
	trendMargin = 5

	// per-trial consistency is not known at this level
	placeholderConsistency = 70
)

// Insights classifies the trend of history, ordered oldest first.
func Insights(history []model.SessionSummary) model.TrendReport {
	if len(history) < minHistory {
		return model.TrendReport{
			Message:         MessageInsufficientHistory,
			Trend:           model.TrendNeutral,
			Insights:        []string{},
			Recommendations: []string{RecommendationBaseline},
		}
	}

	scores := lo.Map(history, func(h model.SessionSummary, _ int) float64 { return h.CognitiveScore })
	accuracies := lo.Map(history, func(h model.SessionSummary, _ int) float64 { return h.Accuracy })
	times := lo.Map(history, func(h model.SessionSummary, _ int) float64 { return h.AvgTime })

	trend, message := Classify(scores)

	avgAccuracy := util.Mean(accuracies)
	avgTime := util.Mean(times)

	insights := []string{}
	if avgAccuracy >= 85 {
		insights = append(insights, InsightAccuracyExcellent)
	} else if avgAccuracy < 70 {
		insights = append(insights, InsightAccuracyLow)
	}
	if avgTime < 1200 {
		insights = append(insights, InsightTimeFast)
	} else if avgTime > 2000 {
		insights = append(insights, InsightTimeSlow)
	}

	return model.TrendReport{
		Message: message,
		Trend:   trend,
		Statistics: &model.TrendStatistics{
			GamesPlayed:     len(history),
			AverageScore:    util.RoundFloat64(util.Mean(scores), 1),
			BestScore:       lo.Max(scores),
			AverageAccuracy: util.RoundFloat64(avgAccuracy, 1),
			AverageTime:     util.RoundFloat64(avgTime, 1),
		},
		Insights:        insights,
		Recommendations: analysis.Recommend(avgAccuracy, avgTime, placeholderConsistency),
	}
}

// Classify compares the mean of the last three scores against the mean of
// the scores before them. With exactly three scores the first one stands in
// for the older set. Fewer than three scores are neutral.
func Classify(scores []float64) (model.Trend, string) {
	n := len(scores)
	if n < recentSize {
		return model.TrendNeutral, MessageEstablishingTrend
	}

	recent := linq.From(scores[n-recentSize:]).Average()
	older := scores[0]
	if n > recentSize {
		older = linq.From(scores[:n-recentSize]).Average()
	}

	switch {
	case recent > older+trendMargin:
		return model.TrendImproving, MessageImproving
	case recent < older-trendMargin:
		return model.TrendDeclining, MessageDeclining
	default:
		return model.TrendStable, MessageStable
	}
}
