package types

import (
	"gopkg.in/guregu/null.v3"

	"github.com/Ivan-Pavelic/stroop-effect/internal/model"
)

const (
	DefaultRTMean      = 1000
	DefaultAge         = 50
	DefaultTimeOfDay   = 720
	DefaultTotalRounds = 10
)

// AnalyzeRequest is a session submitted for analysis. The camelCase fields
// are accepted as aliases of their snake_case counterparts.
type AnalyzeRequest struct {
	CorrMean null.Float `json:"corr_mean" validate:"omitempty,gte=0,lte=100"`
	Accuracy null.Float `json:"accuracy" validate:"omitempty,gte=0,lte=100"`

	// pointers: a present zero must fail gt=0
	RTMean  *float64 `json:"rt_mean" validate:"omitempty,gt=0"`
	AvgTime *float64 `json:"avgTime" validate:"omitempty,gt=0"`

	Age          null.Float `json:"age" validate:"omitempty,gte=0,lte=150"`
	Sex          Sex        `json:"sex" validate:"omitempty,gte=0,lte=1"`
	TimeOfDay    null.Int   `json:"timeofday" validate:"omitempty,gte=0,lte=1439"`
	TimeOfDayAlt null.Int   `json:"timeOfDay" validate:"omitempty,gte=0,lte=1439"`

	RoundTimes  []float64     `json:"roundTimes" validate:"omitempty,max=10000,dive,gte=0"`
	Answers     []any         `json:"answers" validate:"omitempty,max=10000"`
	TotalRounds null.Int      `json:"totalRounds" validate:"omitempty,gte=0"`
	Trials      []model.Trial `json:"trials" validate:"omitempty,max=10000"`
}

// Metrics applies the documented defaults and aliases.
func (r *AnalyzeRequest) Metrics() model.SessionMetrics {
	m := model.SessionMetrics{
		CorrMean:    firstValidFloat(0, r.CorrMean, r.Accuracy),
		RTMean:      DefaultRTMean,
		Age:         firstValidFloat(DefaultAge, r.Age),
		Sex:         r.Sex.Float64(),
		TimeOfDay:   int(firstValidInt(DefaultTimeOfDay, r.TimeOfDay, r.TimeOfDayAlt)),
		RoundTimes:  r.RoundTimes,
		Answers:     r.Answers,
		TotalRounds: int(firstValidInt(DefaultTotalRounds, r.TotalRounds)),
		Trials:      r.Trials,
	}
	if r.RTMean != nil {
		m.RTMean = *r.RTMean
	} else if r.AvgTime != nil {
		m.RTMean = *r.AvgTime
	}
	if m.RoundTimes == nil {
		m.RoundTimes = []float64{}
	}
	if m.Answers == nil {
		m.Answers = []any{}
	}
	return m
}

type GenerateTasksRequest struct {
	Difficulty      null.String            `json:"difficulty" validate:"omitempty,caseinsensitiveoneof=easy medium hard"`
	Count           *int                   `json:"count" validate:"omitempty,gte=1"`
	UserPerformance *UserPerformanceRequest `json:"userPerformance"`
}

type UserPerformanceRequest struct {
	Accuracy null.Float `json:"accuracy" validate:"omitempty,gte=0,lte=100"`
	AvgTime  null.Float `json:"avgTime" validate:"omitempty,gte=0"`
}

// Performance returns nil when no accuracy was reported, leaving the
// difficulty ratio unadjusted.
func (r *UserPerformanceRequest) Performance() *model.UserPerformance {
	if r == nil || !r.Accuracy.Valid {
		return nil
	}
	return &model.UserPerformance{
		Accuracy: r.Accuracy.Float64,
		AvgTime:  r.AvgTime.ValueOrZero(),
	}
}

type InsightsRequest struct {
	GameHistory []model.SessionSummary `json:"gameHistory" validate:"max=1000,dive"`
}

func firstValidFloat(fallback float64, candidates ...null.Float) float64 {
	for _, c := range candidates {
		if c.Valid {
			return c.Float64
		}
	}
	return fallback
}

func firstValidInt(fallback int64, candidates ...null.Int) int64 {
	for _, c := range candidates {
		if c.Valid {
			return c.Int64
		}
	}
	return fallback
}
