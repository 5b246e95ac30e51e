package model

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
	TrendNeutral   Trend = "neutral"
)

// SessionSummary is one entry of a caller-supplied session history.
type SessionSummary struct {
	CognitiveScore float64 `json:"cognitiveScore" msgpack:"cognitiveScore"`
	Accuracy       float64 `json:"accuracy" msgpack:"accuracy"`
	AvgTime        float64 `json:"avgTime" msgpack:"avgTime"`
}

type TrendStatistics struct {
	GamesPlayed     int     `json:"gamesPlayed" msgpack:"gamesPlayed"`
	AverageScore    float64 `json:"averageScore" msgpack:"averageScore"`
	BestScore       float64 `json:"bestScore" msgpack:"bestScore"`
	AverageAccuracy float64 `json:"averageAccuracy" msgpack:"averageAccuracy"`
	AverageTime     float64 `json:"averageTime" msgpack:"averageTime"`
}

type TrendReport struct {
	Message         string           `json:"message" msgpack:"message"`
	Trend           Trend            `json:"trend" msgpack:"trend"`
	Statistics      *TrendStatistics `json:"statistics,omitempty" msgpack:"statistics,omitempty"`
	Insights        []string         `json:"insights" msgpack:"insights"`
	Recommendations []string         `json:"recommendations" msgpack:"recommendations"`
}
