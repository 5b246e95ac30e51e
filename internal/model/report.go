package model

type Level string

const (
	LevelExcellent        Level = "Excellent"
	LevelGood             Level = "Good"
	LevelAverage          Level = "Average"
	LevelNeedsImprovement Level = "Needs Improvement"
)

type LevelColor string

const (
	LevelColorGreen  LevelColor = "green"
	LevelColorBlue   LevelColor = "blue"
	LevelColorYellow LevelColor = "yellow"
	LevelColorOrange LevelColor = "orange"
)

type LabelSource string

const (
	LabelSourceModel     LabelSource = "model"
	LabelSourceHeuristic LabelSource = "heuristic"
)

type ScoreComponents struct {
	Accuracy    float64 `json:"accuracy" msgpack:"accuracy"`
	Speed       float64 `json:"speed" msgpack:"speed"`
	Consistency float64 `json:"consistency" msgpack:"consistency"`
}

type StroopEffect struct {
	CongruentAccuracy   float64 `json:"congruentAccuracy" msgpack:"congruentAccuracy"`
	IncongruentAccuracy float64 `json:"incongruentAccuracy" msgpack:"incongruentAccuracy"`
	// Interference is the accuracy cost of incongruent items, in percentage points.
	Interference float64 `json:"interference" msgpack:"interference"`
}

type PerformanceReport struct {
	Label Label `json:"label" msgpack:"label"`
	// Y mirrors Label under the field name older clients read.
	Y               Label           `json:"y" msgpack:"y"`
	CognitiveScore  float64         `json:"cognitiveScore" msgpack:"cognitiveScore"`
	Level           Level           `json:"level" msgpack:"level"`
	LevelColor      LevelColor      `json:"levelColor" msgpack:"levelColor"`
	Components      ScoreComponents `json:"components" msgpack:"components"`
	WeightedScore   int             `json:"weightedScore" msgpack:"weightedScore"`
	Improvement     float64         `json:"improvement" msgpack:"improvement"`
	Feedback        string          `json:"feedback" msgpack:"feedback"`
	Recommendations []string        `json:"recommendations" msgpack:"recommendations"`
	LabelSource     LabelSource     `json:"classifierSource" msgpack:"classifierSource"`
	StroopEffect    *StroopEffect   `json:"stroopEffect,omitempty" msgpack:"stroopEffect,omitempty"`
}
