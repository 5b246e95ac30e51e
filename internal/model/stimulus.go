package model

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type StimulusItem struct {
	ID            int        `json:"id"`
	Text          string     `json:"text"`
	DisplayColor  string     `json:"displayColor"`
	CorrectAnswer string     `json:"correctAnswer"`
	IsCongruent   bool       `json:"isCongruent"`
	Difficulty    Difficulty `json:"difficulty"`
}

// UserPerformance is the caller's recent performance used to tune difficulty.
type UserPerformance struct {
	Accuracy float64 `json:"accuracy"`
	AvgTime  float64 `json:"avgTime"`
}
