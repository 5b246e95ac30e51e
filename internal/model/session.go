package model

// SessionMetrics is the aggregate of a single Stroop test session, as
// measured by the client.
type SessionMetrics struct {
	// CorrMean is the mean correctness of the session. The scoring heuristic
	// reads it on a 0-1 scale while feedback tiers read it as a percentage.
	CorrMean float64 `json:"corr_mean"`
	// RTMean is the mean reaction time in milliseconds.
	RTMean float64 `json:"rt_mean"`
	Age    float64 `json:"age"`
	// Sex is already normalized: 1 for male, 0 for female, 0.5 otherwise.
	Sex float64 `json:"sex"`
	// TimeOfDay is minutes since midnight.
	TimeOfDay   int       `json:"timeofday"`
	RoundTimes  []float64 `json:"roundTimes"`
	Answers     []any     `json:"answers"`
	TotalRounds int       `json:"totalRounds"`

	// Trials is optional per-trial detail.
	Trials []Trial `json:"trials,omitempty"`
}

type Trial struct {
	IsCongruent  bool    `json:"isCongruent"`
	IsCorrect    bool    `json:"isCorrect"`
	ReactionTime float64 `json:"reactionTime"`
}

// Features returns the classifier feature vector in its canonical order.
func (m *SessionMetrics) Features() Features {
	return Features{
		CorrMean:  m.CorrMean,
		RTMean:    m.RTMean,
		Age:       m.Age,
		Sex:       m.Sex,
		TimeOfDay: float64(m.TimeOfDay),
	}
}

// Features is the 5-feature vector a classifier consumes.
type Features struct {
	CorrMean  float64
	RTMean    float64
	Age       float64
	Sex       float64
	TimeOfDay float64
}

// FeatureNames lists feature names in vector order.
var FeatureNames = []string{"corr_mean", "rt_mean", "age", "sex", "timeofday"}

// Env exposes the features by name, for rule expressions.
func (f Features) Env() map[string]any {
	return map[string]any{
		"corr_mean": f.CorrMean,
		"rt_mean":   f.RTMean,
		"age":       f.Age,
		"sex":       f.Sex,
		"timeofday": f.TimeOfDay,
	}
}

func (f Features) Vector() []float64 {
	return []float64{f.CorrMean, f.RTMean, f.Age, f.Sex, f.TimeOfDay}
}

// Label is a binary classifier output.
type Label int

const (
	LabelTypical  Label = 0
	LabelImpaired Label = 1
)
