// Package stimulus generates Stroop test items whose congruent ratio follows
// the requested difficulty and the user's recent accuracy.
package stimulus

import (
	"strings"

	"github.com/Ivan-Pavelic/stroop-effect/internal/model"
	"github.com/Ivan-Pavelic/stroop-effect/internal/util"
)

const DefaultCount = 10

type Color struct {
	Name string
	Hex  string
}

var Palette = []Color{
	{Name: "RED", Hex: "#EF4444"},
	{Name: "BLUE", Hex: "#3B82F6"},
	{Name: "GREEN", Hex: "#10B981"},
	{Name: "YELLOW", Hex: "#EAB308"},
}

var baseRatios = map[model.Difficulty]float64{
	model.DifficultyEasy:   0.7,
	model.DifficultyMedium: 0.5,
	model.DifficultyHard:   0.2,
}

const (
	ratioStep         = 0.1
	highAccuracyLimit = 85
	lowAccuracyLimit  = 60
)

type Generator struct {
	rng Source
}

func NewGenerator(rng Source) *Generator {
	return &Generator{rng: rng}
}

// NormalizeDifficulty lowercases d and maps an empty value to medium.
func NormalizeDifficulty(d string) model.Difficulty {
	d = strings.ToLower(strings.TrimSpace(d))
	if d == "" {
		return model.DifficultyMedium
	}
	return model.Difficulty(d)
}

// BaseRatio is the congruent ratio of a difficulty. Unknown difficulties are
// treated as medium.
func BaseRatio(d model.Difficulty) float64 {
	if r, ok := baseRatios[d]; ok {
		return r
	}
	return baseRatios[model.DifficultyMedium]
}

// AdjustRatio makes items harder for accurate users and easier for
// struggling ones. The result is always within [0, 1].
func AdjustRatio(ratio float64, perf *model.UserPerformance) float64 {
	if perf != nil {
		if perf.Accuracy > highAccuracyLimit {
			ratio -= ratioStep
		} else if perf.Accuracy < lowAccuracyLimit {
			ratio += ratioStep
		}
	}
	return util.Clamp(ratio, 0, 1)
}

func CongruentRatio(d model.Difficulty, perf *model.UserPerformance) float64 {
	return AdjustRatio(BaseRatio(d), perf)
}

// Generate returns count items with ids 1..count. A non-positive count
// yields an empty batch.
func (g *Generator) Generate(d model.Difficulty, count int, perf *model.UserPerformance) []model.StimulusItem {
	if count <= 0 {
		return []model.StimulusItem{}
	}

	ratio := CongruentRatio(d, perf)
	items := make([]model.StimulusItem, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, g.item(i+1, d, ratio))
	}
	return items
}

func (g *Generator) item(id int, d model.Difficulty, ratio float64) model.StimulusItem {
	n := len(Palette)
	word := g.rng.Intn(n)

	display := word
	congruent := g.rng.Float64() < ratio
	if !congruent {
		// uniform over the other colors
		display = (word + 1 + g.rng.Intn(n-1)) % n
	}

	return model.StimulusItem{
		ID:            id,
		Text:          Palette[word].Name,
		DisplayColor:  Palette[display].Hex,
		CorrectAnswer: Palette[display].Name,
		IsCongruent:   congruent,
		Difficulty:    d,
	}
}
