package classifier

import (
	"math"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/Ivan-Pavelic/stroop-effect/internal/model"
)

type logisticSpec struct {
	Features     []string  `json:"features"`
	Mean         []float64 `json:"mean"`
	Scale        []float64 `json:"scale"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	Threshold    *float64  `json:"threshold"`
}

// Logistic is a standardized logistic regression over the session features.
type Logistic struct {
	version string

	// order[i] is the feature vector index read by coefficient i
	order     []int
	mean      []float64
	scale     []float64
	coef      []float64
	intercept float64
	threshold float64
}

var _ Model = (*Logistic)(nil)

func parseLogistic(b []byte, version string) (*Logistic, error) {
	var spec logisticSpec
	if err := json.Unmarshal(b, &spec); err != nil {
		return nil, errors.Wrap(ErrInvalidArtifact, err.Error())
	}

	n := len(model.FeatureNames)
	if len(spec.Coefficients) != n {
		return nil, errors.Wrapf(ErrInvalidArtifact, "expected %d coefficients, got %d", n, len(spec.Coefficients))
	}
	if spec.Mean != nil && len(spec.Mean) != n {
		return nil, errors.Wrapf(ErrInvalidArtifact, "expected %d means, got %d", n, len(spec.Mean))
	}
	if spec.Scale != nil {
		if len(spec.Scale) != n {
			return nil, errors.Wrapf(ErrInvalidArtifact, "expected %d scales, got %d", n, len(spec.Scale))
		}
		for i, s := range spec.Scale {
			if s == 0 {
				return nil, errors.Wrapf(ErrInvalidArtifact, "scale[%d] is zero", i)
			}
		}
	}

	order, err := featureOrder(spec.Features)
	if err != nil {
		return nil, err
	}

	threshold := 0.5
	if spec.Threshold != nil {
		threshold = *spec.Threshold
	}
	if threshold <= 0 || threshold >= 1 {
		return nil, errors.Wrapf(ErrInvalidArtifact, "threshold %v is outside (0, 1)", threshold)
	}

	return &Logistic{
		version:   version,
		order:     order,
		mean:      spec.Mean,
		scale:     spec.Scale,
		coef:      spec.Coefficients,
		intercept: spec.Intercept,
		threshold: threshold,
	}, nil
}

// featureOrder maps artifact feature names onto vector indices. An empty list
// means the canonical order.
func featureOrder(names []string) ([]int, error) {
	n := len(model.FeatureNames)
	order := make([]int, n)
	if len(names) == 0 {
		for i := range order {
			order[i] = i
		}
		return order, nil
	}
	if len(names) != n {
		return nil, errors.Wrapf(ErrInvalidArtifact, "expected %d feature names, got %d", n, len(names))
	}

	index := make(map[string]int, n)
	for i, name := range model.FeatureNames {
		index[name] = i
	}
	seen := make(map[string]bool, n)
	for i, name := range names {
		idx, ok := index[name]
		if !ok {
			return nil, errors.Wrapf(ErrInvalidArtifact, "unknown feature %q", name)
		}
		if seen[name] {
			return nil, errors.Wrapf(ErrInvalidArtifact, "duplicated feature %q", name)
		}
		seen[name] = true
		order[i] = idx
	}
	return order, nil
}

func (m *Logistic) Describe() string {
	return KindLogistic + "@" + m.version
}

// Probability returns the modelled probability of the impaired label.
func (m *Logistic) Probability(features model.Features) float64 {
	x := features.Vector()
	z := m.intercept
	for i, idx := range m.order {
		v := x[idx]
		if m.mean != nil {
			v -= m.mean[i]
		}
		if m.scale != nil {
			v /= m.scale[i]
		}
		z += m.coef[i] * v
	}
	return 1 / (1 + math.Exp(-z))
}

func (m *Logistic) Predict(features model.Features) (model.Label, error) {
	p := m.Probability(features)
	if math.IsNaN(p) {
		return model.LabelTypical, errors.New("classifier: logistic probability is NaN")
	}
	if p >= m.threshold {
		return model.LabelImpaired, nil
	}
	return model.LabelTypical, nil
}
