// Package classifier wraps an optional binary classifier behind an adapter
// that never fails: any problem is reported as an unavailable label.
package classifier

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Ivan-Pavelic/stroop-effect/internal/model"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/observability"
)

// Model is a loaded classification capability. Implementations must be safe
// for concurrent use.
type Model interface {
	Predict(features model.Features) (model.Label, error)
	// Describe returns a short "kind@version" identifier.
	Describe() string
}

type Adapter struct {
	model Model
}

// NewAdapter wraps m. A nil m yields an adapter that is always unavailable.
func NewAdapter(m Model) *Adapter {
	return &Adapter{model: m}
}

func (a *Adapter) Available() bool {
	return a != nil && a.model != nil
}

func (a *Adapter) Describe() string {
	if !a.Available() {
		return "none"
	}
	return a.model.Describe()
}

// Classify returns the model's label for features. ok is false when no model
// is loaded or the prediction could not be obtained.
func (a *Adapter) Classify(features model.Features) (label model.Label, ok bool) {
	if !a.Available() {
		return model.LabelTypical, false
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("evt.name", "classifier.predict.panic").
				Str("model", a.model.Describe()).
				Str("panic", fmt.Sprint(r)).
				Msg("classifier panicked during prediction")
			observability.ClassifierFailures.WithLabelValues("panic").Inc()
			label, ok = model.LabelTypical, false
		}
	}()

	l, err := a.model.Predict(features)
	if err != nil {
		log.Warn().
			Err(err).
			Str("evt.name", "classifier.predict.failed").
			Str("model", a.model.Describe()).
			Msg("classifier prediction failed")
		observability.ClassifierFailures.WithLabelValues("error").Inc()
		return model.LabelTypical, false
	}

	if l != model.LabelTypical && l != model.LabelImpaired {
		log.Warn().
			Str("evt.name", "classifier.predict.invalid").
			Str("model", a.model.Describe()).
			Int("label", int(l)).
			Msg("classifier returned a non-binary label")
		observability.ClassifierFailures.WithLabelValues("invalid_label").Inc()
		return model.LabelTypical, false
	}

	return l, true
}
