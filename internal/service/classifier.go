package service

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/Ivan-Pavelic/stroop-effect/internal/app/appconfig"
	"github.com/Ivan-Pavelic/stroop-effect/internal/core/classifier"
)

// NewClassifier loads the classifier artifact once. A missing or broken
// artifact leaves the adapter unavailable and analysis on the heuristic.
func NewClassifier(conf *appconfig.Config) *classifier.Adapter {
	m, err := classifier.Load(conf.ModelPath)
	switch {
	case errors.Is(err, classifier.ErrArtifactNotFound):
		log.Warn().
			Str("evt.name", "classifier.load.missing").
			Str("path", conf.ModelPath).
			Bool("requireModel", conf.RequireModel).
			Msg("classifier artifact not found, using heuristic labels")
		return classifier.NewAdapter(nil)
	case err != nil:
		log.Error().
			Err(err).
			Str("evt.name", "classifier.load.failed").
			Str("path", conf.ModelPath).
			Msg("failed to load classifier artifact, using heuristic labels")
		return classifier.NewAdapter(nil)
	}

	log.Info().
		Str("evt.name", "classifier.load.ok").
		Str("path", conf.ModelPath).
		Str("model", m.Describe()).
		Msg("classifier artifact loaded")
	return classifier.NewAdapter(m)
}
