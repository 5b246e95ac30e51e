package testentry

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/Ivan-Pavelic/stroop-effect/internal/app"
	"github.com/Ivan-Pavelic/stroop-effect/internal/app/appcontext"
)

// Populate starts the server graph for a test and fills targets from it.
// Logs go to the test output.
func Populate(t *testing.T, targets ...any) *fxtest.App {
	t.Helper()

	opts := app.Options(appcontext.Declare(appcontext.EnvServer))
	opts = append(opts,
		// for testing, fx's own logger is too annoying
		fx.NopLogger,
		fx.Populate(targets...),
		fx.Invoke(func() {
			log.Logger = log.Logger.Output(zerolog.NewTestWriter(t))
		}),
	)

	fxApp := fxtest.New(t, opts...)
	fxApp.RequireStart()
	return fxApp
}
