package cli

import (
	"context"

	"go.uber.org/fx"

	"github.com/Ivan-Pavelic/stroop-effect/internal/app"
	"github.com/Ivan-Pavelic/stroop-effect/internal/app/appcontext"
)

// Start builds the application graph in CLI context and starts it without
// serving HTTP. The returned stop function releases its resources.
func Start(module fx.Option) (stop func(), err error) {
	fxApp := app.New(appcontext.Declare(appcontext.EnvCLI), module)
	if err := fxApp.Start(context.Background()); err != nil {
		return nil, err
	}
	return func() {
		_ = fxApp.Stop(context.Background())
	}, nil
}
