package offline

import (
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	cliapp "github.com/Ivan-Pavelic/stroop-effect/cmd/app/cli"
	"github.com/Ivan-Pavelic/stroop-effect/internal/service"
)

type CommandDeps struct {
	fx.In

	AnalysisService *service.Analysis
	StimulusService *service.Stimulus
	InsightService  *service.Insight
}

func withDeps(f func(deps CommandDeps) error) error {
	var deps CommandDeps
	stop, err := cliapp.Start(fx.Populate(&deps))
	if err != nil {
		return errors.Wrap(err, "failed to start application")
	}
	defer stop()

	return f(deps)
}

// readInput decodes a JSON document from path, or from stdin when path is "-".
func readInput(stdin io.Reader, path string, dest any) error {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "failed to open input")
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(dest); err != nil {
		return errors.Wrap(err, "failed to decode input")
	}
	return nil
}

func writeOutput(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
