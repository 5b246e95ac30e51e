package classifier

import (
	"strings"

	"github.com/antonmedv/expr"
	"github.com/antonmedv/expr/vm"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/Ivan-Pavelic/stroop-effect/internal/model"
)

// Rule evaluates a compiled expression over the named features. The
// expression yields a bool (true is impaired) or a 0/1 number.
type Rule struct {
	version    string
	expression string
	program    *vm.Program
}

var _ Model = (*Rule)(nil)

func parseRule(b []byte, version string) (*Rule, error) {
	var spec struct {
		Expression string `json:"expression"`
	}
	if err := json.Unmarshal(b, &spec); err != nil {
		return nil, errors.Wrap(ErrInvalidArtifact, err.Error())
	}

	return NewRule(spec.Expression, version)
}

func NewRule(expression, version string) (*Rule, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, errors.Wrap(ErrInvalidArtifact, "empty rule expression")
	}

	program, err := expr.Compile(expression, expr.Env(model.Features{}.Env()))
	if err != nil {
		return nil, errors.Wrap(ErrInvalidArtifact, err.Error())
	}

	return &Rule{
		version:    version,
		expression: expression,
		program:    program,
	}, nil
}

func (r *Rule) Describe() string {
	return KindRule + "@" + r.version
}

func (r *Rule) Predict(features model.Features) (model.Label, error) {
	out, err := expr.Run(r.program, features.Env())
	if err != nil {
		return model.LabelTypical, errors.Wrap(err, "classifier: rule evaluation failed")
	}

	switch v := out.(type) {
	case bool:
		if v {
			return model.LabelImpaired, nil
		}
		return model.LabelTypical, nil
	case int:
		return model.Label(v), nil
	case float64:
		if v != 0 && v != 1 {
			return model.LabelTypical, errors.Errorf("classifier: rule returned non-binary number %v", v)
		}
		return model.Label(int(v)), nil
	default:
		return model.LabelTypical, errors.Errorf("classifier: rule returned unsupported type %T", out)
	}
}
