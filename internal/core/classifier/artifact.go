package classifier

import (
	"os"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"golang.org/x/mod/semver"
)

const (
	KindLogistic = "logistic"
	KindRule     = "rule"
)

var (
	ErrArtifactNotFound = errors.New("classifier: artifact not found")
	ErrInvalidArtifact  = errors.New("classifier: invalid artifact")
	ErrUnknownKind      = errors.New("classifier: unknown artifact kind")
)

// Load reads and parses the artifact at path.
func Load(path string) (Model, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(ErrArtifactNotFound, path)
	} else if err != nil {
		return nil, errors.Wrap(err, "classifier: failed to read artifact")
	}

	return Parse(b)
}

// Parse decodes a JSON artifact. The "kind" field selects the model family
// and "version" must be a v-prefixed semantic version.
func Parse(b []byte) (Model, error) {
	if !gjson.ValidBytes(b) {
		return nil, errors.Wrap(ErrInvalidArtifact, "malformed json")
	}

	version := gjson.GetBytes(b, "version").String()
	if !semver.IsValid(version) {
		return nil, errors.Wrapf(ErrInvalidArtifact, "version %q is not a valid semantic version", version)
	}

	switch kind := gjson.GetBytes(b, "kind").String(); kind {
	case KindLogistic:
		return parseLogistic(b, version)
	case KindRule:
		return parseRule(b, version)
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
	}
}
