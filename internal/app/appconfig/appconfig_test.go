package appconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ivan-Pavelic/stroop-effect/internal/app/appcontext"
)

func TestTracingExportersDecode(t *testing.T) {
	var e TracingExporters
	require.NoError(t, e.Decode("otlp, Stdout,"))
	assert.Equal(t, TracingExporters{"otlp", "stdout"}, e)

	assert.Error(t, e.Decode("zipkin"))
}

func TestParseDefaults(t *testing.T) {
	t.Setenv("STROOP_SERVICE_ADDRESS", "127.0.0.1:0")
	t.Setenv("STROOP_REQUIRE_MODEL", "true")

	conf, err := Parse(appcontext.Declare(appcontext.EnvCLI))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:0", conf.ServiceAddress)
	assert.True(t, conf.RequireModel)
	assert.Equal(t, 10*time.Minute, conf.ResultCacheTTL)
	assert.Equal(t, 1000, conf.MaxTaskCount)
	assert.Equal(t, appcontext.EnvCLI, conf.AppContext.Env)

	t.Setenv("STROOP_TRACING_EXPORTERS", "zipkin")
	_, err = Parse(appcontext.Declare(appcontext.EnvCLI))
	assert.Error(t, err)
}
