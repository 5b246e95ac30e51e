package appconfig

import (
	"time"

	"github.com/Ivan-Pavelic/stroop-effect/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address would listen on for serving service requests.
	ServiceAddress string `required:"true" split_words:"true" default:":5001"`

	// AllowedOrigins is the list of origins allowed by CORS.
	AllowedOrigins []string `split_words:"true" default:"http://localhost:3000,http://localhost:5173"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is the path of the rotated log file.
	LogFile string `split_words:"true" default:"logs/app.log"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// provide a more contextual message when encountered a panic. See internal/server/httpserver/http.go for the
	// actual implementation details.
	DevMode bool `split_words:"true"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing.
	TracingEnabled bool `split_words:"true"`

	// TracingExporters to indicate which exporters to use for tracing.
	// Valid values are: jaeger, otlp, stdout (for debug).
	TracingExporters TracingExporters `split_words:"true" default:"otlp"`

	// TracingSampleRate to indicate the sampling rate for tracing.
	// Valid values are: 0.0 (disabled), 1.0 (all traces), or a value between 0.0 and 1.0 (sampling rate).
	TracingSampleRate float64 `split_words:"true" default:"1.0"`

	// ModelPath is the path of the classifier artifact. A missing artifact is not fatal: analysis then
	// labels every session with the built-in heuristic.
	ModelPath string `split_words:"true" default:"models/stroop_model.json"`

	// RequireModel makes analysis fail with MODEL_UNAVAILABLE instead of falling back to the heuristic
	// when no classifier artifact is loaded.
	RequireModel bool `split_words:"true" default:"false"`

	// StimulusSeed seeds the stimulus generator. 0 seeds it from the current time.
	StimulusSeed int64 `split_words:"true" default:"0"`

	// MaxTaskCount is the maximum number of stimulus items a single request may ask for.
	MaxTaskCount int `split_words:"true" default:"1000"`

	// infrastructure components connection instructions

	// RedisURL is the URL of the Redis server used for the result cache. See
	// https://pkg.go.dev/github.com/redis/go-redis/v9#ParseURL for more information on how to construct a Redis URL.
	// Leaving this empty keeps the result cache in process memory.
	RedisURL string `split_words:"true"`

	// ResultCacheTTL is how long analysis and insight results are memoized.
	ResultCacheTTL time.Duration `split_words:"true" default:"10m"`

	// NatsURL is the URL of the NATS server. See https://pkg.go.dev/github.com/nats-io/nats.go#Connect
	// for more information on how to construct a NATS URL. Leaving this empty disables event publishing.
	NatsURL string `split_words:"true"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// DatadogProfilerEnabled to indicate whether to enable Datadog profiler.
	DatadogProfilerEnabled bool `split_words:"true" default:"false"`

	// DatadogProfilerAgentAddress is the address of the Datadog profiler agent.
	DatadogProfilerAgentAddress string `split_words:"true" default:"localhost:8126"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"10s"`

	// RateLimitPerMinute is the number of requests a single IP may issue per minute. 0 disables the limiter.
	RateLimitPerMinute int `split_words:"true" default:"600"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
