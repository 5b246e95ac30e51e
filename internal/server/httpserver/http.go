package httpserver

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/felixge/fgprof"
	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/helmet/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/Ivan-Pavelic/stroop-effect/internal/app/appconfig"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/bininfo"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/fiberstore"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/middlewares"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/observability"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/sterr"
)

var (
	promOnce  sync.Once
	fiberProm *fiberprometheus.FiberPrometheus
)

// prom registers the HTTP collectors once per process and shares them
// between app instances.
func prom() *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		fiberProm = fiberprometheus.New(observability.ServiceName)
	})
	return fiberProm
}

func Create(conf *appconfig.Config, tp trace.TracerProvider, redisClient *redis.Client) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Stroop Test AI Service",
		ServerHeader: fmt.Sprintf("Stroop/%s", bininfo.Version),
		ReadTimeout:  time.Second * 20,
		WriteTimeout: time.Second * 20,
		// allow possibility for graceful shutdown, otherwise app#Shutdown() will block forever
		IdleTimeout:             conf.HTTPServerShutdownTimeout,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          conf.TrustedProxies,
		ErrorHandler:            ErrorHandler,
		JSONEncoder:             json.Marshal,
		JSONDecoder:             json.Unmarshal,
		Immutable:               true,
	})

	app.Use(favicon.New())
	app.Use(fibersentry.New(fibersentry.Config{
		Repanic: true,
		Timeout: time.Second * 5,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  strings.Join(conf.AllowedOrigins, ","),
		AllowMethods:  "GET, POST, OPTIONS",
		AllowHeaders:  "Content-Type, Authorization, X-Requested-With, sentry-trace",
		ExposeHeaders: "Content-Type, " + middlewares.HeaderRequestID,
	}))
	middlewares.Logger(app)
	// the logger chain keeps the request id in the user context only
	app.Use(middlewares.RequestID())

	app.Use(func(c *fiber.Ctx) error {
		// render errors here so the access log sees the final status
		if err := c.Next(); err != nil {
			return ErrorHandler(c, err)
		}
		return nil
	})

	app.Use(helmet.New(helmet.Config{
		HSTSMaxAge:         31356000,
		HSTSPreloadEnabled: true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		PermissionPolicy:   "interest-cohort=()",
	}))
	app.Use(middlewares.InjectI18n())
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			buf := make([]byte, 4096)
			buf = buf[:runtime.Stack(buf, false)]
			log.Error().Msgf("panic: %v\n%s\n", e, buf)
		},
	}))
	fiberprom := prom()
	fiberprom.RegisterAt(app, "/metrics")
	app.Use(fiberprom.Middleware)

	if conf.TracingEnabled {
		app.Use(otelfiber.Middleware(
			otelfiber.WithTracerProvider(tp),
			otelfiber.WithSpanNameFormatter(func(c *fiber.Ctx) string {
				return "HTTP " + c.Method() + " " + c.Route().Path
			}),
		))
	}

	if conf.DevMode {
		log.Info().Msg("Running in DEV mode")
		app.Use(pprof.New())
		app.Get("/debug/fgprof", adaptor.HTTPHandler(fgprof.Handler()))
	} else {
		app.Use(middlewares.EnrichSentry())
	}

	if conf.RateLimitPerMinute > 0 {
		var storage fiber.Storage
		if redisClient != nil {
			// counters shared by every instance
			storage = fiberstore.NewRedis(redisClient, "limiter")
		}
		app.Use(limiter.New(limiter.Config{
			Storage: storage,
			Next: func(c *fiber.Ctx) bool {
				return c.Path() == "/metrics"
			},
			LimitReached: func(c *fiber.Ctx) error {
				return sterr.ErrTooManyRequests
			},
			Max:        conf.RateLimitPerMinute,
			Expiration: time.Minute,
		}))
	}

	return app
}
