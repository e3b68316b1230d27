package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/perfecthome/site/internal/notifier"
	"github.com/perfecthome/site/internal/site"
	"github.com/perfecthome/site/internal/web"
	"github.com/perfecthome/site/pkg/clientip"
	"github.com/perfecthome/site/pkg/config"
	"github.com/perfecthome/site/pkg/environment"
	"github.com/perfecthome/site/pkg/httpserver"
	"github.com/perfecthome/site/pkg/logger"
	"github.com/perfecthome/site/pkg/ratelimiter"
	"github.com/perfecthome/site/pkg/redis"
	"github.com/perfecthome/site/pkg/requestid"
)

// AppConfig holds the process-wide settings.
type AppConfig struct {
	Name     string `env:"APP_NAME" envDefault:"perfecthome"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
}

// bookingRateConfig is the per-IP budget for booking submissions.
type bookingRateConfig struct {
	Bucket ratelimiter.Config `envPrefix:"BOOKING_RATE_"`
}

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.LoadEnv(); err != nil {
		return err
	}

	var (
		appCfg    AppConfig
		serverCfg httpserver.Config
		notifyCfg notifier.Config
		rateCfg   bookingRateConfig
		redisCfg  redis.Config
		siteCfg   site.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&appCfg) },
		func() error { return config.Load(&serverCfg) },
		func() error { return config.Load(&notifyCfg) },
		func() error { return config.Load(&rateCfg) },
		func() error { return config.Load(&redisCfg) },
		func() error { return config.Load(&siteCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	env := environment.Parse(appCfg.Env)
	logOpts := []logger.Option{
		logger.WithEnvironment(env, appCfg.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	}
	if appCfg.LogLevel != "" {
		level, err := logger.ParseLevel(appCfg.LogLevel)
		if err != nil {
			return err
		}
		logOpts = append(logOpts, logger.WithLevel(level))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	content, err := site.Load(siteCfg.ContentFile)
	if err != nil {
		return err
	}

	sender, err := notifier.New(notifyCfg, log)
	if err != nil {
		return err
	}

	var readiness []httpserver.Check
	var store ratelimiter.Store
	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer client.Close()

		store = ratelimiter.NewRedisStore(client)
		readiness = append(readiness, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
	} else {
		mem := ratelimiter.NewMemoryStore()
		defer mem.Close()
		store = mem
	}

	limiter, err := ratelimiter.NewBucket(store, rateCfg.Bucket)
	if err != nil {
		return err
	}

	pages := web.NewService(content, sender,
		web.WithLimiter(limiter),
		web.WithLogger(log),
	)

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(env),
	)
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, readiness...))
	r.Mount("/", pages.Handle())

	log.InfoContext(ctx, "starting server",
		slog.String("addr", serverCfg.Addr),
		logger.Provider(notifyCfg.Provider),
		slog.Bool("redis", redisCfg.Enabled()),
	)

	return httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log)).Run(ctx, r)
}
