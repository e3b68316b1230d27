// Package httpserver runs an http.Handler with configured timeouts, signal
// handling and graceful shutdown, and provides liveness/readiness handlers.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server", logger.Error(err))
//	}
//
// Run blocks until ctx is cancelled or SIGINT/SIGTERM arrives, then calls
// Shutdown which waits up to ShutdownTimeout for in-flight requests.
//
// HealthCheckHandler with no checks answers liveness probes; with checks it
// answers readiness probes and reports 503 while a dependency is down.
package httpserver
