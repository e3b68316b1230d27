// Package logger builds *slog.Logger instances with functional options and
// injects request-scoped attributes from context.Context.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and wraps it in LogHandlerDecorator, which runs every registered
// ContextExtractor on each Handle call:
//
//	level, err := logger.ParseLevel(os.Getenv("LOG_LEVEL"))
//	if err != nil {
//		return err
//	}
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "perfect-home"),
//		logger.WithLevel(level),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			environment.LoggerExtractor(),
//		),
//	)
//	log.InfoContext(ctx, "booking submitted", logger.Provider("emailjs"))
//
// attr.go holds constructors (Error, Component, Event, Provider, ...) that
// keep attribute keys consistent across packages.
package logger
