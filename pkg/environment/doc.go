// Package environment propagates the application environment (development,
// staging, production) through context.Context, HTTP requests and logs.
//
// Parse turns an APP_ENV value into an Environment. Middleware stores it on
// every request context, FromContext and the Is* predicates read it back, and
// LoggerExtractor adds it to slog records:
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	r := chi.NewRouter()
//	r.Use(environment.Middleware(env))
//
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//
// Missing values result in the zero value ("").
package environment
