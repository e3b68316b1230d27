// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - the default .env file is read once, if present, before the first parse;
//     LoadEnv reads additional files explicitly.
//   - Load parses the environment into any struct annotated with `env` tags.
//   - every config type is parsed once and cached for the lifetime of the
//     process, so each package can call Load for its own section without
//     re-parsing.
//
// # Usage
//
//	type Config struct {
//	    Recipient string `env:"BOOKING_RECIPIENT,required"`
//	    Provider  string `env:"BOOKING_PROVIDER" envDefault:"emailjs"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
//   - ErrParsingConfig: env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile: a named .env file passed to LoadEnv could not be read.
//   - ErrNilPointer: nil pointer passed to Load or MustLoad.
//
// Tests that change the environment call Reset to drop cached values.
package config
