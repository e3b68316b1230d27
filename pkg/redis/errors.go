package redis

import "errors"

var (
	ErrEmptyConnectionURL           = errors.New("redis connection URL is not set")
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection URL")
	ErrRedisNotReady                = errors.New("redis did not answer ping before the connect timeout")
	ErrHealthcheckFailed            = errors.New("redis ping failed")
)
