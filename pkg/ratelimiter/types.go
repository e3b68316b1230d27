package ratelimiter

import "time"

// Result contains the result of a rate limit check.
type Result struct {
	Limit     int       // bucket capacity
	Remaining int       // tokens left; negative when the request was denied
	ResetAt   time.Time // next refill
}

func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait before the next request, or 0 if allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(time.Until(r.ResetAt), 0)
}

// Config defines the token bucket. The env tags are relative so callers can
// embed it with an envPrefix, e.g. `envPrefix:"BOOKING_RATE_"`.
type Config struct {
	Capacity       int           `env:"CAPACITY" envDefault:"5"`   // burst size
	RefillRate     int           `env:"REFILL" envDefault:"1"`     // tokens added per interval
	RefillInterval time.Duration `env:"INTERVAL" envDefault:"1m"` // refill period
}

func (c Config) validate() error {
	switch {
	case c.Capacity <= 0:
		return errInvalid("capacity must be positive, got %d", c.Capacity)
	case c.RefillRate <= 0:
		return errInvalid("refill rate must be positive, got %d", c.RefillRate)
	case c.RefillInterval <= 0:
		return errInvalid("refill interval must be positive, got %v", c.RefillInterval)
	}
	return nil
}

// fullRefill is how long an idle bucket takes to become full again; state
// older than that is equivalent to a fresh bucket.
func (c Config) fullRefill() time.Duration {
	intervals := (c.Capacity + c.RefillRate - 1) / c.RefillRate
	return time.Duration(intervals+1) * c.RefillInterval
}
