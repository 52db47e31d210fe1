package middleware

import (
	"task-api/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
	metrics *Metrics
}

// Config selects the optional middlewares. A nil Metrics or RateLimit.Enabled=false disables that part.
type Config struct {
	RateLimit RateLimitConfig
	Metrics   *Metrics
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:       l,
		metrics: cfg.Metrics,
	}
	if cfg.RateLimit.Enabled {
		mw.limiter = newRateLimiter(cfg.RateLimit)
	}
	return mw
}
