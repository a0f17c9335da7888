package middleware

import (
	"img2cal/config"
	"img2cal/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg config.HTTPServerConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
