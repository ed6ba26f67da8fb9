package middleware

import (
	"construction-visit-analysis/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l       log.Logger
	limiter *clientRateLimiter
}

// New creates the middleware set. requestsPerMin caps each client IP.
func New(l log.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newClientRateLimiter(requestsPerMin),
	}
}
