// Package ratelimit limits how often a client may call the RPC endpoint.
//
// Two backends share the Limiter interface:
//
//   - local: one golang.org/x/time/rate token bucket per key, refilled at
//     Limit per Window with a burst of Limit. Idle keys are evicted.
//   - distributed: a Redis sliding-window counter per key, so that every
//     instance behind a load balancer shares the same budget. Redis errors
//     fail open.
//
// HTTPMiddleware answers rejected calls with the 4029 envelope and a
// Retry-After header. Calls are keyed by peer address; ClientIP reads
// X-Forwarded-For only from configured proxies.
//
//	limiter, _ := ratelimit.New(ratelimit.Config{Enabled: true, Limit: 100, Window: time.Minute})
//	clientIP, _ := ratelimit.NewClientIP("10.0.0.0/8")
//	handler = ratelimit.HTTPMiddleware(limiter, clientIP.Key)(handler)
package ratelimit
