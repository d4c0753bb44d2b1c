package oura

import (
	"context"

	"golang.org/x/time/rate"
)

// pacer spaces out outgoing requests with a local token bucket. It never
// retries and never looks at the API's own rate limit responses.
type pacer struct {
	limiter *rate.Limiter
}

// newPacer returns a pacer admitting limit requests per second with the
// given burst. A burst below one is raised to one so that Wait can succeed.
func newPacer(limit rate.Limit, burst int) *pacer {
	if burst < 1 {
		burst = 1
	}
	return &pacer{limiter: rate.NewLimiter(limit, burst)}
}

// Wait blocks until a token is available or the context is canceled.
// A nil pacer admits every request immediately.
func (p *pacer) Wait(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.limiter.Wait(ctx)
}
