package engine

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/lixenwraith/orrery/parameter"
)

// Pacer blocks until the next frame may start
type Pacer interface {
	Wait(ctx context.Context) error
}

// RatePacer spaces frames at a fixed rate with no catch-up burst
type RatePacer struct {
	limiter *rate.Limiter
}

// NewRatePacer creates a pacer releasing one frame per period
func NewRatePacer(period time.Duration) *RatePacer {
	if period <= 0 {
		period = parameter.FramePeriod
	}
	return &RatePacer{
		limiter: rate.NewLimiter(rate.Every(period), 1),
	}
}

// Wait returns once a frame interval has elapsed since the previous Wait,
// or with ctx's error if it ends first
func (p *RatePacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
