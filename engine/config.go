package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/orrery/parameter"
)

// Config holds runtime options resolved from flags
type Config struct {
	// FrameRate is the target frames per second
	FrameRate int
	// Seed drives starting angles and plasma; 0 picks one from the clock
	Seed int64
}

// DefaultConfig returns 30 fps with a clock seed
func DefaultConfig() Config {
	return Config{FrameRate: parameter.FrameRate}
}

// Validate rejects unusable settings
func (c Config) Validate() error {
	if c.FrameRate <= 0 {
		return errors.New("frame rate must be positive")
	}
	if c.FrameRate > 240 {
		return fmt.Errorf("frame rate %d above 240", c.FrameRate)
	}
	return nil
}

// ResolveSeed returns Seed, or a clock-derived seed when unset
func (c Config) ResolveSeed(clock Clock) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return clock.Now().UnixNano()
}

// NewRand returns the scene random source for seed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// FramePeriod returns the interval between frames
func (c Config) FramePeriod() time.Duration {
	return time.Second / time.Duration(max(c.FrameRate, 1))
}
