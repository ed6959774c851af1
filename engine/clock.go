package engine

import "time"

// Clock supplies frame timestamps
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock; frame durations use its monotonic reading
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
