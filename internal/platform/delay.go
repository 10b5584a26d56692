package platform

import (
	"math/rand/v2"
	"time"
)

// DelayFunc returns how long the home handler should wait before rendering.
// It stands in for real work.
type DelayFunc func() time.Duration

// UniformDelay samples uniformly from [lo, hi]. A zero-width range always
// returns lo.
func UniformDelay(lo, hi time.Duration) DelayFunc {
	if hi <= lo {
		return FixedDelay(lo)
	}
	span := int64(hi - lo)
	return func() time.Duration {
		return lo + time.Duration(rand.Int64N(span+1))
	}
}

// FixedDelay always returns d.
func FixedDelay(d time.Duration) DelayFunc {
	return func() time.Duration { return d }
}
