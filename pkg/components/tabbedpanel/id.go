package tabbedpanel

import (
	"math"
	"math/rand/v2"
	"strconv"
)

// IDSource draws a signed 32-bit random value. Implementations must be safe
// for concurrent use.
type IDSource func() int32

// defaultIDSource draws from the process-wide generator, which is seeded once
// by the runtime and safe for concurrent use.
func defaultIDSource() int32 {
	return int32(rand.Uint32())
}

// FallbackID builds a generated id from a random draw. The draw is made
// non-negative; math.MinInt32 has no positive counterpart and maps to
// math.MaxInt32.
func FallbackID(draw int32) string {
	var n int32
	switch {
	case draw == math.MinInt32:
		n = math.MaxInt32
	case draw < 0:
		n = -draw
	default:
		n = draw
	}
	return IDPrefix + strconv.FormatInt(int64(n), 10)
}
