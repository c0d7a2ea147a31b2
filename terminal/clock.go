package terminal

import (
	"time"
)

// processStart anchors the monotonic clock, time.Since reads the monotonic reading
var processStart = time.Now()

// monotonicNow returns nanoseconds since process start
func monotonicNow() time.Duration {
	return time.Since(processStart)
}
