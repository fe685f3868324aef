package datetime

import "time"

// Clock provides the current instant for relative-time formatting.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the host wall clock.
//
// Thread-safety: SystemClock is stateless and safe for concurrent use.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}
