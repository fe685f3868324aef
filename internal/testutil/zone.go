package testutil

import (
	"testing"
	"time"
)

// SetLocal swaps time.Local for the rest of the test and restores it on
// cleanup. Tests that call it must not run in parallel.
func SetLocal(tb testing.TB, loc *time.Location) {
	tb.Helper()
	prev := time.Local
	time.Local = loc
	tb.Cleanup(func() { time.Local = prev })
}
