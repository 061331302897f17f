// Package clock provides the injectable time source used by the purchase
// workflow. Production code uses Real(); tests use Fake() and move time
// forward explicitly with Advance.
package clock

import "time"

// Clock is the subset of the time package the gate depends on.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time

	// After returns a channel that receives the current time once d has
	// elapsed. If d <= 0 the channel is ready immediately.
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

// Real returns a Clock backed by the time package.
func Real() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }
