package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 8, 21, 10, 0, 0, 0, time.UTC)

func TestFake_NowStandsStill(t *testing.T) {
	c := Fake(epoch)
	assert.Equal(t, epoch, c.Now())
	assert.Equal(t, epoch, c.Now())
}

func TestFake_AfterFiresOnAdvance(t *testing.T) {
	c := Fake(epoch)
	ch := c.After(900 * time.Millisecond)

	c.Advance(899 * time.Millisecond)
	select {
	case <-ch:
		t.Fatal("fired before deadline")
	default:
	}
	assert.Equal(t, 1, c.Pending())

	c.Advance(time.Millisecond)
	select {
	case got := <-ch:
		assert.Equal(t, epoch.Add(900*time.Millisecond), got)
	default:
		t.Fatal("did not fire at deadline")
	}
	assert.Equal(t, 0, c.Pending())
}

func TestFake_AfterNonPositiveIsImmediate(t *testing.T) {
	c := Fake(epoch)
	select {
	case got := <-c.After(0):
		assert.Equal(t, epoch, got)
	default:
		t.Fatal("expected immediate value")
	}
	assert.Equal(t, 0, c.Pending())
}

func TestFake_SetBackwardsFiresNothing(t *testing.T) {
	c := Fake(epoch)
	_ = c.After(time.Second)
	c.Set(epoch.Add(-time.Hour))
	assert.Equal(t, 1, c.Pending())
	assert.Equal(t, epoch.Add(-time.Hour), c.Now())
}

func TestFake_WaitForTimers(t *testing.T) {
	c := Fake(epoch)
	done := make(chan time.Time)

	go func() {
		done <- <-c.After(time.Second)
	}()

	c.WaitForTimers(1)
	c.Advance(time.Second)

	select {
	case got := <-done:
		require.Equal(t, epoch.Add(time.Second), got)
	case <-time.After(5 * time.Second):
		t.Fatal("goroutine never woke up")
	}
}

func TestReal_Now(t *testing.T) {
	before := time.Now()
	got := Real().Now()
	assert.False(t, got.Before(before))
}
