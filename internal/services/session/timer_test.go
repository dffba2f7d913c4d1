package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerFires(t *testing.T) {
	tc := NewTimerCoordinator()
	defer tc.Stop()

	fired := make(chan struct{})
	tc.Arm("ABC234", 10*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}

	// A fired timer removes itself
	assert.Eventually(t, func() bool {
		return !tc.Armed("ABC234")
	}, time.Second, 5*time.Millisecond)
}

func TestTimerDisarmPreventsFire(t *testing.T) {
	tc := NewTimerCoordinator()
	defer tc.Stop()

	fired := make(chan struct{})
	tc.Arm("ABC234", 50*time.Millisecond, func() { close(fired) })

	assert.True(t, tc.Disarm("ABC234"))
	assert.False(t, tc.Armed("ABC234"))

	select {
	case <-fired:
		t.Fatal("disarmed timer fired")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTimerDisarmUnknownID(t *testing.T) {
	tc := NewTimerCoordinator()
	assert.False(t, tc.Disarm("NOPE99"))
}

func TestTimerRearmReplacesExisting(t *testing.T) {
	tc := NewTimerCoordinator()
	defer tc.Stop()

	firstFired := make(chan struct{})
	tc.Arm("ABC234", 20*time.Millisecond, func() { close(firstFired) })

	secondFired := make(chan struct{})
	tc.Arm("ABC234", 40*time.Millisecond, func() { close(secondFired) })

	select {
	case <-firstFired:
		t.Fatal("replaced timer fired")
	case <-secondFired:
	case <-time.After(time.Second):
		t.Fatal("replacement timer did not fire")
	}
}

func TestTimerStopDisarmsAll(t *testing.T) {
	tc := NewTimerCoordinator()

	fired := make(chan struct{}, 2)
	tc.Arm("AAAAAA", 50*time.Millisecond, func() { fired <- struct{}{} })
	tc.Arm("BBBBBB", 50*time.Millisecond, func() { fired <- struct{}{} })

	tc.Stop()
	assert.False(t, tc.Armed("AAAAAA"))
	assert.False(t, tc.Armed("BBBBBB"))

	select {
	case <-fired:
		t.Fatal("stopped timer fired")
	case <-time.After(100 * time.Millisecond):
	}
}
