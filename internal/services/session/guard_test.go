package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardSerializesSameID(t *testing.T) {
	g := NewGuard()

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.Do("ABC234", func() error {
				// Unsynchronized increment; only safe if Do serializes
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestGuardAllowsDifferentIDsInParallel(t *testing.T) {
	g := NewGuard()

	release := make(chan struct{})
	holding := make(chan struct{})

	go func() {
		_ = g.Do("AAAAAA", func() error {
			close(holding)
			<-release
			return nil
		})
	}()

	<-holding

	// Another id must not be blocked by the held lock
	done := make(chan struct{})
	go func() {
		_ = g.Do("BBBBBB", func() error { return nil })
		close(done)
	}()

	<-done
	close(release)
}

func TestGuardPropagatesError(t *testing.T) {
	g := NewGuard()

	err := g.Do("ABC234", func() error {
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)
}

func TestGuardReleasesEntries(t *testing.T) {
	g := NewGuard()

	_ = g.Do("ABC234", func() error { return nil })
	_ = g.Do("XYZ789", func() error { return nil })

	g.mu.Lock()
	defer g.mu.Unlock()
	assert.Empty(t, g.locks)
}
