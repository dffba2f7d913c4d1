package factory

import (
	"time"

	"github.com/guessparty/guessparty/internal/dependencies/mocks"
	"github.com/guessparty/guessparty/internal/services/session"
	"github.com/guessparty/guessparty/internal/storage/memory"
	"github.com/guessparty/guessparty/internal/testutil"
)

// TestApp bundles an App with its controllable dependencies
type TestApp struct {
	*App
	Clock  *mocks.MockClock
	Random *mocks.MockRandom
}

// NewTestApp assembles an in-memory App with a mock clock and mock
// randomness for deterministic tests
func NewTestApp(sessionCfg session.Config) *TestApp {
	clk := mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	rnd := mocks.NewMockRandom()

	cfg := Config{
		Logger:      testutil.NopLogger(),
		StorageType: StorageTypeMemory,
		Session:     sessionCfg,
	}
	app := newWithDependencies(cfg, memory.NewWithClock(clk), clk, rnd)

	return &TestApp{
		App:    app,
		Clock:  clk,
		Random: rnd,
	}
}
