package repository

import (
	"fmt"
	"sync"
	"time"
)

// testClock advances one second per reading so consecutive writes get
// strictly increasing timestamps.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now
	c.now = c.now.Add(time.Second)
	return now
}

func newTestStore() *MemoryStore {
	clock := newTestClock()
	var seq int
	return NewMemoryStore(
		WithClock(clock.Now),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%04d", seq)
		}),
	)
}
