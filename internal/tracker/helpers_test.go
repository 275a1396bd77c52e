package tracker

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mmcdole/pagemark/internal/domain"
)

var errDiskFull = errors.New("disk full")

// memSlots is an in-memory slot store with failure injection
type memSlots struct {
	mu      sync.Mutex
	data    map[string][]byte
	puts    map[string]int
	failGet bool
	failPut bool
}

func newMemSlots() *memSlots {
	return &memSlots{data: make(map[string][]byte), puts: make(map[string]int)}
}

func (m *memSlots) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return nil, false, errDiskFull
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memSlots) Put(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPut {
		return errDiskFull
	}
	m.data[key] = append([]byte(nil), data...)
	m.puts[key]++
	return nil
}

func (m *memSlots) Close() error { return nil }

func (m *memSlots) set(key, value string) {
	m.data[key] = []byte(value)
}

func (m *memSlots) putCount(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.puts[key]
}

// testClock advances one second per call, starting at base
type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

func sequentialIDs() func(string) string {
	n := 0
	return func(prefix string) string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestTracker(t *testing.T, slots domain.SlotStore) (*Tracker, *testClock) {
	t.Helper()
	clock := newTestClock()
	tr := New(slots, discardLogger(), WithClock(clock.Now), WithIDGenerator(sequentialIDs()))
	return tr, clock
}

func sampleBook(title string, status domain.BookStatus, total, current int) domain.Book {
	return domain.Book{
		Title:       title,
		Author:      "Author of " + title,
		TotalPages:  total,
		CurrentPage: current,
		Status:      status,
	}
}
