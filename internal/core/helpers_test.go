package core

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/inovacc/edcourse/internal/clock"
	"github.com/inovacc/edcourse/internal/store"
)

var (
	errDiskFull = errors.New("disk full")
	baseTime    = time.Date(2025, 3, 4, 14, 5, 0, 0, time.UTC)
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}

	c.text = text

	return nil
}

// brokenStore fails every write while still serving reads from memory.
type brokenStore struct {
	*store.Memory
	getErr error
}

func (b *brokenStore) Set(string, []byte) error { return errDiskFull }

func (b *brokenStore) Get(key string) ([]byte, error) {
	if b.getErr != nil {
		return nil, b.getErr
	}

	return b.Memory.Get(key)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sequentialIDs() func() string {
	n := 0

	return func() string {
		n++
		return fmt.Sprintf("p_%d", n)
	}
}

type fixture struct {
	tracker   *Tracker
	store     store.Store
	clock     *clock.ManagedClock
	clipboard *fakeClipboard
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	return newFixtureWithStore(t, store.NewMemory())
}

func newFixtureWithStore(t *testing.T, s store.Store) *fixture {
	t.Helper()

	f := &fixture{
		store:     s,
		clock:     clock.NewManaged(baseTime),
		clipboard: &fakeClipboard{},
	}

	f.tracker = NewTracker(Options{
		Store:     s,
		Clipboard: f.clipboard,
		Clock:     f.clock,
		Location:  time.UTC,
		Logger:    discardLogger(),
		NewID:     sequentialIDs(),
	})

	return f
}

// reload builds a fresh tracker over the same store.
func (f *fixture) reload() *Tracker {
	return NewTracker(Options{
		Store:    f.store,
		Clock:    f.clock,
		Location: time.UTC,
		Logger:   discardLogger(),
	})
}
