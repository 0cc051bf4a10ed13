// Package testhelpers holds fakes shared by the package tests.
package testhelpers

import (
	"sort"
	"sync"
	"time"

	"ems-portal/internal/core/domain"
	"ems-portal/internal/core/session"
)

// FakeClock is a manually advanced session.Clock
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	clock    *FakeClock
	deadline time.Time
	fn       func()
	stopped  bool
	fired    bool
}

// NewFakeClock creates a clock frozen at start
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

// Now implements session.Clock
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc implements session.Clock
func (c *FakeClock) AfterFunc(d time.Duration, f func()) session.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &fakeTimer{clock: c, deadline: c.now.Add(d), fn: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward and runs every timer that became due,
// in deadline order, on the calling goroutine
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)

	var due, pending []*fakeTimer
	for _, t := range c.timers {
		switch {
		case t.stopped:
		case !t.deadline.After(c.now):
			t.fired = true
			due = append(due, t)
		default:
			pending = append(pending, t)
		}
	}
	c.timers = pending
	c.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].deadline.Before(due[j].deadline) })
	for _, t := range due {
		t.fn()
	}
}

// Pending returns the number of armed timers
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Navigation is one recorded redirect
type Navigation struct {
	ClientID string
	Role     string
	Location string
	Replace  bool
}

// RecordingNavigator records every Navigate call
type RecordingNavigator struct {
	mu    sync.Mutex
	calls []Navigation
}

// Navigate implements session.Navigator
func (n *RecordingNavigator) Navigate(clientID string, role domain.Role, location string, replace bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, Navigation{ClientID: clientID, Role: string(role), Location: location, Replace: replace})
}

// Calls returns a copy of the recorded navigations
func (n *RecordingNavigator) Calls() []Navigation {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Navigation(nil), n.calls...)
}
