package session

import (
	"sync"
	"time"
)

// IdleTimeout is the inactivity period after which a session expires
const IdleTimeout = 5 * time.Minute

// EventKind is a user-interaction event reported by the UI
type EventKind string

const (
	EventMouseMove  EventKind = "mousemove"
	EventMouseDown  EventKind = "mousedown"
	EventKeyPress   EventKind = "keypress"
	EventClick      EventKind = "click"
	EventScroll     EventKind = "scroll"
	EventTouchStart EventKind = "touchstart"
)

var qualifying = map[EventKind]struct{}{
	EventMouseMove:  {},
	EventMouseDown:  {},
	EventKeyPress:   {},
	EventClick:      {},
	EventScroll:     {},
	EventTouchStart: {},
}

// ParseEventKind returns the event kind named s and whether it resets the idle timer
func ParseEventKind(s string) (EventKind, bool) {
	kind := EventKind(s)
	_, ok := qualifying[kind]
	return kind, ok
}

// State of an inactivity monitor
type State int

const (
	Active State = iota
	Expired
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "expired"
}

// Timer is a pending callback that can be cancelled
type Timer interface {
	Stop() bool
}

// Clock abstracts time for the monitors
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// RealClock returns the wall clock
func RealClock() Clock {
	return realClock{}
}

// Monitor expires one session after a period without qualifying events.
// Every armed timer carries a generation; a timer whose generation is no
// longer current does nothing, so onExpire runs at most once per Attach.
type Monitor struct {
	clock    Clock
	idle     time.Duration
	onExpire func()

	mu           sync.Mutex
	timer        Timer
	generation   uint64
	attached     bool
	state        State
	lastActivity time.Time
}

// NewMonitor creates a detached monitor
func NewMonitor(clock Clock, idle time.Duration, onExpire func()) *Monitor {
	if clock == nil {
		clock = RealClock()
	}
	if idle <= 0 {
		idle = IdleTimeout
	}
	return &Monitor{clock: clock, idle: idle, onExpire: onExpire}
}

// Attach enters Active and starts the idle timer
func (m *Monitor) Attach() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.attached = true
	m.state = Active
	m.lastActivity = m.clock.Now()
	m.arm()
}

// Touch resets the idle timer for a qualifying event while Active.
// It reports whether the timer was reset.
func (m *Monitor) Touch(kind EventKind) bool {
	if _, ok := qualifying[kind]; !ok {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.attached || m.state != Active {
		return false
	}
	m.lastActivity = m.clock.Now()
	m.arm()
	return true
}

// Detach stops the timer; a detached monitor never fires
func (m *Monitor) Detach() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.attached = false
	m.generation++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// State returns the current state
func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// LastActivity returns the time of the last attach or qualifying event
func (m *Monitor) LastActivity() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastActivity
}

// Deadline returns when the monitor expires if nothing happens
func (m *Monitor) Deadline() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastActivity.Add(m.idle)
}

// arm must be called with m.mu held
func (m *Monitor) arm() {
	if m.timer != nil {
		m.timer.Stop()
	}
	m.generation++
	gen := m.generation
	m.timer = m.clock.AfterFunc(m.idle, func() { m.fire(gen) })
}

func (m *Monitor) fire(gen uint64) {
	m.mu.Lock()
	if gen != m.generation || !m.attached || m.state != Active {
		m.mu.Unlock()
		return
	}
	m.state = Expired
	m.timer = nil
	onExpire := m.onExpire
	m.mu.Unlock()

	if onExpire != nil {
		onExpire()
	}
}
