package schedsvc

import (
	"sort"
	"sync"
	"time"

	"github.com/trezcool/courseplan/core"
)

type wallClock struct{}

// New returns a core.Scheduler running callbacks on their own goroutine with time.AfterFunc.
func New() core.Scheduler {
	return wallClock{}
}

func (wallClock) AfterFunc(d time.Duration, f func()) core.Timer {
	return time.AfterFunc(d, f)
}

// Manual is a core.Scheduler driven by Advance instead of the wall clock.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTimer
}

var _ core.Scheduler = (*Manual)(nil)

type manualTimer struct {
	m   *Manual
	due time.Duration
	seq int
	f   func()
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) AfterFunc(d time.Duration, f func()) core.Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{m: m, due: m.now + d, seq: m.seq, f: f}
	m.pending = append(m.pending, t)
	return t
}

// Advance moves the clock forward and runs every callback due meanwhile, earliest first
// (ties in scheduling order). Callbacks run on the caller's goroutine, one at a time.
// It returns how many callbacks ran.
func (m *Manual) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now + d
	var fired int
	for {
		t := m.next(target)
		if t == nil {
			break
		}
		m.now = t.due
		m.mu.Unlock()
		t.f()
		fired++
		m.mu.Lock()
	}
	m.now = target
	m.mu.Unlock()
	return fired
}

// Pending returns how many callbacks are still scheduled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// next pops the earliest timer due by `target`. m.mu must be held.
func (m *Manual) next(target time.Duration) *manualTimer {
	if len(m.pending) == 0 {
		return nil
	}
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].due == m.pending[j].due {
			return m.pending[i].seq < m.pending[j].seq
		}
		return m.pending[i].due < m.pending[j].due
	})
	t := m.pending[0]
	if t.due > target {
		return nil
	}
	m.pending = m.pending[1:]
	return t
}

func (t *manualTimer) Stop() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()

	for i, p := range t.m.pending {
		if p == t {
			t.m.pending = append(t.m.pending[:i], t.m.pending[i+1:]...)
			return true
		}
	}
	return false
}
