package plan

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/courseplan/core"
	"github.com/trezcool/courseplan/core/course"
)

// Ledger owns the student's plan: enrolled courses and waitlist positions.
// It is the only writer of the catalog's seats and sessions. Every operation runs
// to completion under the ledger's lock, and events are emitted once it is released.
type Ledger struct {
	mu        sync.Mutex
	repo      course.Repository
	notifier  core.Notifier
	completed course.CodeSet
	enrolled  []course.Code
	waitlist  map[course.Code]int
}

// NewLedger checks `state` against the catalog and returns a Ledger starting from it.
func NewLedger(repo course.Repository, notifier core.Notifier, state State) (*Ledger, error) {
	if notifier == nil {
		notifier = core.NopNotifier
	}
	l := &Ledger{
		repo:      repo,
		notifier:  notifier,
		completed: course.NewCodeSet(state.Completed...),
		waitlist:  make(map[course.Code]int, len(state.Waitlist)),
	}

	seen := make(course.CodeSet, len(state.Enrolled))
	for _, code := range state.Enrolled {
		if _, err := repo.GetCourse(code); err != nil {
			return nil, errors.Wrapf(err, "enrolled course %q", code)
		}
		if seen.Has(code) {
			return nil, errors.Wrapf(ErrAlreadyEnrolled, "enrolled course %q", code)
		}
		seen[code] = struct{}{}
		l.enrolled = append(l.enrolled, code)
	}
	for code, pos := range state.Waitlist {
		if _, err := repo.GetCourse(code); err != nil {
			return nil, errors.Wrapf(err, "waitlisted course %q", code)
		}
		if pos <= 0 {
			return nil, errors.Errorf("waitlisted course %q: position must be positive (got %d)", code, pos)
		}
		l.waitlist[code] = pos
	}
	return l, nil
}

// AddCourse enrolls the student if a seat is available, otherwise joins the course's waitlist.
// Waitlist positions are left as is: only ResolveSeatOpening lowers them.
func (l *Ledger) AddCourse(code string) (Outcome, error) {
	out, err := l.addCourse(course.NormalizeCode(code))
	if err != nil {
		return Outcome{}, err
	}

	switch out.Kind {
	case SeatAssigned:
		l.notifier.Toast(fmt.Sprintf("Added %s • %d seats left", out.Course, out.RemainingSeats))
		l.notifier.Notify(fmt.Sprintf("Added %s. Confirmation sent.", out.Course))
	case Waitlisted:
		l.notifier.Toast(fmt.Sprintf("%s is full — joined waitlist (#%d)", out.Course, out.Position))
		l.notifier.Notify(fmt.Sprintf("Waitlist update: %s → position #%d", out.Course, out.Position))
	}
	return out, nil
}

func (l *Ledger) addCourse(code course.Code) (Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, err := l.repo.GetCourse(code)
	if err != nil {
		return Outcome{}, err
	}
	if l.indexOf(code) >= 0 {
		return Outcome{}, ErrAlreadyEnrolled
	}
	if missing := c.MissingPrereqs(l.completed); len(missing) > 0 {
		return Outcome{}, &PrereqError{Course: code, Missing: missing}
	}

	if c.Seats == 0 {
		l.waitlist[code]++
		return Outcome{Kind: Waitlisted, Course: code, Position: l.waitlist[code]}, nil
	}

	if c, err = l.repo.UpdateSeats(code, c.Seats-1); err != nil {
		return Outcome{}, errors.Wrap(err, "taking seat")
	}
	l.enrolled = append(l.enrolled, code)
	return Outcome{Kind: SeatAssigned, Course: code, RemainingSeats: c.Seats}, nil
}

// DropCourse removes the course from the plan and frees its seat.
// The waitlist is left as is: nobody is promoted.
func (l *Ledger) DropCourse(code string) (Dropped, error) {
	dropped, err := l.dropCourse(course.NormalizeCode(code))
	if err != nil {
		return Dropped{}, err
	}
	l.notifier.Toast(fmt.Sprintf("Dropped %s • %d seats open", dropped.Course, dropped.RemainingSeats))
	l.notifier.Notify(fmt.Sprintf("Dropped-course confirmation: %s.", dropped.Course))
	return dropped, nil
}

func (l *Ledger) dropCourse(code course.Code) (Dropped, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(code)
	if idx < 0 {
		return Dropped{}, ErrNotEnrolled
	}
	c, err := l.repo.GetCourse(code)
	if err != nil {
		return Dropped{}, err
	}
	if c, err = l.repo.UpdateSeats(code, c.Seats+1); err != nil {
		return Dropped{}, errors.Wrap(err, "freeing seat")
	}
	l.enrolled = append(l.enrolled[:idx:idx], l.enrolled[idx+1:]...)
	return Dropped{Course: code, RemainingSeats: c.Seats}, nil
}

// ResolveSeatOpening applies an external capacity change: one more seat, and one step closer
// to the front of the waitlist. Nobody is enrolled automatically. Unknown courses are ignored,
// and events are emitted only when the course is waitlisted.
func (l *Ledger) ResolveSeatOpening(code string) {
	cc := course.NormalizeCode(code)
	pos, waitlisted, ok := l.resolveSeatOpening(cc)
	if !ok || !waitlisted {
		return
	}
	if pos > 0 {
		l.notifier.Notify(fmt.Sprintf("Seat opened for %s! Your waitlist is now #%d.", cc, pos))
	} else {
		l.notifier.Notify(fmt.Sprintf("Seat opened for %s! You're off the waitlist, add it now.", cc))
	}
	l.notifier.Toast(fmt.Sprintf("Seat opened for %s!", cc))
}

func (l *Ledger) resolveSeatOpening(code course.Code) (pos int, waitlisted, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, err := l.repo.GetCourse(code)
	if err != nil {
		return 0, false, false
	}
	if _, err = l.repo.UpdateSeats(code, c.Seats+1); err != nil {
		return 0, false, false
	}

	pos, waitlisted = l.waitlist[code]
	if !waitlisted {
		return 0, false, true
	}
	pos--
	if pos <= 0 {
		delete(l.waitlist, code)
		return 0, true, true
	}
	l.waitlist[code] = pos
	return pos, true, true
}

// SwitchSession replaces the course's sessions by a copy of the given alternative's.
func (l *Ledger) SwitchSession(code string, alternative int) error {
	cc := course.NormalizeCode(code)
	label, err := l.switchSession(cc, alternative)
	if err != nil {
		return err
	}
	l.notifier.Toast(fmt.Sprintf("Switched %s to %s", cc, label))
	l.notifier.Notify(fmt.Sprintf("Switched %s to %s.", cc, label))
	return nil
}

func (l *Ledger) switchSession(code course.Code, alternative int) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, err := l.repo.GetCourse(code)
	if err != nil {
		return "", err
	}
	if alternative < 0 || alternative >= len(c.Alternatives) {
		return "", course.ErrUnknownAlternative
	}
	alt := c.Alternatives[alternative]
	if _, err = l.repo.UpdateSessions(code, alt.Sessions); err != nil {
		return "", errors.Wrap(err, "switching sessions")
	}
	return alt.Label, nil
}

// Position returns the waitlist position for the course, 0 if not waitlisted.
func (l *Ledger) Position(code string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.waitlist[course.NormalizeCode(code)]
}

// Snapshot returns a consistent copy of the plan and the catalog.
func (l *Ledger) Snapshot() (Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	courses, err := l.repo.QueryAllCourses()
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "querying courses")
	}
	snap := Snapshot{
		Catalog:   make([]course.Code, 0, len(courses)),
		Courses:   make(map[course.Code]course.Course, len(courses)),
		Enrolled:  append([]course.Code(nil), l.enrolled...),
		Waitlist:  make(map[course.Code]int, len(l.waitlist)),
		Completed: make(course.CodeSet, len(l.completed)),
	}
	for _, c := range courses {
		snap.Catalog = append(snap.Catalog, c.Code)
		snap.Courses[c.Code] = c
	}
	for code, pos := range l.waitlist {
		snap.Waitlist[code] = pos
	}
	for code := range l.completed {
		snap.Completed[code] = struct{}{}
	}
	return snap, nil
}

func (l *Ledger) indexOf(code course.Code) int {
	for i, c := range l.enrolled {
		if c == code {
			return i
		}
	}
	return -1
}
