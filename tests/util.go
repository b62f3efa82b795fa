package testutil

import (
	"sync"
	"testing"

	"github.com/trezcool/courseplan/core"
	"github.com/trezcool/courseplan/core/course"
	"github.com/trezcool/courseplan/core/plan"
	inmemdb "github.com/trezcool/courseplan/storage/inmem"
)

// Recorder is a core.Notifier keeping every event, in emission order.
type Recorder struct {
	mu     sync.Mutex
	toasts []string
	notes  []string
}

var _ core.Notifier = (*Recorder)(nil)

func (r *Recorder) Toast(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, msg)
}

func (r *Recorder) Notify(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, msg)
}

func (r *Recorder) Toasts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.toasts...)
}

func (r *Recorder) Notes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.notes...)
}

// Reset forgets the recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts, r.notes = nil, nil
}

func Session(day int, start, end float64) course.Session {
	return course.Session{Day: day, Start: start, End: end}
}

// NewCourse returns a 3-credit course named after its code.
func NewCourse(code string, seats int, sessions ...course.Session) course.Course {
	return course.Course{
		Code:     course.NormalizeCode(code),
		Title:    "Course " + code,
		Credits:  3,
		Seats:    seats,
		Sessions: sessions,
	}
}

// DemoCourses is the catalog of the sample profile.
func DemoCourses() []course.Course {
	return []course.Course{
		{
			Code: "CSI 2300", Title: "Data Structures", Credits: 4,
			Instructor: "Dr. Sarah Johnson", Location: "Engineering Center 201",
			Seats: 2, Prereqs: []course.Code{"CSI 1200"},
			Sessions: []course.Session{Session(1, 9, 10.5), Session(3, 9, 10.5), Session(5, 9, 10.5)},
			Alternatives: []course.Alternative{
				{Label: "T/Th 2:00–3:15", Sessions: []course.Session{Session(2, 14, 15.25), Session(4, 14, 15.25)}},
			},
		},
		{
			Code: "MTH 1554", Title: "Calculus II", Credits: 4,
			Instructor: "Prof. Michael Chen", Location: "Math Science Center 304",
			Seats: 0, Prereqs: []course.Code{"MTH 1553"},
			Sessions: []course.Session{Session(2, 11, 12.5), Session(4, 11, 12.5)},
			Alternatives: []course.Alternative{
				{Label: "T/Th 8:30–10:00", Sessions: []course.Session{Session(2, 8.5, 10), Session(4, 8.5, 10)}},
			},
		},
		{
			Code: "PHY 1510", Title: "Introductory Physics I", Credits: 4,
			Instructor: "Dr. Emily Rodriguez", Location: "Science and Engineering Building 150",
			Seats:    5,
			Sessions: []course.Session{Session(1, 13, 14.5), Session(3, 13, 14.5), Session(5, 13, 14.5)},
		},
		{
			Code: "WRT 1060", Title: "Composition II", Credits: 4,
			Instructor: "Prof. David Williams", Location: "O'Dowd Hall 220",
			Seats:    3,
			Sessions: []course.Session{Session(2, 14, 15.5), Session(4, 14, 15.5)},
		},
		{
			Code: "BIO 1200", Title: "Intro Biology", Credits: 4,
			Instructor: "Dr. K. Ahmed", Location: "SEB 220",
			Seats:    4,
			Sessions: []course.Session{Session(2, 9, 10.5), Session(4, 9, 10.5)},
		},
	}
}

// DemoState is the starting plan of the sample profile.
func DemoState() plan.State {
	return plan.State{
		Completed: []course.Code{"CSI 1200", "MTH 1553"},
		Enrolled:  []course.Code{"CSI 2300", "MTH 1554", "PHY 1510", "WRT 1060"},
	}
}

// DemoRequirements are the unmet degree requirements of the sample profile.
func DemoRequirements() []course.Code {
	return []course.Code{"PHY 1510", "BIO 1200"}
}

// SeedCatalog stores `courses` in a fresh in-memory repository.
func SeedCatalog(t *testing.T, courses ...course.Course) course.Repository {
	t.Helper()
	repo := inmemdb.NewCourseRepository(inmemdb.Open())
	for _, c := range courses {
		if _, err := repo.CreateCourse(c); err != nil {
			t.Fatalf("SeedCatalog() failed: %v", err)
		}
	}
	return repo
}

// NewLedger returns a ledger over a fresh catalog of `courses`, recording its events.
func NewLedger(t *testing.T, state plan.State, courses ...course.Course) (*plan.Ledger, course.Repository, *Recorder) {
	t.Helper()
	repo := SeedCatalog(t, courses...)
	rec := new(Recorder)
	ledger, err := plan.NewLedger(repo, rec, state)
	if err != nil {
		t.Fatalf("NewLedger() failed: %v", err)
	}
	return ledger, repo, rec
}
