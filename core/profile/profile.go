// Package profile loads the catalog snapshot and the student's starting plan from a YAML file.
package profile

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/trezcool/courseplan/core"
	"github.com/trezcool/courseplan/core/course"
	"github.com/trezcool/courseplan/core/plan"
)

// Scheduled event kinds
const (
	EventReminder    = "reminder"
	EventSeatOpening = "seat_opening"
)

type (
	// Event is an external event replayed after the plan is loaded.
	Event struct {
		Kind    string        `yaml:"kind" validate:"oneof=reminder seat_opening"`
		Course  course.Code   `yaml:"course"`  // seat_opening
		Message string        `yaml:"message"` // reminder
		After   time.Duration `yaml:"after" validate:"min=0"`
	}

	Profile struct {
		Courses      []course.Course     `yaml:"courses" validate:"required,dive"`
		Completed    []course.Code       `yaml:"completed"`
		Requirements []course.Code       `yaml:"requirements"`
		Enrolled     []course.Code       `yaml:"enrolled"`
		Waitlist     map[course.Code]int `yaml:"waitlist"`
		Events       []Event             `yaml:"events" validate:"dive"`
	}
)

// Load reads and normalizes the profile at `path`. It is not validated.
func Load(path string) (Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return Profile{}, errors.Wrap(err, "opening profile")
	}
	defer func() { _ = f.Close() }()

	p, err := Decode(f)
	if err != nil {
		return Profile{}, errors.Wrapf(err, "decoding profile %s", path)
	}
	return p, nil
}

// Decode reads a YAML profile and normalizes every course code in it. Unknown keys are rejected.
func Decode(r io.Reader) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Profile{}, err
	}
	p.Normalize()
	return p, nil
}

// Normalize rewrites every course code with course.NormalizeCode.
func (p *Profile) Normalize() {
	for i := range p.Courses {
		c := &p.Courses[i]
		c.Code = course.NormalizeCode(string(c.Code))
		c.Title = core.CleanString(c.Title)
		normalizeCodes(c.Prereqs)
	}
	normalizeCodes(p.Completed)
	normalizeCodes(p.Requirements)
	normalizeCodes(p.Enrolled)
	if p.Waitlist != nil {
		waitlist := make(map[course.Code]int, len(p.Waitlist))
		for code, pos := range p.Waitlist {
			waitlist[course.NormalizeCode(string(code))] = pos
		}
		p.Waitlist = waitlist
	}
	for i := range p.Events {
		p.Events[i].Kind = core.CleanString(p.Events[i].Kind, true /* lower */)
		if p.Events[i].Course != "" {
			p.Events[i].Course = course.NormalizeCode(string(p.Events[i].Course))
		}
	}
}

func normalizeCodes(codes []course.Code) {
	for i, c := range codes {
		codes[i] = course.NormalizeCode(string(c))
	}
}

// Seed stores the catalog in `repo`, in file order.
func (p Profile) Seed(repo course.Repository) error {
	for _, c := range p.Courses {
		if _, err := repo.CreateCourse(c); err != nil {
			return errors.Wrapf(err, "creating course %q", c.Code)
		}
	}
	return nil
}

// State is the starting plan for plan.NewLedger.
func (p Profile) State() plan.State {
	return plan.State{
		Completed: p.Completed,
		Enrolled:  p.Enrolled,
		Waitlist:  p.Waitlist,
	}
}

// Schedule arms the profile's events. Stop the returned timers to cancel them.
func (p Profile) Schedule(sched core.Scheduler, ledger *plan.Ledger, notifier core.Notifier) []core.Timer {
	timers := make([]core.Timer, 0, len(p.Events))
	for _, ev := range p.Events {
		switch ev.Kind {
		case EventSeatOpening:
			timers = append(timers, ledger.ScheduleSeatOpening(sched, string(ev.Course), ev.After))
		case EventReminder:
			timers = append(timers, plan.ScheduleReminder(sched, notifier, ev.Message, ev.After))
		}
	}
	return timers
}
