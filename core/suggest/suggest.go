// Package suggest recommends corrective actions for a course plan.
package suggest

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/courseplan/core/course"
	"github.com/trezcool/courseplan/core/plan"
)

type Kind string

const (
	KindSwitch   Kind = "switch"
	KindAdd      Kind = "add"
	KindWaitlist Kind = "waitlist"
	KindNone     Kind = "none"
)

var ErrNoAction = errors.New("suggestion has no action")

// Actions are the ledger operations a suggestion may apply. *plan.Ledger implements it.
type Actions interface {
	AddCourse(code string) (plan.Outcome, error)
	SwitchSession(code string, alternative int) error
}

var _ Actions = (*plan.Ledger)(nil)

type Item struct {
	Kind     Kind          `json:"kind"`
	Course   course.Code   `json:"course,omitempty"`
	Title    string        `json:"title"`
	Detail   string        `json:"detail"`
	Position int           `json:"position,omitempty"` // KindWaitlist
	Missing  []course.Code `json:"missing,omitempty"`  // KindAdd: prerequisites not completed yet
	Action   func() error  `json:"-"`
}

func (it Item) HasAction() bool { return it.Action != nil }

// Apply runs the item's action.
func (it Item) Apply() error {
	if it.Action == nil {
		return ErrNoAction
	}
	return it.Action()
}

// Generate lists the suggestions for the plan, always in this order:
//  1. switch every enrolled course having alternatives to its first alternative
//  2. add every required course not enrolled yet that has open seats
//  3. monitor the waitlist of every enrolled course that is full and waitlisted
// A single KindNone placeholder is returned when none applies.
// Actions are bound to `act`; a nil `act` yields items without actions.
func Generate(snap plan.Snapshot, requirements []course.Code, act Actions) []Item {
	var items []Item

	for _, c := range snap.EnrolledCourses() {
		if len(c.Alternatives) == 0 {
			continue
		}
		alt := c.Alternatives[0]
		it := Item{
			Kind:   KindSwitch,
			Course: c.Code,
			Title:  fmt.Sprintf("Switch %s to %s", c.Code, alt.Label),
			Detail: "Alternative section to reduce conflicts.",
		}
		if act != nil {
			code := string(c.Code)
			it.Action = func() error { return act.SwitchSession(code, 0) }
		}
		items = append(items, it)
	}

	for _, req := range requirements {
		c, ok := snap.Course(req)
		if !ok || snap.IsEnrolled(req) || c.Seats <= 0 {
			continue
		}
		it := Item{
			Kind:    KindAdd,
			Course:  c.Code,
			Title:   fmt.Sprintf("Add %s — %s (%d cr)", c.Code, c.Title, c.Credits),
			Detail:  fmt.Sprintf("Meets degree requirement • %d seats open", c.Seats),
			Missing: c.MissingPrereqs(snap.Completed),
		}
		if act != nil {
			code := string(c.Code)
			it.Action = func() error {
				_, err := act.AddCourse(code)
				return err
			}
		}
		items = append(items, it)
	}

	for _, c := range snap.EnrolledCourses() {
		pos := snap.Position(c.Code)
		if c.Seats != 0 || pos == 0 {
			continue
		}
		items = append(items, Item{
			Kind:     KindWaitlist,
			Course:   c.Code,
			Title:    fmt.Sprintf("Monitor waitlist for %s", c.Code),
			Detail:   fmt.Sprintf("You're currently #%d. We'll notify you if a seat opens.", pos),
			Position: pos,
		})
	}

	if len(items) == 0 {
		items = append(items, Item{
			Kind:   KindNone,
			Title:  "No new suggestions",
			Detail: "You're all set for now.",
		})
	}
	return items
}
