package plan

import (
	"github.com/trezcool/courseplan/core/course"
)

type OutcomeKind string

const (
	SeatAssigned OutcomeKind = "seat_assigned"
	Waitlisted   OutcomeKind = "waitlisted"
)

// Outcome is the result of a successful AddCourse.
type Outcome struct {
	Kind           OutcomeKind `json:"kind"`
	Course         course.Code `json:"course"`
	RemainingSeats int         `json:"remaining_seats"` // SeatAssigned only
	Position       int         `json:"position"`        // Waitlisted only
}

// Dropped is the result of a successful DropCourse.
type Dropped struct {
	Course         course.Code `json:"course"`
	RemainingSeats int         `json:"remaining_seats"`
}

// State is the student's starting point: what they completed, and what they already hold.
type State struct {
	Completed []course.Code
	Enrolled  []course.Code       // already registered: seats were counted by the catalog
	Waitlist  map[course.Code]int // position per course; never for an enrolled course
}
