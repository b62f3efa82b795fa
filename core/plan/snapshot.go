package plan

import (
	"github.com/trezcool/courseplan/core/course"
)

// Snapshot is a point-in-time copy of the catalog and the plan. It is safe to keep and share.
type Snapshot struct {
	Catalog   []course.Code // catalog order
	Courses   map[course.Code]course.Course
	Enrolled  []course.Code // enrollment order
	Waitlist  map[course.Code]int
	Completed course.CodeSet
}

// Warning flags an enrolled course whose prerequisites are not all completed.
type Warning struct {
	Course  course.Code   `json:"course"`
	Missing []course.Code `json:"missing"`
}

func (s Snapshot) Course(code course.Code) (course.Course, bool) {
	c, ok := s.Courses[code]
	return c, ok
}

func (s Snapshot) IsEnrolled(code course.Code) bool {
	for _, c := range s.Enrolled {
		if c == code {
			return true
		}
	}
	return false
}

// Position returns the waitlist position for the course, 0 if not waitlisted.
func (s Snapshot) Position(code course.Code) int {
	return s.Waitlist[code]
}

// EnrolledCourses returns the enrolled courses in enrollment order.
func (s Snapshot) EnrolledCourses() []course.Course {
	courses := make([]course.Course, 0, len(s.Enrolled))
	for _, code := range s.Enrolled {
		if c, ok := s.Courses[code]; ok {
			courses = append(courses, c)
		}
	}
	return courses
}

// Credits sums the credits of the enrolled courses.
func (s Snapshot) Credits() int {
	var total int
	for _, c := range s.EnrolledCourses() {
		total += c.Credits
	}
	return total
}

// Search filters the enrolled courses, see course.Course.Matches.
func (s Snapshot) Search(q string) []course.Course {
	var found []course.Course
	for _, c := range s.EnrolledCourses() {
		if c.Matches(q) {
			found = append(found, c)
		}
	}
	return found
}

// Warnings lists the enrolled courses with unmet prerequisites.
func (s Snapshot) Warnings() []Warning {
	var warnings []Warning
	for _, c := range s.EnrolledCourses() {
		if missing := c.MissingPrereqs(s.Completed); len(missing) > 0 {
			warnings = append(warnings, Warning{Course: c.Code, Missing: missing})
		}
	}
	return warnings
}
