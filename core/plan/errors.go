package plan

import (
	"github.com/pkg/errors"

	"github.com/trezcool/courseplan/core/course"
)

var (
	// errors
	ErrAlreadyEnrolled = errors.New("course already in plan")
	ErrNotEnrolled     = errors.New("course is not in plan")
	ErrPrereqUnmet     = errors.New("prerequisite needed")
)

// PrereqError lists the prerequisites of Course missing from the completed courses.
// errors.Is(err, ErrPrereqUnmet) holds for it.
type PrereqError struct {
	Course  course.Code
	Missing []course.Code // declaration order
}

func (e *PrereqError) Error() string {
	return "prerequisite needed for " + string(e.Course) + ": " + course.JoinCodes(e.Missing)
}

func (e *PrereqError) Is(target error) bool {
	return target == ErrPrereqUnmet
}
