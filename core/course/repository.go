package course

import "github.com/pkg/errors"

var (
	// errors
	ErrUnknownCourse      = errors.New("unknown course")
	ErrUnknownAlternative = errors.New("unknown alternative")
	ErrDuplicateCourse    = errors.New("a course with this code already exists")
)

// Repository stores the catalog. Courses keep their insertion order.
type Repository interface {
	CreateCourse(c Course) (Course, error)
	GetCourse(code Code) (Course, error)
	QueryAllCourses() ([]Course, error)
	QueryCodes() ([]Code, error)
	UpdateSeats(code Code, seats int) (Course, error)
	UpdateSessions(code Code, sessions []Session) (Course, error)
}
