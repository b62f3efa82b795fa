package inmemdb

import (
	"github.com/trezcool/courseplan/core/course"
)

type courseRepository struct {
	db *courseTable
}

var _ course.Repository = (*courseRepository)(nil)

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db.course}
}

func (repo *courseRepository) CreateCourse(c course.Course) (course.Course, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[c.Code]; ok {
		return course.Course{}, course.ErrDuplicateCourse
	}
	c = c.Copy()
	repo.db.table[c.Code] = &c
	repo.db.order = append(repo.db.order, c.Code)
	return c.Copy(), nil
}

func (repo *courseRepository) GetCourse(code course.Code) (course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if c, ok := repo.db.table[code]; ok {
		return c.Copy(), nil
	}
	return course.Course{}, course.ErrUnknownCourse
}

func (repo *courseRepository) QueryAllCourses() ([]course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	courses := make([]course.Course, 0, len(repo.db.order))
	for _, code := range repo.db.order {
		courses = append(courses, repo.db.table[code].Copy())
	}
	return courses, nil
}

func (repo *courseRepository) QueryCodes() ([]course.Code, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]course.Code(nil), repo.db.order...), nil
}

func (repo *courseRepository) UpdateSeats(code course.Code, seats int) (course.Course, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	c, ok := repo.db.table[code]
	if !ok {
		return course.Course{}, course.ErrUnknownCourse
	}
	if seats < 0 {
		seats = 0
	}
	c.Seats = seats
	return c.Copy(), nil
}

func (repo *courseRepository) UpdateSessions(code course.Code, sessions []course.Session) (course.Course, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	c, ok := repo.db.table[code]
	if !ok {
		return course.Course{}, course.ErrUnknownCourse
	}
	c.Sessions = course.CopySessions(sessions)
	return c.Copy(), nil
}
