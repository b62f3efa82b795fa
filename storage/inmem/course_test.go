package inmemdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/courseplan/core/course"
)

func seed(t *testing.T) course.Repository {
	repo := NewCourseRepository(Open())
	for _, code := range []course.Code{"PHY 1510", "CSI 2300", "BIO 1200"} {
		_, err := repo.CreateCourse(course.Course{
			Code:     code,
			Title:    string(code),
			Credits:  4,
			Seats:    2,
			Prereqs:  []course.Code{"CSI 1200"},
			Sessions: []course.Session{{Day: course.Monday, Start: 9, End: 10}},
		})
		require.NoError(t, err)
	}
	return repo
}

func TestCourseRepository_CreateCourse(t *testing.T) {
	repo := seed(t)

	_, err := repo.CreateCourse(course.Course{Code: "CSI 2300"})
	assert.Equal(t, course.ErrDuplicateCourse, err)

	codes, err := repo.QueryCodes()
	require.NoError(t, err)
	assert.Equal(t, []course.Code{"PHY 1510", "CSI 2300", "BIO 1200"}, codes)

	courses, err := repo.QueryAllCourses()
	require.NoError(t, err)
	require.Len(t, courses, 3)
	assert.Equal(t, course.Code("BIO 1200"), courses[2].Code)
}

func TestCourseRepository_GetCourse(t *testing.T) {
	repo := seed(t)

	_, err := repo.GetCourse("LOL 101")
	assert.Equal(t, course.ErrUnknownCourse, err)

	c, err := repo.GetCourse("CSI 2300")
	require.NoError(t, err)
	c.Prereqs[0] = "LOL"
	c.Sessions[0].Day = course.Friday

	c, err = repo.GetCourse("CSI 2300")
	require.NoError(t, err)
	assert.Equal(t, course.Code("CSI 1200"), c.Prereqs[0])
	assert.Equal(t, course.Monday, c.Sessions[0].Day)
}

func TestCourseRepository_UpdateSeats(t *testing.T) {
	repo := seed(t)

	tests := []struct {
		name    string
		code    course.Code
		seats   int
		want    int
		wantErr error
	}{
		{name: "unknown", code: "LOL 101", seats: 1, wantErr: course.ErrUnknownCourse},
		{name: "taken", code: "PHY 1510", seats: 1, want: 1},
		{name: "freed", code: "PHY 1510", seats: 3, want: 3},
		{name: "never negative", code: "PHY 1510", seats: -2, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := repo.UpdateSeats(tt.code, tt.seats)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Seats)

			c, err = repo.GetCourse(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Seats)
		})
	}
}

func TestCourseRepository_UpdateSessions(t *testing.T) {
	repo := seed(t)

	_, err := repo.UpdateSessions("LOL 101", nil)
	assert.Equal(t, course.ErrUnknownCourse, err)

	sessions := []course.Session{{Day: course.Tuesday, Start: 14, End: 15.25}}
	c, err := repo.UpdateSessions("BIO 1200", sessions)
	require.NoError(t, err)
	assert.Equal(t, sessions, c.Sessions)

	sessions[0].Start = 6
	c, err = repo.GetCourse("BIO 1200")
	require.NoError(t, err)
	assert.Equal(t, 14.0, c.Sessions[0].Start)
}
