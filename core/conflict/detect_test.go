package conflict

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/courseplan/core/course"
)

func newCourse(code string, sessions ...course.Session) course.Course {
	return course.Course{Code: course.Code(code), Title: code, Credits: 3, Sessions: sessions}
}

func monday(start, end float64) course.Session {
	return course.Session{Day: course.Monday, Start: start, End: end}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		courses []course.Course
		want    []course.Code
	}{
		{name: "no courses", want: []course.Code{}},
		{
			name:    "overlap",
			courses: []course.Course{newCourse("A", monday(9, 10.5)), newCourse("B", monday(10, 11))},
			want:    []course.Code{"A", "B"},
		},
		{
			name:    "touching",
			courses: []course.Course{newCourse("A", monday(9, 10)), newCourse("B", monday(10, 11))},
			want:    []course.Code{},
		},
		{
			name: "different days",
			courses: []course.Course{
				newCourse("A", monday(9, 10.5)),
				newCourse("B", course.Session{Day: course.Tuesday, Start: 9, End: 10.5}),
			},
			want: []course.Code{},
		},
		{
			name:    "unsorted input",
			courses: []course.Course{newCourse("B", monday(13, 14)), newCourse("A", monday(12, 13.5))},
			want:    []course.Code{"A", "B"},
		},
		{
			name: "only neighbours are compared",
			// A spans B and C, but only A-B are neighbours once sorted.
			courses: []course.Course{
				newCourse("A", monday(9, 12)),
				newCourse("B", monday(9.5, 10)),
				newCourse("C", monday(10, 11)),
			},
			want: []course.Code{"A", "B"},
		},
		{
			name: "same start keeps input order",
			courses: []course.Course{
				newCourse("A", monday(9, 9.5)),
				newCourse("B", monday(9, 12)),
				newCourse("C", monday(10, 11)),
			},
			want: []course.Code{"A", "B", "C"},
		},
		{
			name: "same start, other input order",
			courses: []course.Course{
				newCourse("B", monday(9, 12)),
				newCourse("A", monday(9, 9.5)),
				newCourse("C", monday(10, 11)),
			},
			want: []course.Code{"A", "B"},
		},
		{
			name: "demo plan",
			courses: []course.Course{
				newCourse("CSI 2300", monday(9, 10.5), course.Session{Day: course.Wednesday, Start: 9, End: 10.5}),
				newCourse("MTH 1554", course.Session{Day: course.Tuesday, Start: 11, End: 12.5}),
				newCourse("PHY 1510", monday(13, 14.5)),
				newCourse("WRT 1060", course.Session{Day: course.Tuesday, Start: 14, End: 15.5}),
			},
			want: []course.Code{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.courses)
			assert.Equal(t, tt.want, got.Codes())
			assert.Equal(t, len(tt.want), got.Len())
			for _, code := range tt.want {
				assert.True(t, got.Has(code))
			}
		})
	}
}

func TestSet_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Detect([]course.Course{newCourse("B", monday(9, 10.5)), newCourse("A", monday(10, 11))}))
	require.NoError(t, err)
	assert.JSONEq(t, `["A","B"]`, string(data))

	data, err = json.Marshal(Set{})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}
