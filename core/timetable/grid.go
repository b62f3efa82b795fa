// Package timetable lays enrolled sessions out on the weekly grid shown to the student.
package timetable

import (
	"math"

	"github.com/trezcool/courseplan/core/conflict"
	"github.com/trezcool/courseplan/core/course"
)

const (
	FirstHour = 9  // 9 AM
	LastHour  = 17 // 5 PM
	LunchHour = 12
)

type (
	Row struct {
		Hour  int    `json:"hour"`
		Label string `json:"label"`
		Break bool   `json:"break"`
	}

	Event struct {
		Course   course.Code `json:"course"`
		Label    string      `json:"label"`
		Column   int         `json:"column"` // 0 is Monday
		Row      int         `json:"row"`
		Offset   float64     `json:"offset"` // fraction of the row before the event starts
		Height   float64     `json:"height"` // in hours
		Conflict bool        `json:"conflict"`
	}

	Grid struct {
		Days   []string `json:"days"`
		Rows   []Row    `json:"rows"`
		Events []Event  `json:"events"`
	}
)

// Build places every session of `courses` on the grid. Sessions starting after the last row are left out.
func Build(courses []course.Course, conflicts conflict.Set) Grid {
	g := Grid{Events: []Event{}}
	for day := course.Monday; day <= course.Friday; day++ {
		g.Days = append(g.Days, course.DayName(day))
	}
	for hour := FirstHour; hour <= LastHour; hour++ {
		g.Rows = append(g.Rows, Row{Hour: hour, Label: course.HoursLabel(float64(hour)), Break: hour == LunchHour})
	}

	for _, c := range courses {
		for _, s := range c.Sessions {
			row := int(math.Max(0, math.Floor(s.Start-FirstHour)))
			if row >= len(g.Rows) {
				continue
			}
			g.Events = append(g.Events, Event{
				Course:   c.Code,
				Label:    s.String(),
				Column:   s.Day - 1,
				Row:      row,
				Offset:   s.Start - math.Floor(s.Start),
				Height:   s.End - s.Start,
				Conflict: conflicts.Has(c.Code),
			})
		}
	}
	return g
}
