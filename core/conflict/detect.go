// Package conflict finds the enrolled courses whose meeting times overlap.
package conflict

import (
	"encoding/json"
	"sort"

	"github.com/trezcool/courseplan/core/course"
)

// Set holds the codes of the conflicting courses.
type Set struct {
	codes course.CodeSet
}

func (s Set) Has(code course.Code) bool { return s.codes.Has(code) }
func (s Set) Len() int                  { return len(s.codes) }

// Codes returns the conflicting codes in lexical order.
func (s Set) Codes() []course.Code { return s.codes.Sorted() }

func (s Set) MarshalJSON() ([]byte, error) { return json.Marshal(s.Codes()) }

type block struct {
	code       course.Code
	start, end float64
}

// Detect reports the courses having a session that overlaps another course's session on the same day.
//
// Blocks of a day are sorted by start time and only neighbours are compared: a block is
// flagged when the previous one ends after it starts. Ties keep the order of `courses`.
// Touching blocks (one ends when the next starts) are not in conflict.
func Detect(courses []course.Course) Set {
	set := Set{codes: make(course.CodeSet)}
	for day := course.Monday; day <= course.Friday; day++ {
		var blocks []block
		for _, c := range courses {
			for _, s := range c.Sessions {
				if s.Day == day {
					blocks = append(blocks, block{code: c.Code, start: s.Start, end: s.End})
				}
			}
		}
		sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].start < blocks[j].start })

		for i := 0; i+1 < len(blocks); i++ {
			prev, next := blocks[i], blocks[i+1]
			if prev.end > next.start {
				set.codes[prev.code] = struct{}{}
				set.codes[next.code] = struct{}{}
			}
		}
	}
	return set
}
