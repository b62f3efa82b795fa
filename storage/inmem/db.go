package inmemdb

import (
	"sync"

	"github.com/trezcool/courseplan/core/course"
)

type (
	DB struct {
		course *courseTable
	}

	courseTable struct {
		sync.RWMutex
		table map[course.Code]*course.Course
		order []course.Code // insertion order
	}
)

func Open() *DB {
	return &DB{
		course: &courseTable{table: make(map[course.Code]*course.Course)},
	}
}
