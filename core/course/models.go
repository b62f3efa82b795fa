package course

import (
	"sort"
	"strings"

	"github.com/trezcool/courseplan/core"
)

// Weekdays
const (
	Monday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
)

// Code identifies a Course. Always build it with NormalizeCode.
type Code string

// NormalizeCode trims `s`, squashes inner whitespace and upper-cases it: " csi   2300" -> "CSI 2300".
func NormalizeCode(s string) Code {
	return Code(strings.ToUpper(core.SquashSpaces(s)))
}

func (c Code) String() string { return string(c) }

// CodeSet is an unordered set of course codes.
type CodeSet map[Code]struct{}

func NewCodeSet(codes ...Code) CodeSet {
	set := make(CodeSet, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}

// NewCodeSetFromMap returns the set of keys of `m`.
func NewCodeSetFromMap(m map[Code]int) CodeSet {
	set := make(CodeSet, len(m))
	for c := range m {
		set[c] = struct{}{}
	}
	return set
}

func (s CodeSet) Has(c Code) bool {
	_, ok := s[c]
	return ok
}

// Sorted returns the codes in lexical order.
func (s CodeSet) Sorted() []Code {
	codes := make([]Code, 0, len(s))
	for c := range s {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Session is a weekly meeting block. Times are fractional 24h hours: 10.5 is 10:30.
type Session struct {
	Day   int     `json:"day" yaml:"day" validate:"weekday"`
	Start float64 `json:"start" yaml:"start" validate:"min=0,max=24"`
	End   float64 `json:"end" yaml:"end" validate:"min=0,max=24,gtfield=Start"`
}

// Overlaps reports whether both blocks share some time on the same day. Touching blocks do not overlap.
func (s Session) Overlaps(other Session) bool {
	return s.Day == other.Day && s.Start < other.End && other.Start < s.End
}

type Alternative struct {
	Label    string    `json:"label" yaml:"label" validate:"notblank"`
	Sessions []Session `json:"sessions" yaml:"sessions" validate:"required,dive"`
}

type Course struct {
	Code         Code          `json:"code" yaml:"code" validate:"notblank"`
	Title        string        `json:"title" yaml:"title" validate:"notblank"`
	Credits      int           `json:"credits" yaml:"credits" validate:"gt=0"`
	Instructor   string        `json:"instructor" yaml:"instructor"`
	Location     string        `json:"location" yaml:"location"`
	Seats        int           `json:"seats" yaml:"seats" validate:"min=0"`
	Prereqs      []Code        `json:"prereqs" yaml:"prereqs"`
	Sessions     []Session     `json:"sessions" yaml:"sessions" validate:"dive"`
	Alternatives []Alternative `json:"alternatives" yaml:"alternatives" validate:"dive"`
}

// Copy returns a deep copy of the course, so callers can never alias the catalog's slices.
func (c Course) Copy() Course {
	cp := c
	cp.Prereqs = append([]Code(nil), c.Prereqs...)
	cp.Sessions = CopySessions(c.Sessions)
	if c.Alternatives != nil {
		cp.Alternatives = make([]Alternative, len(c.Alternatives))
		for i, alt := range c.Alternatives {
			cp.Alternatives[i] = Alternative{Label: alt.Label, Sessions: CopySessions(alt.Sessions)}
		}
	}
	return cp
}

// MissingPrereqs returns the prerequisites absent from `completed`, in declaration order.
func (c Course) MissingPrereqs(completed CodeSet) []Code {
	var missing []Code
	for _, p := range c.Prereqs {
		if !completed.Has(p) {
			missing = append(missing, p)
		}
	}
	return missing
}

// Matches does a case-insensitive search on code, title, instructor and location.
func (c Course) Matches(q string) bool {
	q = core.CleanString(q, true /* lower */)
	if q == "" {
		return true
	}
	blob := strings.ToLower(strings.Join([]string{string(c.Code), c.Title, c.Instructor, c.Location}, " "))
	return strings.Contains(blob, q)
}

func CopySessions(sessions []Session) []Session {
	if sessions == nil {
		return nil
	}
	return append(make([]Session, 0, len(sessions)), sessions...)
}
