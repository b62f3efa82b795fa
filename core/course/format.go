package course

import (
	"fmt"
	"math"
	"strings"
)

var dayNames = [...]string{"", "Mon", "Tue", "Wed", "Thu", "Fri"}

// DayName returns the short weekday name, or "" if `day` is out of range.
func DayName(day int) string {
	if day < Monday || day > Friday {
		return ""
	}
	return dayNames[day]
}

// HoursLabel formats fractional hours as a 12h clock label: 13.25 -> "1:15 PM".
func HoursLabel(h float64) string {
	hour := int(math.Floor(h))
	minutes := int(math.Round((h - float64(hour)) * 60))
	if minutes == 60 {
		hour++
		minutes = 0
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, minutes, ampm)
}

func (s Session) String() string {
	return DayName(s.Day) + " " + HoursLabel(s.Start) + "–" + HoursLabel(s.End)
}

// SessionsText lists the course's meeting times on one line.
func (c Course) SessionsText() string {
	parts := make([]string, 0, len(c.Sessions))
	for _, s := range c.Sessions {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, " • ")
}

// Details is the multi-line description shown when a course is inspected.
func (c Course) Details() string {
	prereqs := "None"
	if len(c.Prereqs) > 0 {
		prereqs = JoinCodes(c.Prereqs)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s — %s\n", c.Code, c.Title)
	fmt.Fprintf(&b, "Credits: %d\n", c.Credits)
	fmt.Fprintf(&b, "Instructor: %s\n", c.Instructor)
	fmt.Fprintf(&b, "Location: %s\n", c.Location)
	fmt.Fprintf(&b, "Seats: %d\n", c.Seats)
	fmt.Fprintf(&b, "Prereqs: %s\n", prereqs)
	b.WriteString("Times:")
	for _, s := range c.Sessions {
		b.WriteString("\n• " + s.String())
	}
	return b.String()
}

// JoinCodes joins codes with ", ".
func JoinCodes(codes []Code) string {
	strs := make([]string, len(codes))
	for i, c := range codes {
		strs[i] = string(c)
	}
	return strings.Join(strs, ", ")
}
