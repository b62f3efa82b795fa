package core

import "strings"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// SquashSpaces replaces every run of whitespace in `s` by a single space and trims it.
func SquashSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
