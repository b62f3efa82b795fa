package course

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const minHintRatio = .6

// Closest returns the code most similar to `input`, for "did you mean" hints.
// ok is false when nothing is similar enough.
func Closest(codes []Code, input string) (match Code, ok bool) {
	target := NormalizeCode(input)
	if target == "" {
		return "", false
	}
	best := 0.0
	for _, c := range codes {
		ratio := difflib.NewMatcher(strings.Split(string(target), ""), strings.Split(string(c), "")).Ratio()
		if ratio > best {
			best, match = ratio, c
		}
	}
	if best < minHintRatio {
		return "", false
	}
	return match, true
}
