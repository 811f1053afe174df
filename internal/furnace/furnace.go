// Package furnace extracts furnace-level tokens from free-form chat text so
// upgrade posts can be celebrated.
package furnace

import (
	"fmt"
	"regexp"
	"strconv"
)

// Patterns are tried in order; the first whose number is in range wins. An
// out-of-range hit (F35) falls through to the remaining patterns.
var (
	levelRe   = regexp.MustCompile(`(?i)\bF(\d{1,2})\b`)
	crystalRe = regexp.MustCompile(`(?i)\bFC(\d{1,2})\b`)
	wordRe    = regexp.MustCompile(`(?i)FURNACE\s*(\d{1,2})`)
)

const (
	maxLevel   = 30
	maxCrystal = 10
)

// Parse returns the canonical level token mentioned in text ("F12", "FC3"),
// or false if none is present.
func Parse(text string) (string, bool) {
	if m := levelRe.FindStringSubmatch(text); m != nil {
		if n, _ := strconv.Atoi(m[1]); n >= 1 && n <= maxLevel {
			return fmt.Sprintf("F%d", n), true
		}
	}
	if m := crystalRe.FindStringSubmatch(text); m != nil {
		if n, _ := strconv.Atoi(m[1]); n >= 1 && n <= maxCrystal {
			return fmt.Sprintf("FC%d", n), true
		}
	}
	if m := wordRe.FindStringSubmatch(text); m != nil {
		if n, _ := strconv.Atoi(m[1]); n >= 1 && n <= maxLevel {
			return fmt.Sprintf("F%d", n), true
		}
	}
	return "", false
}
