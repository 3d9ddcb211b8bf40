// Package analysis implements the rule-based engines behind the interview
// coaching endpoints: resume analysis, question generation, and answer
// evaluation. All engines are pure and stateless; they hold only immutable
// keyword tables installed at construction time.
package analysis

import (
	"math"
	"strings"
)

// ExperienceLevel is the coarse seniority classification derived from
// resume text.
type ExperienceLevel string

const (
	LevelJunior ExperienceLevel = "junior"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
)

// containsAny reports whether any of the keywords appears as a substring
// of text. Callers are expected to lowercase text once up front.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// round1 rounds to one decimal place, matching the precision of the
// serialized score fields.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}
