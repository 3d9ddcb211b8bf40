package analysis

import (
	"regexp"
	"strconv"
)

var (
	yearsPattern      = regexp.MustCompile(`(\d+)\+?\s*years?`)
	quantifiedPattern = regexp.MustCompile(`\d+%|\d+x|decreased|increased|improved`)
	metricPattern     = regexp.MustCompile(`\d+%|\d+x`)
)

// matchYearsOfExperience extracts the number of years from the first
// "<n>+ years" style mention in text, if any. Later mentions are ignored.
func matchYearsOfExperience(text string) (int, bool) {
	m := yearsPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	years, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return years, true
}

// mentionsQuantifiedImpact reports whether text quantifies an outcome:
// a percentage, a multiplier, or an improvement verb.
func mentionsQuantifiedImpact(text string) bool {
	return quantifiedPattern.MatchString(text)
}

// mentionsMetric reports whether text contains a numeric metric
// (percentage or multiplier). Narrower than mentionsQuantifiedImpact.
func mentionsMetric(text string) bool {
	return metricPattern.MatchString(text)
}
