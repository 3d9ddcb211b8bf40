package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchYearsOfExperience(t *testing.T) {
	tests := []struct {
		text  string
		years int
		ok    bool
	}{
		{"10+ years of experience", 10, true},
		{"5 years in backend work", 5, true},
		{"1 year internship", 1, true},
		{"3years", 3, true},
		{"worked for many years", 0, false},
		{"no experience mention", 0, false},
		{"2 years then 10 years", 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			years, ok := matchYearsOfExperience(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.years, years)
		})
	}
}

func TestMentionsQuantifiedImpact(t *testing.T) {
	assert.True(t, mentionsQuantifiedImpact("reduced latency by 40%"))
	assert.True(t, mentionsQuantifiedImpact("a 2x speedup"))
	assert.True(t, mentionsQuantifiedImpact("decreased build times"))
	assert.True(t, mentionsQuantifiedImpact("increased throughput"))
	assert.True(t, mentionsQuantifiedImpact("improved reliability"))
	assert.False(t, mentionsQuantifiedImpact("made things better"))
}

func TestMentionsMetric(t *testing.T) {
	assert.True(t, mentionsMetric("40% faster"))
	assert.True(t, mentionsMetric("2x improvement in builds"))
	assert.False(t, mentionsMetric("improved reliability"))
	assert.False(t, mentionsMetric("no numbers here"))
}
