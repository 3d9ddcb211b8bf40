package analysis

import "strings"

// skillEntry pairs a canonical skill tag with the lowercase keyword
// variants that signal it in resume text.
type skillEntry struct {
	Skill    string
	Keywords []string
}

// defaultSkillTable is the fixed, ordered skill detection table. Ordering
// only affects the order skills are reported in; detection itself is
// independent per entry.
var defaultSkillTable = []skillEntry{
	{"python", []string{"python", "django", "flask", "fastapi", "pandas", "numpy"}},
	{"javascript", []string{"javascript", "js", "node", "react", "vue", "angular"}},
	{"sql", []string{"sql", "mysql", "postgresql", "sqlite", "oracle"}},
	{"docker", []string{"docker", "kubernetes", "k8s", "container"}},
	{"aws", []string{"aws", "ec2", "s3", "lambda", "cloudformation"}},
	{"git", []string{"git", "github", "gitlab", "bitbucket"}},
	{"linux", []string{"linux", "ubuntu", "centos", "bash", "shell"}},
	{"api", []string{"api", "rest", "graphql", "json", "http"}},
	{"testing", []string{"pytest", "unittest", "jest", "selenium", "cypress"}},
	{"ci/cd", []string{"jenkins", "github actions", "gitlab ci", "travis", "circleci"}},
}

var defaultSeniorKeywords = []string{"senior", "lead", "principal", "architect", "manager", "director"}

var defaultAdvancedKeywords = []string{"architect", "distributed", "microservices", "scalability"}

// ResumeAnalyzer extracts skill tags and an experience level from raw
// resume text by keyword matching against its tables.
type ResumeAnalyzer struct {
	skills           []skillEntry
	seniorKeywords   []string
	advancedKeywords []string
}

// NewResumeAnalyzer creates an analyzer backed by the default keyword
// tables.
func NewResumeAnalyzer() *ResumeAnalyzer {
	return &ResumeAnalyzer{
		skills:           defaultSkillTable,
		seniorKeywords:   defaultSeniorKeywords,
		advancedKeywords: defaultAdvancedKeywords,
	}
}

// Analyze detects skill tags in text and derives an experience level from
// an accumulated score: +3 for a seniority title, +1..3 for a
// years-of-experience mention, +2 for advanced architecture keywords.
// Multiple matches within one signal do not stack.
func (a *ResumeAnalyzer) Analyze(text string) ([]string, ExperienceLevel, error) {
	if strings.TrimSpace(text) == "" {
		return nil, "", &ValidationError{Field: "text", Message: "resume text cannot be empty"}
	}

	lower := strings.ToLower(text)

	skills := make([]string, 0, len(a.skills))
	for _, entry := range a.skills {
		if containsAny(lower, entry.Keywords) {
			skills = append(skills, entry.Skill)
		}
	}

	score := 0
	if containsAny(lower, a.seniorKeywords) {
		score += 3
	}
	if years, ok := matchYearsOfExperience(lower); ok {
		switch {
		case years >= 7:
			score += 3
		case years >= 4:
			score += 2
		case years >= 2:
			score++
		}
	}
	if containsAny(lower, a.advancedKeywords) {
		score += 2
	}

	return skills, levelForScore(score), nil
}

func levelForScore(score int) ExperienceLevel {
	switch {
	case score >= 5:
		return LevelSenior
	case score >= 3:
		return LevelMid
	default:
		return LevelJunior
	}
}
