package analysis

import "strings"

// Question is a generated interview question. IDs are sequential within a
// single response and are not stable across calls.
type Question struct {
	ID       int
	Question string
}

// roleEntry pairs a role name with its question list. Matching is by
// substring against the lowered input role, so "senior backend developer"
// picks up the "backend developer" entry.
type roleEntry struct {
	Role      string
	Questions []string
}

var defaultBehavioralQuestions = []string{
	"Tell me about a time you solved a difficult problem.",
	"Describe a situation where you had to learn something new quickly.",
	"Tell me about a time you received critical feedback and how you handled it.",
	"Describe a project where you had to work with a difficult team member.",
	"Tell me about a time you had to make a tough decision under pressure.",
}

var defaultSkillQuestions = map[string][]string{
	"python":     {"How do you handle memory management in Python?", "Explain Python's GIL and when it matters.", "How do you optimize Python code performance?"},
	"javascript": {"Explain event loop and asynchronous programming in JavaScript.", "How do you handle state management in a React application?", "Describe closures and their practical uses."},
	"sql":        {"How do you optimize slow database queries?", "Explain database normalization and when to denormalize.", "How do you handle database migrations in production?"},
	"docker":     {"How do you secure Docker containers in production?", "Explain Docker networking and container communication.", "How do you optimize Docker image size?"},
	"aws":        {"How do you design for high availability on AWS?", "Explain AWS security best practices.", "How do you optimize AWS costs?"},
	"api":        {"How do you design RESTful APIs?", "Explain API versioning strategies.", "How do you handle API rate limiting?"},
	"testing":    {"How do you approach testing in your development process?", "Explain the difference between unit and integration tests.", "How do you test asynchronous code?"},
}

var defaultLevelQuestions = map[ExperienceLevel][]string{
	LevelJunior: {"What is your favorite programming language and why?", "How do you stay updated with technology trends?", "Describe your debugging process."},
	LevelMid:    {"How do you approach code reviews?", "Describe your experience with agile development.", "How do you handle technical debt?"},
	LevelSenior: {"How do you mentor junior developers?", "Describe your experience leading technical projects.", "How do you make architectural decisions?"},
}

var defaultRoleQuestions = []roleEntry{
	{"software engineer", []string{"How do you ensure code quality?", "Describe your experience with version control.", "How do you handle production incidents?"}},
	{"data scientist", []string{"How do you approach feature engineering?", "Explain model validation techniques.", "How do you communicate technical findings to non-technical stakeholders?"}},
	{"devops engineer", []string{"How do you implement CI/CD pipelines?", "Describe your experience with infrastructure as code.", "How do you monitor system performance?"}},
	{"frontend developer", []string{"How do you optimize web application performance?", "Describe your experience with responsive design.", "How do you handle browser compatibility?"}},
	{"backend developer", []string{"How do you design scalable systems?", "Describe your experience with databases.", "How do you handle concurrent requests?"}},
}

// QuestionGenerator builds interview question lists from static pools
// keyed by skill, experience level, and target role.
type QuestionGenerator struct {
	behavioral     []string
	skillQuestions map[string][]string
	levelQuestions map[ExperienceLevel][]string
	roleQuestions  []roleEntry
	maxQuestions   int
}

// NewQuestionGenerator creates a generator backed by the default question
// pools, returning at most 5 questions per call.
func NewQuestionGenerator() *QuestionGenerator {
	return &QuestionGenerator{
		behavioral:     defaultBehavioralQuestions,
		skillQuestions: defaultSkillQuestions,
		levelQuestions: defaultLevelQuestions,
		roleQuestions:  defaultRoleQuestions,
		maxQuestions:   5,
	}
}

// Generate assembles a candidate pool in a fixed order (behavioral, then
// per-skill, then level-specific, then per-role), deduplicates it
// preserving insertion order, and returns the first questions with
// sequential IDs from 1. Unrecognized skills, levels, and roles simply
// contribute nothing; the behavioral pool guarantees a non-empty result.
func (g *QuestionGenerator) Generate(skills []string, level ExperienceLevel, role string) []Question {
	pool := make([]string, 0, len(g.behavioral)+2*len(skills)+5)
	pool = append(pool, g.behavioral...)

	for _, skill := range skills {
		if qs, ok := g.skillQuestions[skill]; ok {
			pool = append(pool, firstN(qs, 2)...)
		}
	}

	pool = append(pool, g.levelQuestions[level]...)

	roleLower := strings.ToLower(role)
	for _, entry := range g.roleQuestions {
		if strings.Contains(roleLower, entry.Role) {
			pool = append(pool, firstN(entry.Questions, 2)...)
		}
	}

	seen := make(map[string]struct{}, len(pool))
	selected := make([]Question, 0, g.maxQuestions)
	for _, q := range pool {
		if _, dup := seen[q]; dup {
			continue
		}
		seen[q] = struct{}{}
		selected = append(selected, Question{ID: len(selected) + 1, Question: q})
		if len(selected) == g.maxQuestions {
			break
		}
	}
	return selected
}
