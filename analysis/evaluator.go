package analysis

import (
	"math"
	"strings"
)

// Evaluation is the multi-dimensional result of scoring one answer.
type Evaluation struct {
	Relevance      float64
	StructureSTAR  bool
	MissingPoints  []string
	ImprovedAnswer string
	Confidence     float64
}

// starCategory is one of the four STAR components with the keywords that
// mark it as present in an answer.
type starCategory struct {
	Name     string
	Keywords []string
}

var defaultStarCategories = []starCategory{
	{"situation", []string{"situation", "context", "background", "team", "company", "project", "faced"}},
	{"task", []string{"task", "challenge", "problem", "goal", "asked", "responsibility", "needed"}},
	{"action", []string{"action", "i did", "i led", "i implemented", "i developed", "i wrote", "i created"}},
	{"result", []string{"result", "outcome", "impact", "improved", "achieved", "metrics", "delivered"}},
}

var defaultCollaborationCues = []string{"we", "team", "collaborated", "led"}

const defaultImprovedAnswer = "**Situation:** Start with context: 'At [Company], I was part of a team where...' **Task:** Explain the challenge: 'We faced [specific problem]...' **Action:** Describe what YOU did (use 'I'): 'I led the effort to [action]...' **Result:** End with impact: 'This resulted in [metric], improving [outcome] by X%.' \n\nExample: 'At TechCorp, our API response times were slow. I optimized the database queries, added caching, and implemented connection pooling. This reduced P99 latency by 60% and improved user satisfaction scores by 25%.'"

// AnswerEvaluator scores free-text interview answers against keyword and
// length heuristics.
type AnswerEvaluator struct {
	starCategories    []starCategory
	collaborationCues []string
	improvedAnswer    string
}

// NewAnswerEvaluator creates an evaluator backed by the default STAR
// keyword tables and answer template.
func NewAnswerEvaluator() *AnswerEvaluator {
	return &AnswerEvaluator{
		starCategories:    defaultStarCategories,
		collaborationCues: defaultCollaborationCues,
		improvedAnswer:    defaultImprovedAnswer,
	}
}

// Evaluate scores a candidate answer. The question and role arguments are
// accepted for future context-aware scoring and do not currently affect
// the result. Relevance is clamped to [0, 10] and confidence to [0, 100],
// both rounded to one decimal.
func (e *AnswerEvaluator) Evaluate(question, answer string, resumeSkills []string, role string) (*Evaluation, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, &ValidationError{Field: "answer", Message: "answer cannot be empty"}
	}
	_ = question
	_ = role

	lower := strings.ToLower(answer)
	wordCount := len(strings.Fields(answer))

	relevance := 2.0
	for _, skill := range resumeSkills {
		if strings.Contains(lower, strings.ToLower(skill)) {
			relevance += 2.0
		}
	}
	switch {
	case wordCount > 150:
		relevance += 3.5
	case wordCount > 100:
		relevance += 2.5
	case wordCount > 60:
		relevance += 1.5
	case wordCount < 20:
		relevance -= 1.0
	}
	quantified := mentionsQuantifiedImpact(lower)
	if quantified {
		relevance += 1.5
	}
	relevance = clamp(relevance, 0, 10)

	var missing []string
	present := 0
	for _, cat := range e.starCategories {
		if containsAny(lower, cat.Keywords) {
			present++
		} else {
			missing = append(missing, strings.ToUpper(cat.Name))
		}
	}
	structureSTAR := present >= 3

	missingPoints := []string{}
	if !structureSTAR && len(missing) > 0 {
		missingPoints = append(missingPoints, "Add missing STAR components: "+strings.Join(missing, ", "))
	}
	if relevance < 4.0 {
		missingPoints = append(missingPoints, "Mention more relevant technical skills or specific projects")
	}
	if wordCount < 60 {
		missingPoints = append(missingPoints, "Provide more detail. Aim for 80+ words to show depth")
	}
	if !quantified {
		missingPoints = append(missingPoints, "Quantify impact with metrics (e.g., '40% faster', '2x improvement')")
	}

	confidence := 45.0
	confidence += math.Min(30.0, float64(wordCount)/5.0)
	if structureSTAR {
		confidence += 20.0
	}
	if containsAny(lower, e.collaborationCues) {
		confidence += 5.0
	}
	if mentionsMetric(lower) {
		confidence += 5.0
	}
	confidence = clamp(confidence, 0, 100)

	return &Evaluation{
		Relevance:      round1(relevance),
		StructureSTAR:  structureSTAR,
		MissingPoints:  missingPoints,
		ImprovedAnswer: e.improvedAnswer,
		Confidence:     round1(confidence),
	}, nil
}
