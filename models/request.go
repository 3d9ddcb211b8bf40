package models

// ResumeAnalysisRequest represents the API request for resume analysis
// @Description Resume analysis request with raw resume text
type ResumeAnalysisRequest struct {
	Text string `json:"text" binding:"required" example:"John Doe\nSWE at Google\nSkills: Python, SQL, Docker\n5+ years experience"`
}

// ResumeAnalysisResponse represents the API response for resume analysis
// @Description Detected skill tags and inferred experience level
type ResumeAnalysisResponse struct {
	Skills          []string `json:"skills" example:"python,sql,docker"`
	ExperienceLevel string   `json:"experience_level" example:"senior"`
}

// QuestionGenerationRequest represents the API request for question generation
// @Description Question generation request from resume analysis output
type QuestionGenerationRequest struct {
	Skills          []string `json:"skills" example:"python,sql,docker"`
	ExperienceLevel string   `json:"experience_level" binding:"required" example:"senior"`
	Role            string   `json:"role" binding:"required" example:"software engineer"`
}

// InterviewQuestion is a single generated question
// @Description Interview question with per-response sequential ID
type InterviewQuestion struct {
	ID       int    `json:"id" example:"1"`
	Question string `json:"question" example:"Describe a time you optimized database performance."`
}

// QuestionGenerationResponse represents the API response for question generation
// @Description Generated interview questions
type QuestionGenerationResponse struct {
	Questions []InterviewQuestion `json:"questions"`
}

// AnswerEvaluationRequest represents the API request for answer evaluation
// @Description Answer evaluation request; role is optional context
type AnswerEvaluationRequest struct {
	Question     string   `json:"question" binding:"required" example:"Describe a time you optimized performance."`
	Answer       string   `json:"answer" binding:"required" example:"I optimized a Python backend by caching database queries..."`
	ResumeSkills []string `json:"resume_skills" example:"python,sql"`
	Role         string   `json:"role" example:"software engineer"`
}

// AnswerEvaluationResponse represents the API response for answer evaluation
// @Description Heuristic answer scores and improvement suggestions
type AnswerEvaluationResponse struct {
	Relevance      float64  `json:"relevance" example:"7.5"`
	StructureSTAR  bool     `json:"structure_star" example:"true"`
	MissingPoints  []string `json:"missing_points" example:"Add metrics to show impact"`
	ImprovedAnswer string   `json:"improved_answer" example:"Situation: Our API was slow. Task: I led optimization..."`
	Confidence     float64  `json:"confidence" example:"85.0"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"422"`
	Details string `json:"details,omitempty" example:"answer is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Service string `json:"service" example:"interview-coach-backend"`
}
