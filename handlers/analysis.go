package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/interviewcoach/backend/analysis"
	"github.com/interviewcoach/backend/models"
)

// AnalysisHandler handles resume analysis, question generation, and
// answer evaluation requests
type AnalysisHandler struct {
	analyzer  *analysis.ResumeAnalyzer
	generator *analysis.QuestionGenerator
	evaluator *analysis.AnswerEvaluator
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analyzer *analysis.ResumeAnalyzer, generator *analysis.QuestionGenerator, evaluator *analysis.AnswerEvaluator) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer:  analyzer,
		generator: generator,
		evaluator: evaluator,
	}
}

// AnalyzeResume extracts skills and an experience level from resume text
// @Summary Analyze resume
// @Description Extract skill tags and an experience level from raw resume text
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body models.ResumeAnalysisRequest true "Resume text"
// @Success 200 {object} models.ResumeAnalysisResponse "Detected skills and level"
// @Failure 422 {object} models.ErrorResponse "Empty or missing resume text"
// @Router /analyze-resume [post]
func (h *AnalysisHandler) AnalyzeResume(c *gin.Context) {
	var req models.ResumeAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	skills, level, err := h.analyzer.Analyze(req.Text)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ResumeAnalysisResponse{
		Skills:          skills,
		ExperienceLevel: string(level),
	})
}

// GenerateQuestions builds an interview question list
// @Summary Generate interview questions
// @Description Generate interview questions from skills, experience level, and target role
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body models.QuestionGenerationRequest true "Skills, level, and role"
// @Success 200 {object} models.QuestionGenerationResponse "Generated questions"
// @Failure 422 {object} models.ErrorResponse "Missing required fields"
// @Router /generate-questions [post]
func (h *AnalysisHandler) GenerateQuestions(c *gin.Context) {
	var req models.QuestionGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	generated := h.generator.Generate(req.Skills, analysis.ExperienceLevel(req.ExperienceLevel), req.Role)

	questions := make([]models.InterviewQuestion, 0, len(generated))
	for _, q := range generated {
		questions = append(questions, models.InterviewQuestion{
			ID:       q.ID,
			Question: q.Question,
		})
	}

	c.JSON(http.StatusOK, models.QuestionGenerationResponse{Questions: questions})
}

// EvaluateAnswer scores a candidate answer
// @Summary Evaluate answer
// @Description Score a free-text answer for relevance, STAR structure, and confidence
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body models.AnswerEvaluationRequest true "Question, answer, and resume skills"
// @Success 200 {object} models.AnswerEvaluationResponse "Answer scores"
// @Failure 422 {object} models.ErrorResponse "Empty or missing answer"
// @Router /evaluate-answer [post]
func (h *AnalysisHandler) EvaluateAnswer(c *gin.Context) {
	var req models.AnswerEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	eval, err := h.evaluator.Evaluate(req.Question, req.Answer, req.ResumeSkills, req.Role)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AnswerEvaluationResponse{
		Relevance:      eval.Relevance,
		StructureSTAR:  eval.StructureSTAR,
		MissingPoints:  eval.MissingPoints,
		ImprovedAnswer: eval.ImprovedAnswer,
		Confidence:     eval.Confidence,
	})
}

func respondInvalidBody(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
		Error:   "Invalid request body",
		Code:    http.StatusUnprocessableEntity,
		Details: err.Error(),
	})
}

func respondAnalysisError(c *gin.Context, err error) {
	var verr *analysis.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: verr.Message,
			Code:  http.StatusUnprocessableEntity,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "Analysis failed",
		Code:    http.StatusInternalServerError,
		Details: err.Error(),
	})
}
