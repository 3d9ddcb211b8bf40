package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interviewcoach/backend/analysis"
	"github.com/interviewcoach/backend/models"
	"github.com/interviewcoach/backend/utils"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	analyzer := analysis.NewResumeAnalyzer()
	analysisHandler := NewAnalysisHandler(analyzer, analysis.NewQuestionGenerator(), analysis.NewAnswerEvaluator())
	uploadHandler := NewUploadHandler(utils.NewDocumentExtractor(), analyzer)

	router := gin.New()
	router.GET("/health", HealthCheck("interview-coach-backend"))
	router.POST("/analyze-resume", analysisHandler.AnalyzeResume)
	router.POST("/generate-questions", analysisHandler.GenerateQuestions)
	router.POST("/evaluate-answer", analysisHandler.EvaluateAnswer)
	router.POST("/upload-resume", uploadHandler.UploadResume)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "interview-coach-backend", resp.Service)
}

func TestAnalyzeResume_OK(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/analyze-resume", models.ResumeAnalysisRequest{
		Text: "Senior Python Developer. 10+ years. Skills: Python, Django, PostgreSQL, AWS",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ResumeAnalysisResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Skills, "python")
	assert.Equal(t, "senior", resp.ExperienceLevel)
}

func TestAnalyzeResume_EmptyText(t *testing.T) {
	router := setupRouter()

	for _, text := range []string{"", "   "} {
		w := postJSON(t, router, "/analyze-resume", gin.H{"text": text})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	}
}

func TestGenerateQuestions_OK(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/generate-questions", models.QuestionGenerationRequest{
		Skills:          []string{"python", "sql"},
		ExperienceLevel: "senior",
		Role:            "software engineer",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.QuestionGenerationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Questions)
	require.LessOrEqual(t, len(resp.Questions), 5)
	for i, q := range resp.Questions {
		assert.Equal(t, i+1, q.ID)
		assert.NotEmpty(t, q.Question)
	}
}

func TestGenerateQuestions_MissingFields(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/generate-questions", gin.H{"skills": []string{"python"}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestEvaluateAnswer_OK(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/evaluate-answer", models.AnswerEvaluationRequest{
		Question:     "Describe a time you optimized performance.",
		Answer:       "The situation was a slow API. My task was to fix it. I implemented caching as the main action. The result improved latency by 40%.",
		ResumeSkills: []string{"caching"},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AnswerEvaluationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.StructureSTAR)
	assert.Greater(t, resp.Relevance, 0.0)
	assert.LessOrEqual(t, resp.Relevance, 10.0)
	assert.Greater(t, resp.Confidence, 0.0)
	assert.LessOrEqual(t, resp.Confidence, 100.0)
	assert.NotEmpty(t, resp.ImprovedAnswer)
}

func TestEvaluateAnswer_EmptyAnswer(t *testing.T) {
	router := setupRouter()

	for _, answer := range []string{"", "   "} {
		w := postJSON(t, router, "/evaluate-answer", gin.H{
			"question": "Tell me about a project.",
			"answer":   answer,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	}
}

// Full pipeline: analyze -> generate -> evaluate, composing endpoint
// outputs the way a frontend would.
func TestAnalysisPipeline(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/analyze-resume", models.ResumeAnalysisRequest{
		Text: "Senior Python Developer. 10+ years building distributed systems with Python, PostgreSQL, and AWS.",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var analyzed models.ResumeAnalysisResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analyzed))
	require.Equal(t, "senior", analyzed.ExperienceLevel)

	w = postJSON(t, router, "/generate-questions", models.QuestionGenerationRequest{
		Skills:          analyzed.Skills,
		ExperienceLevel: analyzed.ExperienceLevel,
		Role:            "software engineer",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var generated models.QuestionGenerationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &generated))
	require.NotEmpty(t, generated.Questions)

	w = postJSON(t, router, "/evaluate-answer", models.AnswerEvaluationRequest{
		Question:     generated.Questions[0].Question,
		Answer:       "In a previous project our team faced a scaling problem. My task was to find the bottleneck. I implemented caching with Python and tuned PostgreSQL. The result improved response times by 60%.",
		ResumeSkills: analyzed.Skills,
		Role:         "software engineer",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var eval models.AnswerEvaluationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &eval))
	assert.Greater(t, eval.Relevance, 0.0)
	assert.GreaterOrEqual(t, eval.Confidence, 0.0)
	assert.LessOrEqual(t, eval.Confidence, 100.0)
}
