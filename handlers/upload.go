package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/interviewcoach/backend/analysis"
	"github.com/interviewcoach/backend/models"
	"github.com/interviewcoach/backend/utils"
)

// UploadHandler handles resume file uploads
type UploadHandler struct {
	extractor *utils.DocumentExtractor
	analyzer  *analysis.ResumeAnalyzer
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(extractor *utils.DocumentExtractor, analyzer *analysis.ResumeAnalyzer) *UploadHandler {
	return &UploadHandler{
		extractor: extractor,
		analyzer:  analyzer,
	}
}

// UploadResume extracts text from an uploaded resume file and analyzes it
// @Summary Upload resume
// @Description Upload a PDF or TXT resume, extract its text, and analyze it
// @Tags Analysis
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file (.pdf, .txt, .text)"
// @Success 200 {object} models.ResumeAnalysisResponse "Detected skills and level"
// @Failure 400 {object} models.ErrorResponse "Missing file, unsupported format, or unreadable content"
// @Failure 500 {object} models.ErrorResponse "Unexpected extraction failure"
// @Router /upload-resume [post]
func (h *UploadHandler) UploadResume(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "No file provided",
			Code:  http.StatusBadRequest,
		})
		return
	}
	defer file.Close()

	text, err := h.extractor.ExtractText(file, header)
	if err != nil {
		log.Printf("[UploadHandler] extraction failed for %s: %v", header.Filename, err)
		respondExtractionError(c, err)
		return
	}

	if strings.TrimSpace(text) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Could not extract text from file",
			Code:  http.StatusBadRequest,
		})
		return
	}

	skills, level, err := h.analyzer.Analyze(text)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ResumeAnalysisResponse{
		Skills:          skills,
		ExperienceLevel: string(level),
	})
}

func respondExtractionError(c *gin.Context, err error) {
	if errors.Is(err, utils.ErrUnsupportedFormat) || errors.Is(err, utils.ErrMalformedPDF) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: err.Error(),
			Code:  http.StatusBadRequest,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "Error processing file",
		Code:    http.StatusInternalServerError,
		Details: err.Error(),
	})
}
