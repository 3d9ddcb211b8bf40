package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interviewcoach/backend/models"
)

func postFile(t *testing.T, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload-resume", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	setupRouter().ServeHTTP(w, req)
	return w
}

func TestUploadResume_TextFile(t *testing.T) {
	w := postFile(t, "resume.txt", []byte("Senior Python Developer. 10+ years. Skills: Python, Django, PostgreSQL, AWS"))

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ResumeAnalysisResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Skills, "python")
	assert.Equal(t, "senior", resp.ExperienceLevel)
}

func TestUploadResume_NoFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/upload-resume", nil)

	w := httptest.NewRecorder()
	setupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadResume_UnsupportedFormat(t *testing.T) {
	w := postFile(t, "resume.docx", []byte("does not matter"))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "PDF and TXT")
}

func TestUploadResume_EmptyTextFile(t *testing.T) {
	w := postFile(t, "resume.txt", []byte("   \n  "))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "extract text")
}

func TestUploadResume_CorruptPDF(t *testing.T) {
	w := postFile(t, "resume.pdf", []byte("this is not a pdf"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
