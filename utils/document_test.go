package utils

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadedFile(t *testing.T, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := req.FormFile("file")
	require.NoError(t, err)
	return file, header
}

func TestExtractText_PlainText(t *testing.T) {
	extractor := NewDocumentExtractor()

	for _, filename := range []string{"resume.txt", "resume.text", "RESUME.TXT"} {
		file, header := uploadedFile(t, filename, []byte("Python developer, 5 years"))

		text, err := extractor.ExtractText(file, header)
		require.NoError(t, err)
		assert.Equal(t, "Python developer, 5 years", text)
	}
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	extractor := NewDocumentExtractor()

	for _, filename := range []string{"resume.docx", "resume.doc", "resume", "resume.png"} {
		file, header := uploadedFile(t, filename, []byte("content"))

		_, err := extractor.ExtractText(file, header)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, "filename %q", filename)
	}
}

func TestExtractText_MalformedPDF(t *testing.T) {
	extractor := NewDocumentExtractor()
	file, header := uploadedFile(t, "resume.pdf", []byte("not a real pdf document"))

	_, err := extractor.ExtractText(file, header)
	assert.ErrorIs(t, err, ErrMalformedPDF)
}

func TestIsSupportedFormat(t *testing.T) {
	extractor := NewDocumentExtractor()

	assert.True(t, extractor.IsSupportedFormat("resume.pdf"))
	assert.True(t, extractor.IsSupportedFormat("resume.txt"))
	assert.True(t, extractor.IsSupportedFormat("resume.text"))
	assert.True(t, extractor.IsSupportedFormat("Resume.PDF"))
	assert.False(t, extractor.IsSupportedFormat("resume.docx"))
	assert.False(t, extractor.IsSupportedFormat("resume"))
}
