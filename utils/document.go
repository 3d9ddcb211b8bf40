package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrUnsupportedFormat is returned for file extensions the extractor
	// does not handle.
	ErrUnsupportedFormat = errors.New("only PDF and TXT files are supported")

	// ErrMalformedPDF is returned when a PDF file cannot be parsed.
	ErrMalformedPDF = errors.New("invalid or corrupted PDF file")
)

// DocumentExtractor extracts plain text from uploaded resume files.
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document extractor
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// ExtractText extracts text from a file based on its extension. Text
// files are returned as-is; PDF pages are concatenated with newlines.
func (e *DocumentExtractor) ExtractText(file multipart.File, header *multipart.FileHeader) (string, error) {
	if !e.IsSupportedFormat(header.Filename) {
		return "", ErrUnsupportedFormat
	}

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, file); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	content := buf.Bytes()

	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".txt", ".text":
		return string(content), nil
	case ".pdf":
		return e.extractPDFText(content)
	}

	return "", ErrUnsupportedFormat
}

func (e *DocumentExtractor) extractPDFText(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedPDF, err)
	}

	var textBuilder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}
	return textBuilder.String(), nil
}

// IsSupportedFormat checks if the file format is supported
func (e *DocumentExtractor) IsSupportedFormat(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".text", ".pdf":
		return true
	}
	return false
}
