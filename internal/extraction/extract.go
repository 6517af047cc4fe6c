// Package extraction converts uploaded resume files into raw text.
// It is a pure transform: the only work besides dispatch is format-specific
// decoding (PDF, DOCX, plain text).
package extraction

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractText converts an uploaded resume file into raw text.
// Dispatch is on the filename extension; anything other than .pdf, .docx or
// .txt fails with UnsupportedFormatError.
func ExtractText(fileBytes []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".txt":
		return string(fileBytes), nil
	case ".pdf":
		return extractPDFText(fileBytes)
	case ".docx":
		return extractDocxText(fileBytes)
	default:
		return "", &UnsupportedFormatError{Filename: filename, Extension: ext}
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "pdf", Cause: err}
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		// Per-page text failures are tolerated; a resume with one
		// unreadable page still yields the rest.
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "docx", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	return doc.Editable().GetContent(), nil
}
