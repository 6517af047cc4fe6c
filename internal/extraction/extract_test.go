package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	content := "Jordan Smith\nSoftware Engineer\nSkills: Go, PostgreSQL"

	text, err := ExtractText([]byte(content), "resume.txt")
	require.NoError(t, err)
	assert.Equal(t, content, text)
}

func TestExtractText_ExtensionCaseInsensitive(t *testing.T) {
	text, err := ExtractText([]byte("hello"), "RESUME.TXT")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	for _, filename := range []string{"resume.doc", "resume.rtf", "resume.png", "resume", "archive.tar.gz"} {
		_, err := ExtractText([]byte("data"), filename)
		var unsupported *UnsupportedFormatError
		require.ErrorAs(t, err, &unsupported, "filename %s", filename)
		assert.Equal(t, filename, unsupported.Filename)
	}
}

func TestExtractText_CorruptPDF(t *testing.T) {
	_, err := ExtractText([]byte("this is not a pdf"), "resume.pdf")
	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "pdf", extractionErr.Format)
	assert.Error(t, extractionErr.Cause)
}

func TestExtractText_CorruptDocx(t *testing.T) {
	_, err := ExtractText([]byte("this is not a zip archive"), "resume.docx")
	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "docx", extractionErr.Format)
}

func TestUnsupportedFormatError_Message(t *testing.T) {
	err := &UnsupportedFormatError{Filename: "resume.odt", Extension: ".odt"}
	assert.Contains(t, err.Error(), ".odt")
	assert.Contains(t, err.Error(), "resume.odt")
}
