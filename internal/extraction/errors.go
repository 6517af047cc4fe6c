package extraction

import "fmt"

// UnsupportedFormatError indicates a resume file extension the extractor
// does not recognize. There is no fallback for this error.
type UnsupportedFormatError struct {
	Filename  string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported resume format %q (file %s)", e.Extension, e.Filename)
}

// ExtractionError indicates a format decoder failed on a recognized format.
// The original decoder error is attached as the cause.
type ExtractionError struct {
	Format string
	Cause  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Format, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
