package detect

import (
	"fmt"

	"github.com/podume/resume-extractor/internal/types"
)

// EmptyFileError indicates a zero-byte upload. Fatal; the user must re-upload.
type EmptyFileError struct{}

func (e *EmptyFileError) Error() string {
	return "uploaded file is empty; please re-upload your resume"
}

// TooSmallError indicates the upload is below the minimum viable document
// size, which points to truncation or corruption rather than a wrong format.
type TooSmallError struct {
	Size int
}

func (e *TooSmallError) Error() string {
	return fmt.Sprintf("uploaded file is too small to be a valid document (%d bytes); the upload may be corrupted", e.Size)
}

// InvalidFileTypeError indicates the byte signature does not match any
// accepted format. It carries the detected type so the caller can build a
// precise user-facing message ("this looks like a JPEG, not a PDF").
type InvalidFileTypeError struct {
	Detected types.DetectedFileType
}

func (e *InvalidFileTypeError) Error() string {
	return fmt.Sprintf("file is not a PDF: this looks like a %s", e.Detected.Description())
}
