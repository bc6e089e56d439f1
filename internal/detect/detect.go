// Package detect provides byte-signature file type detection for uploaded documents.
// Detection looks only at the leading bytes of the file, so it cannot be fooled by
// a mismatched extension or claimed MIME type.
package detect

import (
	"bytes"

	"github.com/podume/resume-extractor/internal/types"
)

// MinFileSize is the minimum byte length for a document to be considered
// viable. Anything smaller is treated as truncated or corrupt regardless
// of its signature.
const MinFileSize = 100

var (
	sigPDF  = []byte{0x25, 0x50, 0x44, 0x46} // %PDF
	sigZip  = []byte{0x50, 0x4B}             // PK
	sigJPEG = []byte{0xFF, 0xD8}
	sigPNG  = []byte{0x89, 0x50, 0x4E, 0x47}
)

// Classify inspects the leading bytes of data and returns the detected file
// type. It never fails; buffers with no known signature classify as Unknown.
func Classify(data []byte) types.DetectedFileType {
	switch {
	case bytes.HasPrefix(data, sigPDF):
		return types.FileTypePDF
	case bytes.HasPrefix(data, sigZip):
		return types.FileTypeZipOffice
	case bytes.HasPrefix(data, sigJPEG):
		return types.FileTypeJPEG
	case bytes.HasPrefix(data, sigPNG):
		return types.FileTypePNG
	default:
		return types.FileTypeUnknown
	}
}

// Validate gates a PDF-only pipeline. Size checks run before signature
// classification: a zero-byte or sub-minimum buffer indicates truncation
// rather than a wrong format, and gets a distinct error so the UI can show
// the right remedy.
func Validate(data []byte) (types.DetectedFileType, error) {
	if len(data) == 0 {
		return types.FileTypeUnknown, &EmptyFileError{}
	}
	if len(data) < MinFileSize {
		return types.FileTypeUnknown, &TooSmallError{Size: len(data)}
	}

	detected := Classify(data)
	if detected != types.FileTypePDF {
		return detected, &InvalidFileTypeError{Detected: detected}
	}
	return detected, nil
}
