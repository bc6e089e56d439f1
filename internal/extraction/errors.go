package extraction

import "fmt"

// DecodeFailedError indicates the document container itself could not be
// opened. Hint distinguishes a corrupted file from a password-protected one
// so the UI can show the right remedy.
type DecodeFailedError struct {
	Hint  string
	Cause error
}

func (e *DecodeFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to decode document: %s: %v", e.Hint, e.Cause)
	}
	return fmt.Sprintf("failed to decode document: %s", e.Hint)
}

func (e *DecodeFailedError) Unwrap() error {
	return e.Cause
}

// InsufficientTextError indicates full-document extraction produced less text
// than the minimum viable amount. The document likely contains only images or
// scans with no embedded text layer; the caller is expected to offer a
// manual-paste fallback rather than treat this as a software fault.
type InsufficientTextError struct {
	Extracted int
}

func (e *InsufficientTextError) Error() string {
	return fmt.Sprintf("document yielded only %d characters of text; it may be a scanned or image-only document", e.Extracted)
}
