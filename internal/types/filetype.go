package types

// DetectedFileType identifies the true format of an uploaded file, determined
// from its leading byte signature rather than the claimed MIME type or extension.
type DetectedFileType string

const (
	// FileTypePDF is a PDF document (%PDF header).
	FileTypePDF DetectedFileType = "pdf"
	// FileTypeZipOffice is a ZIP container, which covers DOCX/XLSX/PPTX (PK header).
	FileTypeZipOffice DetectedFileType = "zip_office"
	// FileTypeJPEG is a JPEG image (FF D8 header).
	FileTypeJPEG DetectedFileType = "jpeg"
	// FileTypePNG is a PNG image (89 50 4E 47 header).
	FileTypePNG DetectedFileType = "png"
	// FileTypeUnknown means no known signature matched.
	FileTypeUnknown DetectedFileType = "unknown"
)

// Description returns a human-readable name suitable for user-facing messages.
func (t DetectedFileType) Description() string {
	switch t {
	case FileTypePDF:
		return "PDF document"
	case FileTypeZipOffice:
		return "ZIP archive or Office document (DOCX/XLSX)"
	case FileTypeJPEG:
		return "JPEG image"
	case FileTypePNG:
		return "PNG image"
	default:
		return "unrecognized file"
	}
}
