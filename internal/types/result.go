package types

// ExtractionMethod describes how the flat text of a document was obtained.
type ExtractionMethod string

const (
	// MethodText means the text came from the document's embedded text layer.
	MethodText ExtractionMethod = "text"
	// MethodOCR is reserved for optical recognition of scanned documents.
	// The current pipeline never produces it.
	MethodOCR ExtractionMethod = "ocr"
	// MethodFallback means positional line reconstruction failed and the text
	// was assembled by plain concatenation, or came from a pasted-text fallback.
	MethodFallback ExtractionMethod = "fallback"
)

// ExtractionMetadata describes the provenance and quality of an extraction.
type ExtractionMetadata struct {
	PageCount        int              `json:"page_count"`
	ExtractionMethod ExtractionMethod `json:"extraction_method"`
	// Confidence is an advisory quality score in [0,1]. It is surfaced to the
	// UI to decide whether to prompt for manual verification, never used to
	// block the pipeline.
	Confidence float64 `json:"confidence"`
}

// ExtractionResult is the externally visible artifact of one extraction call.
// Immutable once returned.
type ExtractionResult struct {
	FlatText   string             `json:"flat_text"`
	Structured *StructuredResume  `json:"structured"`
	Metadata   ExtractionMetadata `json:"metadata"`
}
