package extraction

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// MinTextLength is the minimum number of characters a document must yield
// for the extraction to be considered successful.
const MinTextLength = 10

// Progress interpolation bounds: 0-25 is reserved for document load and
// 95-100 for finalization, so per-page progress maps onto 25-95.
const (
	progressStart = 25
	progressEnd   = 95
)

// Page exposes one decoded page's positioned text fragments.
type Page interface {
	Fragments() ([]TextFragment, error)
}

// Document is the decoded-document collaborator the extractor consumes.
// Decoding raw bytes into pages is the job of a format-specific adapter
// (see the docfile package).
type Document interface {
	PageCount() int
	Page(number int) Page
}

// ProgressFunc receives percentage integers in [0,100]. Callbacks are
// synchronous, best-effort notifications; they must not block.
type ProgressFunc func(percent int)

// Extractor walks a document page by page and produces one flat text blob.
// The zero value is not usable; construct with NewExtractor. An Extractor
// holds no per-call state and is safe to reuse across extractions.
type Extractor struct {
	lineTolerance float64
	logger        *log.Logger
}

// NewExtractor creates an Extractor with the given line-merge tolerance.
// A tolerance of zero or less selects DefaultLineTolerance.
func NewExtractor(lineTolerance float64) *Extractor {
	if lineTolerance <= 0 {
		lineTolerance = DefaultLineTolerance
	}
	return &Extractor{
		lineTolerance: lineTolerance,
		logger:        log.Default(),
	}
}

// SetLogger overrides the destination for per-page warnings. Used by tests.
func (e *Extractor) SetLogger(logger *log.Logger) {
	if logger != nil {
		e.logger = logger
	}
}

// ExtractText extracts text from every page of doc in order, reporting
// monotonically increasing progress through onProgress (which may be nil).
//
// A failure on one page is logged and skipped; partial extraction is
// preferred over total failure. If the trimmed result is shorter than
// MinTextLength the whole extraction fails with InsufficientTextError.
// The context is checked before each page so a caller can abandon a
// long document without changing per-page semantics.
func (e *Extractor) ExtractText(ctx context.Context, doc Document, onProgress ProgressFunc) (string, error) {
	report := func(percent int) {
		if onProgress != nil {
			onProgress(percent)
		}
	}

	report(progressStart)

	pageCount := doc.PageCount()
	var sb strings.Builder

	for n := 1; n <= pageCount; n++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		text, err := e.extractPage(doc, n)
		if err != nil {
			e.logger.Printf("warning: page %d/%d failed, continuing: %v", n, pageCount, err)
		} else if text != "" {
			sb.WriteString(text)
			sb.WriteByte('\n')
		}

		report(progressStart + (progressEnd-progressStart)*n/pageCount)
	}

	result := strings.TrimSpace(sb.String())
	if len(result) < MinTextLength {
		return "", &InsufficientTextError{Extracted: len(result)}
	}

	report(100)
	return result, nil
}

// extractPage fetches one page's fragments and reconstructs its lines.
// Decoder panics on malformed pages are converted to errors so a single
// bad page cannot take down the whole extraction.
func (e *Extractor) extractPage(doc Document, number int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &pagePanicError{page: number, value: r}
		}
	}()

	fragments, err := doc.Page(number).Fragments()
	if err != nil {
		return "", err
	}
	return ReconstructLines(fragments, e.lineTolerance), nil
}

// pagePanicError wraps a panic raised while decoding a single page.
type pagePanicError struct {
	page  int
	value any
}

func (e *pagePanicError) Error() string {
	return fmt.Sprintf("panic while decoding page %d: %v", e.page, e.value)
}
