// Package pipeline composes the extraction stages into the two entry points
// callers use: Run for uploaded PDF bytes and RunText for pasted or
// pre-extracted text. Validation, decoding, line reconstruction, structuring,
// and scoring all live in their own packages; this package only wires them
// together and owns the progress interpolation across stages.
package pipeline

import (
	"context"

	"github.com/podume/resume-extractor/internal/detect"
	"github.com/podume/resume-extractor/internal/docfile"
	"github.com/podume/resume-extractor/internal/extraction"
	"github.com/podume/resume-extractor/internal/ingestion"
	"github.com/podume/resume-extractor/internal/schemas"
	"github.com/podume/resume-extractor/internal/structurer"
	"github.com/podume/resume-extractor/internal/types"
)

// Options configures one pipeline run. The zero value is usable.
type Options struct {
	// LineTolerance overrides the vertical line-merge tolerance.
	// Zero selects the extraction default.
	LineTolerance float64
	// OnProgress receives percentage integers in [0,100]; may be nil.
	OnProgress extraction.ProgressFunc
}

// Run executes the full extraction pipeline on uploaded file bytes:
// byte-signature validation, PDF decode, page-by-page text extraction,
// heuristic structuring, confidence scoring, and a final schema check on the
// produced artifact. Every returned error carries a user-actionable remedy;
// see the detect and extraction error types.
func Run(ctx context.Context, rawBytes []byte, opts *Options) (*types.ExtractionResult, error) {
	if opts == nil {
		opts = &Options{}
	}
	report := func(percent int) {
		if opts.OnProgress != nil {
			opts.OnProgress(percent)
		}
	}

	report(0)
	if _, err := detect.Validate(rawBytes); err != nil {
		return nil, err
	}
	report(10)

	doc, err := docfile.OpenPDF(rawBytes)
	if err != nil {
		return nil, err
	}

	extractor := extraction.NewExtractor(opts.LineTolerance)
	flatText, err := extractor.ExtractText(ctx, doc, opts.OnProgress)
	if err != nil {
		return nil, err
	}

	result := assemble(flatText, doc.PageCount(), types.MethodText)
	if err := schemas.ValidateExtractionResult(result); err != nil {
		return nil, err
	}
	return result, nil
}

// RunText structures already-flat text: the manual-paste fallback offered
// when a PDF has no text layer, and the tail end of the HTML/URL ingestion
// paths. The text is cleaned before structuring.
func RunText(text string) (*types.ExtractionResult, error) {
	cleaned := ingestion.CleanText(text)
	if len(cleaned) < extraction.MinTextLength {
		return nil, &extraction.InsufficientTextError{Extracted: len(cleaned)}
	}

	result := assemble(cleaned, 0, types.MethodFallback)
	if err := schemas.ValidateExtractionResult(result); err != nil {
		return nil, err
	}
	return result, nil
}

// RunHTML structures a saved HTML page: it extracts the block text from the
// markup and then follows the same path as pasted text.
func RunHTML(html string) (*types.ExtractionResult, error) {
	text, err := ingestion.FromHTML(html)
	if err != nil {
		return nil, err
	}
	return RunText(text)
}

// assemble structures flat text and packages it with its metadata.
func assemble(flatText string, pageCount int, method types.ExtractionMethod) *types.ExtractionResult {
	structured := structurer.Structure(flatText)
	return &types.ExtractionResult{
		FlatText:   flatText,
		Structured: structured,
		Metadata: types.ExtractionMetadata{
			PageCount:        pageCount,
			ExtractionMethod: method,
			Confidence:       structurer.Score(flatText, structured),
		},
	}
}
