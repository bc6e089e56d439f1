// Package docfile adapts third-party document decoders to the extraction
// package's Document interface. PDF decoding uses ledongthuc/pdf (pure Go,
// no CGO), which exposes per-page positioned text runs.
package docfile

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/podume/resume-extractor/internal/extraction"
)

// PDFDocument wraps a decoded PDF and exposes it as an extraction.Document.
type PDFDocument struct {
	reader *pdf.Reader
}

// OpenPDF decodes raw PDF bytes. Container-level failures (corrupt file,
// password protection) surface as DecodeFailedError with a human-readable
// hint derived from the decoder's error text.
func OpenPDF(data []byte) (*PDFDocument, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &extraction.DecodeFailedError{
			Hint:  decodeHint(err),
			Cause: err,
		}
	}
	return &PDFDocument{reader: reader}, nil
}

// PageCount returns the number of pages in the document.
func (d *PDFDocument) PageCount() int {
	return d.reader.NumPage()
}

// Page returns the page with the given 1-based number.
func (d *PDFDocument) Page(number int) extraction.Page {
	return &pdfPage{page: d.reader.Page(number)}
}

// pdfPage adapts one decoded PDF page. The decoder panics on some malformed
// content streams; the extraction layer recovers per page, so no recover is
// needed here.
type pdfPage struct {
	page pdf.Page
}

// Fragments returns the page's positioned text runs. A missing page object
// yields no fragments rather than an error; the page simply contributes no
// text.
func (p *pdfPage) Fragments() ([]extraction.TextFragment, error) {
	if p.page.V.IsNull() {
		return nil, nil
	}

	content := p.page.Content()
	fragments := make([]extraction.TextFragment, 0, len(content.Text))
	for _, t := range content.Text {
		fragments = append(fragments, extraction.TextFragment{
			Text: t.S,
			X:    t.X,
			Y:    t.Y,
		})
	}
	return fragments, nil
}

// decodeHint classifies a decoder error into a user-facing remedy hint by
// matching known substrings in the error text.
func decodeHint(err error) string {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "encrypt") || strings.Contains(msg, "password") {
		return "the PDF is password-protected; remove the password and re-upload"
	}
	return "the PDF appears to be corrupted; try re-exporting it"
}
