// Package extraction reconstructs reading-order text from positioned page
// fragments and drives page-by-page extraction across a whole document.
package extraction

import (
	"math"
	"sort"
	"strings"
)

// DefaultLineTolerance is the vertical distance (in document units) within
// which two fragments are considered part of the same visual line. Tuned
// empirically for typical single-column page layouts; dense tables and
// multi-column layouts may need a different value, which is why it is
// configurable rather than fixed.
const DefaultLineTolerance = 5.0

// TextFragment is one positioned run of characters decoded from a page.
// Y is the baseline coordinate with the page origin at the bottom left,
// so larger Y means closer to the top of the page.
type TextFragment struct {
	Text string
	X    float64
	Y    float64
}

// ReconstructLines assembles fragments into reading-order lines: top of page
// first, left to right within a line. Fragments whose baselines differ by no
// more than tolerance from the line's reference fragment are merged into one
// line, which absorbs sub-pixel baseline jitter from kerning and font changes.
// Each produced line is terminated by a newline. Whitespace-only fragments
// are skipped.
//
// If the coordinate data is unusable, the fragments are concatenated with
// spaces in their original order instead; partial text is more useful than
// none to the heuristic consumer downstream.
func ReconstructLines(fragments []TextFragment, tolerance float64) string {
	if len(fragments) == 0 {
		return ""
	}
	if tolerance <= 0 {
		tolerance = DefaultLineTolerance
	}

	if !sortable(fragments) {
		return concatFallback(fragments)
	}

	sorted := make([]TextFragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var sb strings.Builder
	var line []string
	referenceY := math.Inf(1)

	flush := func() {
		if len(line) > 0 {
			sb.WriteString(strings.Join(line, " "))
			sb.WriteByte('\n')
			line = line[:0]
		}
	}

	for _, frag := range sorted {
		if strings.TrimSpace(frag.Text) == "" {
			continue
		}
		if math.Abs(frag.Y-referenceY) > tolerance {
			flush()
			referenceY = frag.Y
		}
		line = append(line, frag.Text)
	}
	flush()

	return sb.String()
}

// sortable reports whether every fragment carries finite coordinates.
func sortable(fragments []TextFragment) bool {
	for _, f := range fragments {
		if math.IsNaN(f.X) || math.IsInf(f.X, 0) || math.IsNaN(f.Y) || math.IsInf(f.Y, 0) {
			return false
		}
	}
	return true
}

// concatFallback joins fragment strings with spaces in original order.
func concatFallback(fragments []TextFragment) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if strings.TrimSpace(f.Text) == "" {
			continue
		}
		parts = append(parts, f.Text)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " ") + "\n"
}
