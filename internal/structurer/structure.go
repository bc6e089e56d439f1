// Package structurer heuristically partitions flat resume text into semantic
// fields: candidate name, contact info, summary, experience, education, and
// skills. All extraction rules are independent passes over the same line
// array, which keeps them composable and independently testable.
//
// Known limitation inherited from the heuristics themselves: the section
// keyword lists are English-only, and the experience boundary rule assumes
// experience precedes education in the source document. Behavior for
// non-English or reordered resumes is unspecified.
package structurer

import (
	"regexp"
	"strings"

	"github.com/podume/resume-extractor/internal/types"
)

var (
	emailRe   = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phoneRe   = regexp.MustCompile(`\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	numericRe = regexp.MustCompile(`^[0-9\s]+$`)
)

// How far down the document each scan reaches. Resumes are header-first
// documents, so the interesting identity fields cluster at the top.
const (
	nameScanLines    = 5
	contactScanLines = 15
)

// Structure extracts a StructuredResume from flat text. It is a total
// function: it never fails, degrading to defaults (placeholder name, empty
// sections) when a rule finds nothing, because partial structured data is
// strictly preferable to blocking the pipeline.
func Structure(text string) *types.StructuredResume {
	lines := splitLines(text)

	resume := types.NewStructuredResume()
	if name := extractName(lines); name != "" {
		resume.Name = name
	}
	resume.Contact = extractContact(lines)
	resume.Sections.Summary = extractSummary(lines)
	resume.Sections.Experience = extractExperience(lines)
	resume.Sections.Education = extractEducation(lines)
	resume.Sections.Skills = extractSkills(lines)
	return resume
}

// splitLines returns the non-empty trimmed lines of text.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// extractName scans the first few lines for a title-style candidate name.
// The heuristic assumes a header-style resume with the name near the top.
// Returns "" when no line qualifies.
func extractName(lines []string) string {
	limit := min(nameScanLines, len(lines))
	for _, line := range lines[:limit] {
		if isLikelyName(line) {
			return line
		}
	}
	return ""
}

func isLikelyName(line string) bool {
	if len(line) == 0 || len(line) >= 100 {
		return false
	}
	if strings.Contains(line, "@") || strings.Contains(line, "|") {
		return false
	}
	lower := strings.ToLower(line)
	if strings.Contains(lower, "http") || strings.Contains(lower, "resume") || strings.Contains(lower, "cv") {
		return false
	}
	if numericRe.MatchString(line) {
		return false
	}
	tokens := strings.Fields(line)
	return len(tokens) >= 2 && len(tokens) <= 4
}

// extractContact finds the first email and the first US-style phone number
// in the top of the document. Later matches are ignored.
func extractContact(lines []string) types.Contact {
	var contact types.Contact
	limit := min(contactScanLines, len(lines))
	for _, line := range lines[:limit] {
		if contact.Email == "" {
			contact.Email = emailRe.FindString(line)
		}
		if contact.Phone == "" {
			contact.Phone = phoneRe.FindString(line)
		}
		if contact.Email != "" && contact.Phone != "" {
			break
		}
	}
	return contact
}
