// Package ingestion prepares resume content from non-PDF sources (pasted
// text, HTML exports, hosted profile pages) for the structurer. The
// structurer operates on trimmed lines, so every path here normalizes its
// input into clean line-oriented text.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRe = regexp.MustCompile(`[ \t]+`)
	multiBlankRe = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes pasted resume text: line endings become LF, runs of
// spaces collapse to one, bullet glyphs are unified, and runs of blank lines
// shrink to a single separator. Section structure (one line per entry) is
// preserved because the structurer's heuristics depend on it.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = multiBlankRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine normalizes one line: whitespace runs collapse, and the various
// unicode bullets resumes use are unified to "•" so the skills splitter sees
// a single delimiter.
func cleanLine(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}

	for _, bullet := range []string{"●", "▪", "◦", "·"} {
		line = strings.ReplaceAll(line, bullet, "•")
	}

	return multiSpaceRe.ReplaceAllString(line, " ")
}
