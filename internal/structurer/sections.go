package structurer

import (
	"regexp"
	"strings"

	"github.com/podume/resume-extractor/internal/types"
)

var (
	summaryKeywords    = []string{"summary", "profile", "about", "overview", "objective"}
	experienceKeywords = []string{"experience", "work", "employment", "professional", "career"}
	educationKeywords  = []string{"education", "degree", "university", "college", "school"}
	skillsKeywords     = []string{"skills", "technologies", "tools", "competencies", "technical"}
)

var yearRe = regexp.MustCompile(`\d{4}`)

// skillDelimiters split a skills line into individual tokens.
var skillDelimiters = regexp.MustCompile(`[,•·\-]`)

const (
	summaryMaxLines  = 7
	summaryMinLine   = 20
	summaryMaxChars  = 400
	summaryMinResult = 30

	experienceMinLine = 20

	educationScanLines = 10
	educationMinLine   = 10

	skillsScanLines = 8
	skillMinLen     = 1
	skillMaxLen     = 50
)

// findHeading returns the index of the first line containing any of the
// keywords (case-insensitive), or -1.
func findHeading(lines []string, keywords []string) int {
	for i, line := range lines {
		lower := strings.ToLower(line)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return i
			}
		}
	}
	return -1
}

// extractSummary takes up to a few substantial lines following a summary-style
// heading and joins them into one blurb. A result judged too short to be
// meaningful is discarded entirely.
func extractSummary(lines []string) string {
	start := findHeading(lines, summaryKeywords)
	if start < 0 {
		return ""
	}

	var kept []string
	end := min(start+1+summaryMaxLines, len(lines))
	for _, line := range lines[start+1 : end] {
		if len(line) > summaryMinLine {
			kept = append(kept, line)
		}
	}

	summary := strings.Join(kept, " ")
	if len(summary) > summaryMaxChars {
		summary = summary[:summaryMaxChars]
	}
	if len(summary) < summaryMinResult {
		return ""
	}
	return summary
}

// extractExperience collects substantial lines following an experience-style
// heading until the entry cap is hit or a section boundary (a line mentioning
// education or skills) is reached.
func extractExperience(lines []string) []string {
	entries := []string{}
	start := findHeading(lines, experienceKeywords)
	if start < 0 {
		return entries
	}

	for _, line := range lines[start+1:] {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "education") || strings.Contains(lower, "skills") {
			break
		}
		if len(line) > experienceMinLine {
			entries = append(entries, line)
			if len(entries) >= types.MaxExperienceEntries {
				break
			}
		}
	}
	return entries
}

// extractEducation keeps lines near an education-style heading that look like
// credential entries: long enough, and carrying either a four-digit year or a
// degree word.
func extractEducation(lines []string) []string {
	entries := []string{}
	start := findHeading(lines, educationKeywords)
	if start < 0 {
		return entries
	}

	end := min(start+1+educationScanLines, len(lines))
	for _, line := range lines[start+1 : end] {
		if len(line) <= educationMinLine {
			continue
		}
		lower := strings.ToLower(line)
		if yearRe.MatchString(line) || strings.Contains(lower, "bachelor") || strings.Contains(lower, "master") {
			entries = append(entries, line)
		}
	}
	return entries
}

// extractSkills splits the lines following a skills-style heading on commas,
// bullets, and hyphens, keeping reasonably sized tokens up to the cap.
func extractSkills(lines []string) []string {
	skills := []string{}
	start := findHeading(lines, skillsKeywords)
	if start < 0 {
		return skills
	}

	end := min(start+1+skillsScanLines, len(lines))
	for _, line := range lines[start+1 : end] {
		var tokens []string
		if skillDelimiters.MatchString(line) {
			tokens = skillDelimiters.Split(line, -1)
		} else {
			tokens = []string{line}
		}
		for _, token := range tokens {
			token = strings.TrimSpace(token)
			if len(token) > skillMinLen && len(token) < skillMaxLen {
				skills = append(skills, token)
				if len(skills) >= types.MaxSkills {
					return skills
				}
			}
		}
	}
	return skills
}
