// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/podume/resume-extractor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDetectedType outputs the result of byte-signature classification.
func (p *Printer) PrintDetectedType(fileType types.DetectedFileType, size int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Type:  %s\n", fileType.Description()))
	sb.WriteString(fmt.Sprintf("Size:  %d bytes", size))
	p.printBox("DETECTED FILE TYPE", sb.String())
}

// PrintStructuredResume outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintStructuredResume(resume *types.StructuredResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", resume.Name))
	if resume.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:  %s\n", resume.Contact.Email))
	}
	if resume.Contact.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:  %s\n", resume.Contact.Phone))
	}
	sb.WriteString("\n")

	if resume.Sections.Summary != "" {
		sb.WriteString("Summary:\n")
		sb.WriteString(fmt.Sprintf("  %s\n", resume.Sections.Summary))
		sb.WriteString("\n")
	}

	if len(resume.Sections.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(resume.Sections.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", resume.Sections.Experience[i]))
		}
		if len(resume.Sections.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Sections.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(resume.Sections.Education) > 0 {
		sb.WriteString("Education:\n")
		for _, entry := range resume.Sections.Education {
			sb.WriteString(fmt.Sprintf("  • %s\n", entry))
		}
		sb.WriteString("\n")
	}

	if len(resume.Sections.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(resume.Sections.Skills)))
		count := min(len(resume.Sections.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", resume.Sections.Skills[i]))
		}
		if len(resume.Sections.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Sections.Skills)-maxItemsToShow))
		}
	}

	p.printBox("STRUCTURED RESUME", strings.TrimRight(sb.String(), "\n"))
}

// PrintExtractionSummary outputs the extraction metadata after a run.
func (p *Printer) PrintExtractionSummary(result *types.ExtractionResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Method:      %s\n", result.Metadata.ExtractionMethod))
	if result.Metadata.PageCount > 0 {
		sb.WriteString(fmt.Sprintf("Pages:       %d\n", result.Metadata.PageCount))
	}
	sb.WriteString(fmt.Sprintf("Characters:  %d\n", len(result.FlatText)))
	sb.WriteString(fmt.Sprintf("Confidence:  %.2f", result.Metadata.Confidence))
	p.printBox("EXTRACTION SUMMARY", sb.String())
}

// PrintProgress writes a single progress line, overwriting the previous one.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProgress(percent int) {
	filled := percent * 20 / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
	fmt.Fprintf(p.out, "\r[%s] %3d%%", bar, percent)
	if percent >= 100 {
		fmt.Fprintln(p.out)
	}
}
