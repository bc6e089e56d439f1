package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/podume/resume-extractor/internal/types"
)

func TestPrintDetectedType(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDetectedType(types.FileTypePDF, 12345)

	out := buf.String()
	assert.Contains(t, out, "DETECTED FILE TYPE")
	assert.Contains(t, out, "PDF document")
	assert.Contains(t, out, "12345 bytes")
}

func TestPrintStructuredResume(t *testing.T) {
	resume := types.NewStructuredResume()
	resume.Name = "Jane Smith"
	resume.Contact.Email = "jane@example.com"
	resume.Sections.Summary = "Engineer with ten years of experience."
	resume.Sections.Experience = []string{"Senior Engineer at TechCorp", "Engineer at StartupCo"}
	resume.Sections.Skills = []string{"Go", "Python", "SQL", "Docker", "Kubernetes", "Terraform", "AWS"}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintStructuredResume(resume)

	out := buf.String()
	assert.Contains(t, out, "STRUCTURED RESUME")
	assert.Contains(t, out, "Jane Smith")
	assert.Contains(t, out, "jane@example.com")
	assert.Contains(t, out, "Senior Engineer at TechCorp")
	assert.Contains(t, out, "Skills (7):")
	assert.Contains(t, out, "... and 2 more", "skills list is truncated")
}

func TestPrintStructuredResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintStructuredResume(nil)
	assert.Empty(t, buf.String())
}

func TestPrintExtractionSummary(t *testing.T) {
	result := &types.ExtractionResult{
		FlatText: "some extracted text",
		Metadata: types.ExtractionMetadata{
			PageCount:        2,
			ExtractionMethod: types.MethodText,
			Confidence:       0.85,
		},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintExtractionSummary(result)

	out := buf.String()
	assert.Contains(t, out, "EXTRACTION SUMMARY")
	assert.Contains(t, out, "Pages:       2")
	assert.Contains(t, out, "Confidence:  0.85")
}

func TestPrintProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.PrintProgress(50)
	p.PrintProgress(100)

	out := buf.String()
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "100%")
}
