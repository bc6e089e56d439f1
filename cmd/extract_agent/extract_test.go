package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podume/resume-extractor/internal/types"
)

const testResumeText = `Jane Smith
jane.smith@email.com | 555-123-4567

SUMMARY
Experienced software engineer with a focus on distributed systems
and developer tooling across a decade of production work.

EXPERIENCE
Senior Software Engineer at TechCorp, 2020-2024, leading the platform team

EDUCATION
Bachelor of Science in Computer Science, State University, 2016

SKILLS
Go, Python, PostgreSQL, Docker`

func resetFlags() {
	extractInputFile, extractOutputFile, extractConfigFile = "", "", ""
	extractTolerance, extractVerbose = 0, false
	textInputFile, textOutputFile, textHTML, textVerbose = "", "", false, false
	batchOutputDir, batchConcurrency, batchTolerance = ".", 4, 0
}

func TestRunExtract_RejectsNonPDF(t *testing.T) {
	resetFlags()
	path := filepath.Join(t.TempDir(), "photo.jpg")
	jpeg := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 200)...)
	require.NoError(t, os.WriteFile(path, jpeg, 0644))

	extractInputFile = path
	err := runExtract(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JPEG image")
}

func TestRunExtract_MissingInput(t *testing.T) {
	resetFlags()
	extractInputFile = filepath.Join(t.TempDir(), "nope.pdf")
	assert.Error(t, runExtract(nil, nil))
}

func TestRunExtract_BadConfig(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"line_tolerance": -1}`), 0644))

	extractInputFile = filepath.Join(dir, "resume.pdf")
	extractConfigFile = configPath
	assert.Error(t, runExtract(nil, nil), "invalid config rejected before reading input")
}

func TestRunText_WritesStructuredJSON(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "resume.txt")
	outputPath := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(inputPath, []byte(testResumeText), 0644))

	textInputFile = inputPath
	textOutputFile = outputPath
	require.NoError(t, runText(nil, nil))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var result types.ExtractionResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "Jane Smith", result.Structured.Name)
	assert.Equal(t, "jane.smith@email.com", result.Structured.Contact.Email)
	assert.Equal(t, types.MethodFallback, result.Metadata.ExtractionMethod)
	assert.Greater(t, result.Metadata.Confidence, 0.3)
}

func TestRunText_TooShort(t *testing.T) {
	resetFlags()
	inputPath := filepath.Join(t.TempDir(), "short.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("Hi"), 0644))

	textInputFile = inputPath
	assert.Error(t, runText(nil, nil))
}

func TestRunBatch_PartialFailure(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	good := filepath.Join(dir, "good.jpg") // wrong type, will fail
	require.NoError(t, os.WriteFile(good, append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 200)...), 0644))

	batchOutputDir = filepath.Join(dir, "out")
	batchConcurrency = 2
	err := runBatch(nil, []string{good})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 files failed")
}

func TestRunBatch_InvalidConcurrency(t *testing.T) {
	resetFlags()
	batchConcurrency = 0
	assert.Error(t, runBatch(nil, []string{"whatever.pdf"}))
}
