package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Source identifies where ingested resume content came from.
type Source string

const (
	SourceUpload Source = "upload"
	SourcePaste  Source = "paste"
	SourceHTML   Source = "html"
	SourceURL    Source = "url"
)

// Metadata describes one piece of ingested resume content.
type Metadata struct {
	Source    Source `json:"source"`
	URL       string `json:"url,omitempty"`
	Timestamp string `json:"timestamp"` // RFC3339 format
	Hash      string `json:"hash"`      // SHA256 hex digest of the cleaned text
	CharCount int    `json:"char_count"`
	LineCount int    `json:"line_count"`
}

// NewMetadata creates a Metadata instance for cleaned content.
func NewMetadata(content string, source Source) *Metadata {
	return &Metadata{
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
		CharCount: len(content),
		LineCount: countLines(content),
	}
}

func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	count := 1
	for _, r := range content {
		if r == '\n' {
			count++
		}
	}
	return count
}

// ToJSON marshals Metadata to pretty-printed JSON.
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
