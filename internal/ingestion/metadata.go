package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Metadata describes an ingested document.
type Metadata struct {
	Filename  string `json:"filename,omitempty"`
	Format    Format `json:"format"`
	Timestamp string `json:"timestamp"` // RFC3339 format
	Hash      string `json:"hash"`      // SHA256 hex digest of the cleaned text
	WordCount int    `json:"wordCount"`
	Bullets   int    `json:"bullets"`
	Bytes     int    `json:"bytes"`
}

// NewMetadata creates metadata for cleaned text extracted from a file.
func NewMetadata(content, filename string, format Format, size int) *Metadata {
	return &Metadata{
		Filename:  filename,
		Format:    format,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
		WordCount: len(strings.Fields(content)),
		Bullets:   countBullets(content),
		Bytes:     size,
	}
}

func countBullets(content string) int {
	n := 0
	for _, line := range strings.Split(content, "\n") {
		if IsBulletLine(line) {
			n++
		}
	}
	return n
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
