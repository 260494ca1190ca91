package store

import (
	"context"
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Memory keeps the most recently written documents in process. Once full,
// the least recently used document is evicted.
type Memory struct {
	cache *lru.Cache[string, Document]
}

// NewMemory creates a memory store holding up to size documents.
func NewMemory(size int) (*Memory, error) {
	cache, err := lru.New[string, Document](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create memory store: %w", err)
	}
	return &Memory{cache: cache}, nil
}

// Get returns a copy of the document stored under key.
func (m *Memory) Get(_ context.Context, key string) (*Document, error) {
	doc, ok := m.cache.Get(key)
	if !ok {
		return nil, ErrNotFound
	}
	doc.Payload = slices.Clone(doc.Payload)
	return &doc, nil
}

// Set stores a copy of doc under key.
func (m *Memory) Set(_ context.Context, key string, doc Document) error {
	doc, err := prepare(key, doc)
	if err != nil {
		return err
	}
	doc.Payload = slices.Clone(doc.Payload)
	m.cache.Add(key, doc)
	return nil
}

// Len reports the number of stored documents.
func (m *Memory) Len() int {
	return m.cache.Len()
}

// Close drops all documents.
func (m *Memory) Close() error {
	m.cache.Purge()
	return nil
}
