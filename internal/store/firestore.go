package store

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const documentsCollection = "documents"

// firestoreDocument is the Firestore shape of a Document. Payloads are kept
// as strings so arbitrary JSON round-trips unchanged.
type firestoreDocument struct {
	Key       string    `firestore:"key"`
	Kind      string    `firestore:"kind"`
	Payload   string    `firestore:"payload"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// Firestore stores documents in a Firestore collection.
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a client for the given Google Cloud project.
func NewFirestore(ctx context.Context, projectID string) (*Firestore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	return &Firestore{client: client}, nil
}

// Firestore document IDs cannot contain '/'.
func firestoreID(key string) string {
	return url.PathEscape(key)
}

// Get loads the document stored under key.
func (f *Firestore) Get(ctx context.Context, key string) (*Document, error) {
	snap, err := f.client.Collection(documentsCollection).Doc(firestoreID(key)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document %s: %w", key, err)
	}

	var stored firestoreDocument
	if err := snap.DataTo(&stored); err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", key, err)
	}

	return &Document{
		Key:       stored.Key,
		Kind:      stored.Kind,
		Payload:   []byte(stored.Payload),
		UpdatedAt: stored.UpdatedAt.UTC(),
	}, nil
}

// Set overwrites the document under key.
func (f *Firestore) Set(ctx context.Context, key string, doc Document) error {
	doc, err := prepare(key, doc)
	if err != nil {
		return err
	}

	_, err = f.client.Collection(documentsCollection).Doc(firestoreID(key)).Set(ctx, firestoreDocument{
		Key:       doc.Key,
		Kind:      doc.Kind,
		Payload:   string(doc.Payload),
		UpdatedAt: doc.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to save document %s: %w", key, err)
	}
	return nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	return f.client.Close()
}
