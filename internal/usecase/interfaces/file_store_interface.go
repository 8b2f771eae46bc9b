package interfaces

import (
	"context"
	"fmt"
	"time"
)

// DefaultSignedURLTTL is applied when a caller does not request an
// explicit expiry for a retrieval URL.
const DefaultSignedURLTTL = 3600 * time.Second

// StoredFile is the result of placing a file under the partition scheme.
type StoredFile struct {
	Key          string
	URL          string
	SubmissionID string
}

// StorageError wraps any object-storage backend failure (upload, signed
// URL issuance, delete). Backend "not found" and backend errors surface as
// the same kind so cascading deletes can ignore-and-log uniformly.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IFileStore is the partitioned document store: it maps
// (tpa, employer, submission, filename) to a deterministic hierarchical
// key and performs upload, signed-read-URL issuance and delete against the
// object-storage backend.
//
// The key embeds the full ownership chain so storage-layer prefix policies
// can enforce scope independently of the application's own checks.

type IFileStore interface {
	// StoreQuoteFile uploads data under the partition scheme. An empty
	// submissionID makes the store generate a fresh one; passing the same
	// submissionID co-locates every file of one quote.
	StoreQuoteFile(ctx context.Context, data []byte, fileName, tpaID, employerID, contentType, submissionID string) (StoredFile, error)

	// SignedURL issues a time-limited read URL for an existing key.
	// expiresIn <= 0 applies DefaultSignedURLTTL.
	SignedURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// Delete removes the object at key, best-effort.
	Delete(ctx context.Context, key string) error
}
