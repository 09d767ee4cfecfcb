package registry

import (
	"context"
)

// DocumentStore persists whole registry documents (JSON) under a key.
//
// Saving replaces any document previously stored under the same key.
// LoadDocument returns an error matching ErrDocumentNotFound when nothing is stored under the key.
type DocumentStore interface {
	SaveDocument(ctx context.Context, key string, document []byte) error
	LoadDocument(ctx context.Context, key string) ([]byte, error)
}
