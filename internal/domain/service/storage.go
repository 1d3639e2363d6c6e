package service

import "context"

// ContentStorage is the durable store for originals, derivatives, metadata documents and vector backups.
// References are content-addressed so the same bytes always yield the same reference.
type ContentStorage interface {
	Upload(ctx context.Context, prefix string, data []byte, contentType string) (string, error)
	Download(ctx context.Context, ref string) ([]byte, error)

	// URL returns the public location of ref.
	URL(ref string) string
}
