package storage

import (
	"context"
	"io"
)

// ObjectStorage persists upload binaries and hands back a durable public URL.
type ObjectStorage interface {
	Save(ctx context.Context, key string, contentType string, data io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}
