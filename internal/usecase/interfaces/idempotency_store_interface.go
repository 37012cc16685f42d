package interfaces

import "context"

// IIdempotencyStore records command keys so a retried request is applied once.
type IIdempotencyStore interface {
	// Add returns true when the key was newly recorded.
	Add(ctx context.Context, key string) (bool, error)
	// Remove releases a key after the command failed so the client may retry.
	Remove(ctx context.Context, key string) error
}
