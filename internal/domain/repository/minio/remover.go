package minio

import "context"

// Remover deletes objects from the blob store. Remove is best-effort: a
// failure on one object does not stop the rest, and the joined error
// reports every object that could not be removed. Removing an object that
// is already gone is not an error.
type Remover interface {
	Remove(ctx context.Context, objectNames []string) error
}
