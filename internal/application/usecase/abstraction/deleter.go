package abstraction

import "context"

// Deleter handles the manual wish delete endpoint.
type Deleter interface {
	DeleteWish(ctx context.Context, id string) (int, error)
}
