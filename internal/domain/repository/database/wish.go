package database

import (
	"context"
	"time"

	"celebra/internal/domain/model"
)

type WishWriter interface {
	Write(ctx context.Context, wish *model.Wish) error
}

type WishRetriever interface {
	GetByID(ctx context.Context, id string) (*model.Wish, error)
}

type WishRemover interface {
	RemoveByID(ctx context.Context, id string) error
}

// ExpiredWishLister returns wishes whose timestamp is strictly before cutoff,
// projected down to the fields the sweeper needs (id, image_url,
// journey_images).
type ExpiredWishLister interface {
	GetExpired(ctx context.Context, cutoff time.Time) ([]model.Wish, error)
}

// ExpiredWishRemover batch-deletes the given ids, re-filtered by the same
// cutoff predicate so a record that is no longer expired-eligible is never
// removed. Returns the number of rows deleted.
type ExpiredWishRemover interface {
	RemoveExpired(ctx context.Context, ids []string, cutoff time.Time) (int64, error)
}
