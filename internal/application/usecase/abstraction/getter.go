package abstraction

import (
	"context"

	"celebra/internal/domain/model"
)

// Getter serves stored records. GetInvitation runs the access-time expiry
// check before returning.
type Getter interface {
	GetWish(ctx context.Context, id string) (*model.Wish, error)
	GetInvitation(ctx context.Context, id string) (*model.Invitation, error)
}
