package usecase

import (
	"context"
	"errors"

	"celebra/internal/domain/model"
	"celebra/internal/domain/repository/database"
	"celebra/pkg/logger"
)

// staleChecker is the slice of the sweeper the getter needs: the synchronous
// access-time expiry check that runs before an invitation is returned.
type staleChecker interface {
	CheckExpiredInvitations(ctx context.Context) error
}

// Getter serves stored records to the render pages.
type Getter struct {
	wishRetriever database.WishRetriever
	invRetriever  database.InvitationRetriever
	staleChecker  staleChecker
}

func NewGetter(wishRetriever database.WishRetriever, invRetriever database.InvitationRetriever,
	checker staleChecker,
) *Getter {
	return &Getter{
		wishRetriever: wishRetriever,
		invRetriever:  invRetriever,
		staleChecker:  checker,
	}
}

func (g *Getter) GetWish(ctx context.Context, id string) (*model.Wish, error) {
	wish, err := g.wishRetriever.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("wish not found")
	}

	return wish, nil
}

// GetInvitation runs the access-time expiry check before the lookup, so an
// invitation past its grace window is deleted and reported as not found
// rather than rendered one last time.
func (g *Getter) GetInvitation(ctx context.Context, id string) (*model.Invitation, error) {
	if err := g.staleChecker.CheckExpiredInvitations(ctx); err != nil {
		// Best-effort: a failed check must not hide a live invitation.
		logger.Error("access-time expiry check failed", "err", err)
	}

	invitation, err := g.invRetriever.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("invitation not found")
	}

	return invitation, nil
}
