package abstraction

import (
	"context"

	"celebra/internal/domain/dto"
	"celebra/internal/domain/model"
)

// Creator handles form submissions.
type Creator interface {
	CreateWish(ctx context.Context, req dto.CreateWishRequest) (*model.Wish, error)
	CreateInvitation(ctx context.Context, req dto.CreateInvitationRequest) (*model.Invitation, error)
}
