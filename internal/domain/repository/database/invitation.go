package database

import (
	"context"
	"time"

	"celebra/internal/domain/model"
)

type InvitationWriter interface {
	Write(ctx context.Context, invitation *model.Invitation) error
}

type InvitationRetriever interface {
	GetByID(ctx context.Context, id string) (*model.Invitation, error)
}

// ExpiredInvitationLister returns invitations whose expires_at is strictly
// before asOf. expires_at is the authoritative field for the periodic sweep;
// marriage_date is not consulted here.
type ExpiredInvitationLister interface {
	GetExpired(ctx context.Context, asOf time.Time) ([]model.Invitation, error)
}

// ExpiredInvitationRemover batch-deletes the given ids, re-filtered by the
// expires_at predicate. Returns the number of rows deleted.
type ExpiredInvitationRemover interface {
	RemoveExpired(ctx context.Context, ids []string, asOf time.Time) (int64, error)
}

// StaleInvitationRemover deletes the rows of invitations whose marriage_date
// is strictly before cutoff. Rows only, no blob cleanup: this is the
// access-time fast path that keeps an expired invitation from rendering.
type StaleInvitationRemover interface {
	RemoveStale(ctx context.Context, cutoff time.Time) (int64, error)
}
