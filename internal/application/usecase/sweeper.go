package usecase

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"celebra/internal/domain/model"
	"celebra/internal/domain/policy"
	"celebra/internal/domain/repository/broker"
	"celebra/internal/domain/repository/database"
	"celebra/internal/domain/repository/minio"
	"celebra/pkg/logger"
	"celebra/pkg/utils"
)

// SweepState reports whether a sweep run is in flight.
type SweepState int32

const (
	SweepIdle SweepState = iota
	SweepRunning
)

// Sweeper enforces the retention window on wishes and invitations: expired
// records have their blobs deleted best-effort, then their rows removed in
// one batch. Row deletion is never gated on blob deletion succeeding; an
// orphaned blob is a storage leak the next converging sweep cannot fix, an
// orphaned row is retried on the next sweep because it still matches the
// cutoff predicate.
type Sweeper struct {
	wishLister   database.ExpiredWishLister
	wishRemover  database.ExpiredWishRemover
	invLister    database.ExpiredInvitationLister
	invRemover   database.ExpiredInvitationRemover
	staleRemover database.StaleInvitationRemover
	blobRemover  minio.Remover
	journal      broker.Publisher

	wishExpiry  policy.FixedTTL
	invExpiry   policy.ExplicitExpiry
	staleExpiry policy.GraceWindow

	now   func() time.Time
	state atomic.Int32
}

func NewSweeper(wishLister database.ExpiredWishLister, wishRemover database.ExpiredWishRemover,
	invLister database.ExpiredInvitationLister, invRemover database.ExpiredInvitationRemover,
	staleRemover database.StaleInvitationRemover, blobRemover minio.Remover, journal broker.Publisher,
) *Sweeper {
	return &Sweeper{
		wishLister:   wishLister,
		wishRemover:  wishRemover,
		invLister:    invLister,
		invRemover:   invRemover,
		staleRemover: staleRemover,
		blobRemover:  blobRemover,
		journal:      journal,
		wishExpiry:   policy.FixedTTL{TTL: model.WishTTL},
		invExpiry:    policy.ExplicitExpiry{},
		staleExpiry:  policy.GraceWindow{Window: model.InvitationGrace},
		now:          time.Now,
	}
}

// State reports whether Run is currently executing.
func (s *Sweeper) State() SweepState {
	return SweepState(s.state.Load())
}

// Run executes both sweeps. Overlapping invocations are skipped, not queued:
// the periodic trigger and the start-of-application trigger share this guard.
func (s *Sweeper) Run(ctx context.Context) {
	if !s.state.CompareAndSwap(int32(SweepIdle), int32(SweepRunning)) {
		logger.Warn("sweep already running, skipping")

		return
	}
	defer s.state.Store(int32(SweepIdle))

	if err := s.SweepWishes(ctx); err != nil {
		logger.Error("wish sweep failed", "err", err)
	}
	if err := s.SweepInvitations(ctx); err != nil {
		logger.Error("invitation sweep failed", "err", err)
	}
}

// SweepWishes deletes wishes created more than the fixed TTL ago. A wish with
// timestamp exactly at the cutoff is kept (strict less-than).
func (s *Sweeper) SweepWishes(ctx context.Context) error {
	now := s.now()
	cutoff := s.wishExpiry.Cutoff(now)

	expired, err := s.wishLister.GetExpired(ctx, cutoff)
	if err != nil {
		return err
	}
	if len(expired) == 0 {
		return nil
	}

	ids := make([]string, 0, len(expired))
	for i := range expired {
		wish := &expired[i]
		ids = append(ids, wish.ID)

		names := wishBlobNames(wish)
		s.record(ctx, broker.Event{Phase: broker.PhasePending, Kind: "wish", ID: wish.ID, Blobs: names, At: now})

		if len(names) == 0 {
			continue
		}
		// Blob failures are logged and do not hold back the row delete.
		if err := s.blobRemover.Remove(ctx, names); err != nil {
			logger.Error("wish blob cleanup incomplete", "wish", wish.ID, "err", err)
		}
	}

	deleted, err := s.wishRemover.RemoveExpired(ctx, ids, cutoff)
	if err != nil {
		return err
	}

	for _, id := range ids {
		s.record(ctx, broker.Event{Phase: broker.PhaseDeleted, Kind: "wish", ID: id, At: now})
	}

	logger.Info("wish sweep complete", "matched", len(ids), "deleted", deleted)

	return nil
}

// SweepInvitations deletes invitations whose expires_at has passed.
// expires_at is authoritative: an invitation with a future marriage_date but
// a past expires_at is still removed.
func (s *Sweeper) SweepInvitations(ctx context.Context) error {
	now := s.now()
	asOf := s.invExpiry.Cutoff(now)

	expired, err := s.invLister.GetExpired(ctx, asOf)
	if err != nil {
		return err
	}
	if len(expired) == 0 {
		return nil
	}

	ids := make([]string, 0, len(expired))
	for i := range expired {
		invitation := &expired[i]
		ids = append(ids, invitation.ID)

		names := invitationBlobNames(invitation)
		s.record(ctx, broker.Event{Phase: broker.PhasePending, Kind: "invitation", ID: invitation.ID, Blobs: names, At: now})

		if len(names) == 0 {
			continue
		}
		if err := s.blobRemover.Remove(ctx, names); err != nil {
			logger.Error("invitation blob cleanup incomplete", "invitation", invitation.ID, "err", err)
		}
	}

	deleted, err := s.invRemover.RemoveExpired(ctx, ids, asOf)
	if err != nil {
		return err
	}

	for _, id := range ids {
		s.record(ctx, broker.Event{Phase: broker.PhaseDeleted, Kind: "invitation", ID: id, At: now})
	}

	logger.Info("invitation sweep complete", "matched", len(ids), "deleted", deleted)

	return nil
}

// CheckExpiredInvitations is the access-time fast path: it deletes the rows
// of invitations whose marriage_date is more than the grace window in the
// past, so an expired invitation is never rendered even when the periodic
// sweep has not run yet. Blobs are left to the periodic sweep.
func (s *Sweeper) CheckExpiredInvitations(ctx context.Context) error {
	cutoff := s.staleExpiry.Cutoff(s.now())

	deleted, err := s.staleRemover.RemoveStale(ctx, cutoff)
	if err != nil {
		return err
	}
	if deleted > 0 {
		logger.Info("removed stale invitations on access", "deleted", deleted)
	}

	return nil
}

func (s *Sweeper) record(ctx context.Context, event broker.Event) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Publish(ctx, event); err != nil {
		logger.Warn("failed to journal cleanup event", "kind", event.Kind, "id", event.ID, "err", err)
	}
}

// wishBlobNames derives the object names owned by a wish: the basename of
// its profile image plus the basename of every journey image. Entries that
// do not reduce to a name are skipped; the row is still deleted.
func wishBlobNames(wish *model.Wish) []string {
	var names []string

	if wish.ImageURL != "" {
		if name, ok := utils.BlobNameFromURL(wish.ImageURL); ok {
			names = append(names, name)
		} else {
			logger.Warn("skipping malformed image reference", "wish", wish.ID, "url", wish.ImageURL)
		}
	}

	for _, raw := range wish.JourneyImages {
		name, ok := utils.BlobNameFromURL(raw)
		if !ok {
			logger.Warn("skipping malformed journey image reference", "wish", wish.ID, "url", raw)

			continue
		}
		names = append(names, name)
	}

	return names
}

// invitationBlobNames derives object names by filtering the invitation's
// images for entries containing each image_ids fragment. A fragment can
// match zero or several images; the convention is best-effort by design.
func invitationBlobNames(invitation *model.Invitation) []string {
	if len(invitation.ImageIDs) == 0 {
		return nil
	}

	var names []string
	seen := make(map[string]struct{})

	for _, fragment := range invitation.ImageIDs {
		if fragment == "" {
			continue
		}
		for _, raw := range invitation.Images {
			if !strings.Contains(raw, fragment) {
				continue
			}
			name, ok := utils.BlobNameFromURL(raw)
			if !ok {
				logger.Warn("skipping malformed invitation image reference",
					"invitation", invitation.ID, "url", raw)

				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	return names
}
