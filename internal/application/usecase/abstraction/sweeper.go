package abstraction

import "context"

// Sweeper enforces the retention window on stored content.
type Sweeper interface {
	// Run executes both sweeps; overlapping runs are skipped.
	Run(ctx context.Context)
	SweepWishes(ctx context.Context) error
	SweepInvitations(ctx context.Context) error
	CheckExpiredInvitations(ctx context.Context) error
}
