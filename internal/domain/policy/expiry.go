// Package policy names the three expiry definitions the product carries.
//
// The wish sweep, the invitation sweep and the invitation access-time check
// each decide "expired" differently. The divergence between ExplicitExpiry
// and GraceWindow is kept deliberately: the two can disagree when a stored
// marriage date and the expires_at computed at creation drift apart, and
// which one is "correct" is a product question, not an implementation one.
package policy

import "time"

// FixedTTL expires a record once its creation instant is strictly older than
// now − TTL. A record created exactly at the cutoff is NOT expired.
type FixedTTL struct {
	TTL time.Duration
}

// Cutoff returns the instant before which records are expired.
func (p FixedTTL) Cutoff(now time.Time) time.Time {
	return now.Add(-p.TTL)
}

// ExplicitExpiry expires a record once its own expires_at field has passed.
// The cutoff is simply now: any expires_at strictly before it is expired,
// even if other fields (e.g. a future marriage date) suggest otherwise.
type ExplicitExpiry struct{}

func (ExplicitExpiry) Cutoff(now time.Time) time.Time {
	return now
}

// GraceWindow expires a record once its event date is more than Window in
// the past. Used by the access-time check so an expired invitation is never
// rendered even if the periodic sweep has not run yet.
type GraceWindow struct {
	Window time.Duration
}

func (p GraceWindow) Cutoff(now time.Time) time.Time {
	return now.Add(-p.Window)
}
