// Package entitlement decides whether a session may create another listing
// and reports how much of its quota is left.
//
// A Tracker operates on a single *domain.Session and is not safe for
// concurrent use; callers serialize access per session (the session store
// runs every mutation inside an optimistic transaction).
package entitlement

import "estate/pkg/domain"

// Tier is the state of a session in the entitlement state machine.
// The only transition is Free -> Premium.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// Outcome is the result of a create-listing attempt.
type Outcome int

const (
	// Created means the listing count was incremented.
	Created Outcome = iota
	// QuotaExceeded means the session is at its quota and nothing changed.
	// Callers surface it as an upgrade prompt.
	QuotaExceeded
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case QuotaExceeded:
		return "quota_exceeded"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only view of a session's entitlement.
type Snapshot struct {
	Authenticated bool
	Role          domain.Role
	Tier          Tier
	Premium       bool
	ListingCount  int
	Quota         int
	// Remaining is nil when there is no authenticated session.
	Remaining *int
}

// Tracker applies the entitlement rules to a session.
type Tracker struct {
	table   QuotaTable
	session *domain.Session
}

// New returns a Tracker for the given session. A nil session stands for an
// anonymous visitor.
func New(table QuotaTable, session *domain.Session) *Tracker {
	return &Tracker{table: table, session: session}
}

// Authenticated reports whether the tracker has a signed-in session.
func (t *Tracker) Authenticated() bool {
	return t.session != nil && t.session.Authenticated
}

// Tier returns the current tier of the session.
func (t *Tracker) Tier() Tier {
	if t.Authenticated() && t.session.Premium {
		return TierPremium
	}

	return TierFree
}

// Quota returns the maximum number of listings for the session's role and tier.
func (t *Tracker) Quota() int {
	if !t.Authenticated() {
		return 0
	}

	return t.table.Quota(t.session.Role, t.session.Premium)
}

// Remaining returns quota minus listing count. The boolean is false when
// there is no authenticated session, in which case the value is meaningless.
func (t *Tracker) Remaining() (int, bool) {
	if !t.Authenticated() {
		return 0, false
	}

	return t.Quota() - t.session.ListingCount, true
}

// CreateListing increments the listing count unless the session is at its
// quota. The check is the only place the quota is enforced.
func (t *Tracker) CreateListing() Outcome {
	if !t.Authenticated() || t.session.ListingCount >= t.Quota() {
		return QuotaExceeded
	}

	t.session.ListingCount++

	return Created
}

// DeleteListing decrements the listing count, never below zero. The listing
// ID plays no part in the bookkeeping.
func (t *Tracker) DeleteListing(_ domain.PropertyID) {
	if t.session == nil {
		return
	}

	t.session.ListingCount = max(0, t.session.ListingCount-1)
}

// Upgrade moves the session to the premium tier. It performs no payment
// verification. It reports whether the tier changed.
func (t *Tracker) Upgrade() bool {
	if !t.Authenticated() || t.session.Premium {
		return false
	}

	t.session.Premium = true

	return true
}

// Snapshot returns the current entitlement view.
func (t *Tracker) Snapshot() Snapshot {
	if !t.Authenticated() {
		return Snapshot{Role: domain.RoleNone, Tier: TierFree}
	}

	remaining, _ := t.Remaining()

	return Snapshot{
		Authenticated: true,
		Role:          t.session.Role,
		Tier:          t.Tier(),
		Premium:       t.session.Premium,
		ListingCount:  t.session.ListingCount,
		Quota:         t.Quota(),
		Remaining:     &remaining,
	}
}
