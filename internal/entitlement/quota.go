package entitlement

import (
	"errors"
	"fmt"

	"estate/internal/config"
	"estate/pkg/domain"
)

// Limits holds the listing quota of one role for both tiers.
type Limits struct {
	Free    int
	Premium int
}

// QuotaTable maps (role, premium) to the maximum number of listings a
// session may create. It is product configuration, never persisted.
type QuotaTable struct {
	User  Limits
	Agent Limits
	Admin Limits
}

// DefaultQuotaTable holds the quotas of roles the configuration leaves out.
var DefaultQuotaTable = QuotaTable{ //nolint: gochecknoglobals
	User:  Limits{Free: 3, Premium: 13},
	Agent: Limits{Free: 13, Premium: 63},
	Admin: Limits{Free: 20, Premium: 100},
}

// NewQuotaTable constructs a QuotaTable from the application config. A role
// whose free and premium quotas are both zero is taken as not configured and
// gets its DefaultQuotaTable entry, so a role cannot be switched off with 0/0.
func NewQuotaTable(cfg *config.Config) QuotaTable {
	limits := func(l config.Limits, fallback Limits) Limits {
		if l.Free == 0 && l.Premium == 0 {
			return fallback
		}

		return Limits{Free: l.Free, Premium: l.Premium}
	}

	return QuotaTable{
		User:  limits(cfg.Quotas.User, DefaultQuotaTable.User),
		Agent: limits(cfg.Quotas.Agent, DefaultQuotaTable.Agent),
		Admin: limits(cfg.Quotas.Admin, DefaultQuotaTable.Admin),
	}
}

// Validate checks that every quota is non-negative and that premium never
// grants less than free.
func (t QuotaTable) Validate() error {
	var errs []error
	for _, role := range []domain.Role{domain.RoleUser, domain.RoleAgent, domain.RoleAdmin} {
		l := t.limits(role)
		if l.Free < 0 || l.Premium < 0 {
			errs = append(errs, fmt.Errorf("%s quota must not be negative", role))
		}
		if l.Premium < l.Free {
			errs = append(errs, fmt.Errorf("%s premium quota (%d) is lower than free quota (%d)", role, l.Premium, l.Free))
		}
	}

	return errors.Join(errs...)
}

// Quota returns the maximum number of listings for the given role and tier.
// Sessions without a role or with an unresolved role get no quota.
func (t QuotaTable) Quota(role domain.Role, premium bool) int {
	l := t.limits(role)
	if premium {
		return l.Premium
	}

	return l.Free
}

func (t QuotaTable) limits(role domain.Role) Limits {
	switch role {
	case domain.RoleUser:
		return t.User
	case domain.RoleAgent:
		return t.Agent
	case domain.RoleAdmin:
		return t.Admin
	case domain.RoleNone, domain.RoleUnknown:
		return Limits{}
	default:
		return Limits{}
	}
}
