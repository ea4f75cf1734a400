package storage

import (
	"context"

	"estate/pkg/domain"
)

// AgentStorage persists agent profiles.
type AgentStorage interface {
	// StoreAgents inserts profiles and returns them with generated fields filled.
	StoreAgents(ctx context.Context, agents ...domain.AgentProfile) ([]domain.AgentProfile, error)
	// Agents lists profiles, premium agents first.
	Agents(ctx context.Context, limit uint) ([]domain.AgentProfile, error)
	// AgentByID returns nil when not found.
	AgentByID(ctx context.Context, ID domain.AgentID) (*domain.AgentProfile, error)
	// AgentByUserID returns the profile owned by a user, or nil.
	AgentByUserID(ctx context.Context, userID domain.UserID) (*domain.AgentProfile, error)
	// UpsertAgentProfile creates or replaces the editable fields of the profile
	// owned by profile.UserID.
	UpsertAgentProfile(ctx context.Context, profile domain.AgentProfile) (*domain.AgentProfile, error)
}
