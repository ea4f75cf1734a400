// Package agent serves agent profiles and lets agents edit their own.
//
//go:generate mockgen -package mockagent -destination=mock/mockagent.go estate/internal/agent Agents
package agent

import (
	"context"
	"fmt"
	"strings"

	"estate/internal/listing"
	"estate/pkg/domain"
	"estate/pkg/serrors"
	"estate/pkg/sessionstore"
	"estate/pkg/storage"

	"github.com/go-playground/validator/v10"
)

// MaxAgents caps List.
const MaxAgents = 200

// ProfileForm holds the editable fields of an agent profile.
type ProfileForm struct {
	Name      string `validate:"required,min=2,max=100"`
	Title     string `validate:"required,min=2,max=100"`
	Location  string `validate:"required,min=2,max=100"`
	Phone     string `validate:"required,min=5,max=30"`
	Email     string `validate:"required,email"`
	About     string `validate:"max=2000"`
	AvatarURL string `validate:"omitempty,url"`
	Facebook  string `validate:"omitempty,url"`
	Instagram string `validate:"omitempty,url"`
	Twitter   string `validate:"omitempty,url"`
	WhatsApp  string `validate:"omitempty,min=5,max=30"`
}

// Agents serves the public agent directory and lets agents edit their own
// profile.
type Agents interface {
	// List returns agent profiles, premium agents first.
	List(ctx context.Context, limit uint) ([]domain.AgentProfile, error)
	// Get returns a single profile.
	Get(ctx context.Context, ID domain.AgentID) (*domain.AgentProfile, error)
	// Profile returns the profile of the session's agent.
	Profile(ctx context.Context, sessionID domain.SessionID) (*domain.AgentProfile, error)
	// UpdateProfile validates and stores the session's agent profile.
	UpdateProfile(ctx context.Context, sessionID domain.SessionID, form ProfileForm) (*domain.AgentProfile, error)
}

type agents struct {
	storage  storage.Storage
	sessions sessionstore.Store
	validate *validator.Validate
}

// New returns the agents service.
func New(strg storage.Storage, sessions sessionstore.Store) Agents {
	return &agents{storage: strg, sessions: sessions, validate: validator.New()}
}

func (a *agents) List(ctx context.Context, limit uint) ([]domain.AgentProfile, error) {
	if limit == 0 || limit > MaxAgents {
		limit = MaxAgents
	}

	res, err := a.storage.Agents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("could not get agents: %w", err)
	}

	return res, nil
}

func (a *agents) Get(ctx context.Context, ID domain.AgentID) (*domain.AgentProfile, error) {
	res, err := a.storage.AgentByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get agent: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "agent not found")
	}

	return res, nil
}

// agentSession returns the session if it belongs to a signed-in agent.
func (a *agents) agentSession(ctx context.Context, sessionID domain.SessionID) (*domain.Session, error) {
	session, err := a.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("could not get session: %w", err)
	}
	if session == nil || !session.Authenticated {
		return nil, serrors.With(serrors.ErrUnauthorized, "session has ended")
	}
	if session.Role != domain.RoleAgent {
		return nil, serrors.With(serrors.ErrForbidden, "only agents have a profile")
	}

	return session, nil
}

func (a *agents) Profile(ctx context.Context, sessionID domain.SessionID) (*domain.AgentProfile, error) {
	session, err := a.agentSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	res, err := a.storage.AgentByUserID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not get agent profile: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "agent profile not found")
	}

	return res, nil
}

func (a *agents) UpdateProfile(ctx context.Context,
	sessionID domain.SessionID,
	form ProfileForm) (*domain.AgentProfile, error) {
	session, err := a.agentSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := a.normalize(&form); err != nil {
		return nil, err
	}

	res, err := a.storage.UpsertAgentProfile(ctx, domain.AgentProfile{
		UserID:    session.UserID,
		Name:      form.Name,
		Title:     form.Title,
		Location:  form.Location,
		Phone:     form.Phone,
		Email:     form.Email,
		About:     form.About,
		AvatarURL: form.AvatarURL,
		Social: domain.SocialLinks{
			Facebook:  form.Facebook,
			Instagram: form.Instagram,
			Twitter:   form.Twitter,
			WhatsApp:  form.WhatsApp,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not store agent profile: %w", err)
	}

	return res, nil
}

// normalize trims every field, canonicalizes links and validates the result.
func (a *agents) normalize(form *ProfileForm) error {
	for _, s := range []*string{
		&form.Name, &form.Title, &form.Location, &form.Phone, &form.Email, &form.About, &form.WhatsApp,
	} {
		*s = strings.TrimSpace(*s)
	}
	form.Email = strings.ToLower(form.Email)

	for _, link := range []*string{&form.AvatarURL, &form.Facebook, &form.Instagram, &form.Twitter} {
		if strings.TrimSpace(*link) == "" {
			*link = ""

			continue
		}
		normalized, err := listing.NormalizeURL(*link)
		if err != nil {
			return serrors.Wrap(serrors.ErrBadRequest, err, "invalid link %q", *link)
		}
		*link = normalized
	}

	if err := a.validate.Struct(form); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid agent profile")
	}

	return nil
}
