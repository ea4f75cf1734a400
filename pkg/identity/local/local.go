// Package local is an identity provider backed by the users table, with
// bcrypt password hashes.
package local

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"estate/internal/config"
	"estate/pkg/domain"
	"estate/pkg/identity"
	"estate/pkg/logger"
	"estate/pkg/serrors"
	"estate/pkg/storage"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultAgentTitle is given to profiles created on agent sign-up.
const DefaultAgentTitle = "Real Estate Agent"

// Options configures the local provider.
type Options struct {
	// AdminEmails resolve to the admin role regardless of the stored role.
	AdminEmails []string
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
}

// NewOptions reads the identity section of cfg.
func NewOptions(cfg *config.Config) Options {
	return Options{
		AdminEmails: cfg.Identity.AdminEmails,
		BcryptCost:  cfg.Identity.BcryptCost,
	}
}

// Provider is an identity.Provider that owns its users. Passwords are stored
// as bcrypt hashes; the email list in Options promotes accounts to admin at
// read time without touching the stored role.
//
// Status changes are announced synchronously to every subscribed listener,
// in the goroutine that made the change. Listeners must not call back into
// Subscribe.
type Provider struct {
	storage  storage.Storage
	admins   map[string]struct{}
	cost     int
	validate *validator.Validate

	mu        sync.RWMutex
	listeners map[int]identity.Listener
	nextID    int
}

var _ identity.Provider = (*Provider)(nil)

// New returns a provider over strg.
func New(strg storage.Storage, options Options) *Provider {
	admins := make(map[string]struct{}, len(options.AdminEmails))
	for _, email := range options.AdminEmails {
		if email = normalizeEmail(email); email != "" {
			admins[email] = struct{}{}
		}
	}

	cost := options.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &Provider{
		storage:   strg,
		admins:    admins,
		cost:      cost,
		validate:  validator.New(),
		listeners: map[int]identity.Listener{},
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// effective applies the admin email list to a stored user.
func (p *Provider) effective(user *domain.User) *domain.User {
	if _, ok := p.admins[normalizeEmail(user.Email)]; ok {
		user.Role = domain.RoleAdmin
	}

	return user
}

func (p *Provider) SignUp(ctx context.Context, registration identity.Registration) (*domain.User, error) {
	email := normalizeEmail(registration.Email)
	if err := p.validate.Var(email, "required,email"); err != nil {
		return nil, serrors.With(serrors.ErrBadRequest, "a valid email is required")
	}
	if len(registration.Password) < identity.MinPasswordLength {
		return nil, serrors.With(serrors.ErrBadRequest,
			"password must be at least %d characters", identity.MinPasswordLength)
	}
	if !registration.Role.SelfRegistrable() {
		return nil, serrors.With(serrors.ErrBadRequest, "cannot sign up as %q", registration.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(registration.Password), p.cost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	localPart, _, _ := strings.Cut(email, "@")
	name := strings.TrimSpace(registration.Name)
	if name == "" {
		name = localPart
	}

	var created *domain.User
	err = p.storage.WithTx(ctx, func(s storage.AllStorage) error {
		user, err := s.CreateUser(ctx, domain.User{
			Email:        email,
			Name:         name,
			Role:         registration.Role,
			Status:       domain.UserStatusActive,
			PasswordHash: string(hash),
		})
		if errors.Is(err, storage.ErrDuplicate) {
			return serrors.With(serrors.ErrConflict, "an account with this email already exists")
		}
		if err != nil {
			return fmt.Errorf("could not create user: %w", err)
		}

		if user.Role == domain.RoleAgent {
			if _, err := s.UpsertAgentProfile(ctx, domain.AgentProfile{
				UserID: user.ID,
				Name:   localPart,
				Title:  DefaultAgentTitle,
				Email:  email,
			}); err != nil {
				return fmt.Errorf("could not create agent profile: %w", err)
			}
		}
		created = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "user signed up", zap.Stringer("userID", created.ID), zap.String("role", string(created.Role)))

	return p.effective(created), nil
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := p.storage.UserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid email or password")
	}
	if user.IsBlocked() {
		return nil, serrors.With(serrors.ErrForbidden, "account is blocked")
	}

	return p.effective(user), nil
}

func (p *Provider) User(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := p.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return p.effective(user), nil
}

// SetStatus blocks or unblocks a user. Listeners hear about it only when the
// stored status actually changed; setting the status a user already has is a
// no-op that leaves their sessions alone.
func (p *Provider) SetStatus(ctx context.Context,
	id domain.UserID,
	status domain.UserStatus) (*domain.User, error) {
	if status != domain.UserStatusActive && status != domain.UserStatusBlocked {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown status %q", status)
	}

	var (
		user    *domain.User
		changed bool
	)
	err := p.storage.WithTx(ctx, func(strg storage.AllStorage) error {
		current, err := strg.UserByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get user: %w", err)
		}
		if current == nil {
			return serrors.With(serrors.ErrNotFound, "user not found")
		}
		if current.Status == status {
			user = current

			return nil
		}

		user, err = strg.UpdateUserStatus(ctx, id, status)
		if err != nil {
			return fmt.Errorf("could not update user status: %w", err)
		}
		if user == nil {
			return serrors.With(serrors.ErrNotFound, "user not found")
		}
		changed = true

		return nil
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	user = p.effective(user)

	if changed {
		p.publish(ctx, identity.Change{
			UserID:        user.ID,
			Role:          user.Role,
			Authenticated: !user.IsBlocked(),
		})
	}

	return user, nil
}

func (p *Provider) Subscribe(fn identity.Listener) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.listeners[id] = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.listeners, id)
	}
}

func (p *Provider) publish(ctx context.Context, change identity.Change) {
	p.mu.RLock()
	listeners := make([]identity.Listener, 0, len(p.listeners))
	for _, fn := range p.listeners {
		listeners = append(listeners, fn)
	}
	p.mu.RUnlock()

	logger.Info(ctx, "publishing identity change",
		zap.Stringer("userID", change.UserID),
		zap.Bool("authenticated", change.Authenticated),
		zap.Int("listeners", len(listeners)))

	for _, fn := range listeners {
		fn(ctx, change)
	}
}
