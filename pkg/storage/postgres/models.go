package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"estate/pkg/domain"

	"github.com/google/uuid"
)

// PgUser is a row of the users table.
type PgUser struct {
	ID           uuid.UUID `db:"id"            goqu:"skipinsert"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	Role         string    `db:"role"`
	Status       string    `db:"status"`
	PasswordHash string    `db:"password_hash"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Email:        p.Email,
		Name:         p.Name,
		Role:         domain.ParseRole(p.Role),
		Status:       domain.UserStatus(p.Status),
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	status := user.Status
	if status == "" {
		status = domain.UserStatusActive
	}

	*p = PgUser{
		ID:           uuid.UUID(user.ID),
		Email:        user.Email,
		Name:         user.Name,
		Role:         string(user.Role),
		Status:       string(status),
		PasswordHash: user.PasswordHash,
	}
}

// PgProperty is a row of the properties table. Features and images are JSONB
// arrays carried as their JSON text.
type PgProperty struct {
	ID        uuid.UUID     `db:"id"         goqu:"skipinsert"`
	OwnerID   uuid.NullUUID `db:"owner_id"`
	SessionID uuid.NullUUID `db:"session_id"`

	Title       string  `db:"title"`
	Address     string  `db:"address"`
	City        string  `db:"city"`
	State       string  `db:"state"`
	ZipCode     string  `db:"zip_code"`
	Price       int64   `db:"price"`
	Bedrooms    int     `db:"bedrooms"`
	Bathrooms   float64 `db:"bathrooms"`
	SquareFeet  int     `db:"square_feet"`
	Description string  `db:"description"`
	Features    string  `db:"features"`
	Images      string  `db:"images"`
	Lat         float64 `db:"lat"`
	Lng         float64 `db:"lng"`
	Type        string  `db:"type"`
	ListingType string  `db:"listing_type"`
	YearBuilt   int     `db:"year_built"`
	Featured    bool    `db:"featured"`
	Status      string  `db:"status"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgProperty) ToDomain() (*domain.Property, error) {
	var features, images []string
	if err := json.Unmarshal([]byte(p.Features), &features); err != nil {
		return nil, fmt.Errorf("could not unmarshal property features: %w", err)
	}
	if err := json.Unmarshal([]byte(p.Images), &images); err != nil {
		return nil, fmt.Errorf("could not unmarshal property images: %w", err)
	}

	return &domain.Property{
		ID:          domain.PropertyID(p.ID),
		OwnerID:     domain.UserID(p.OwnerID.UUID),
		SessionID:   domain.SessionID(p.SessionID.UUID),
		Title:       p.Title,
		Address:     p.Address,
		City:        p.City,
		State:       p.State,
		ZipCode:     p.ZipCode,
		Price:       p.Price,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		SquareFeet:  p.SquareFeet,
		Description: p.Description,
		Features:    features,
		Images:      images,
		Coordinates: domain.Coordinates{Lat: p.Lat, Lng: p.Lng},
		Type:        domain.PropertyType(p.Type),
		ListingType: domain.ListingType(p.ListingType),
		YearBuilt:   p.YearBuilt,
		Featured:    p.Featured,
		Status:      domain.PropertyStatus(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}, nil
}

func (p *PgProperty) FromDomain(property domain.Property) error {
	features, err := marshalStrings(property.Features)
	if err != nil {
		return fmt.Errorf("could not marshal property features: %w", err)
	}
	images, err := marshalStrings(property.Images)
	if err != nil {
		return fmt.Errorf("could not marshal property images: %w", err)
	}

	status := property.Status
	if status == "" {
		status = domain.PropertyStatusActive
	}

	*p = PgProperty{
		ID: uuid.UUID(property.ID),
		OwnerID: uuid.NullUUID{
			UUID:  uuid.UUID(property.OwnerID),
			Valid: !property.OwnerID.IsZero(),
		},
		SessionID: uuid.NullUUID{
			UUID:  uuid.UUID(property.SessionID),
			Valid: !property.SessionID.IsZero(),
		},
		Title:       property.Title,
		Address:     property.Address,
		City:        property.City,
		State:       property.State,
		ZipCode:     property.ZipCode,
		Price:       property.Price,
		Bedrooms:    property.Bedrooms,
		Bathrooms:   property.Bathrooms,
		SquareFeet:  property.SquareFeet,
		Description: property.Description,
		Features:    features,
		Images:      images,
		Lat:         property.Coordinates.Lat,
		Lng:         property.Coordinates.Lng,
		Type:        string(property.Type),
		ListingType: string(property.ListingType),
		YearBuilt:   property.YearBuilt,
		Featured:    property.Featured,
		Status:      string(status),
	}

	return nil
}

// PgAgent is a row of the agents table.
type PgAgent struct {
	ID     uuid.UUID     `db:"id"      goqu:"skipinsert"`
	UserID uuid.NullUUID `db:"user_id"`

	Name      string `db:"name"`
	Title     string `db:"title"`
	Location  string `db:"location"`
	Phone     string `db:"phone"`
	Email     string `db:"email"`
	About     string `db:"about"`
	AvatarURL string `db:"avatar_url"`
	Facebook  string `db:"facebook"`
	Instagram string `db:"instagram"`
	Twitter   string `db:"twitter"`
	WhatsApp  string `db:"whatsapp"`

	ListingCount int  `db:"listing_count"`
	Premium      bool `db:"premium"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgAgent) ToDomain() *domain.AgentProfile {
	return &domain.AgentProfile{
		ID:        domain.AgentID(p.ID),
		UserID:    domain.UserID(p.UserID.UUID),
		Name:      p.Name,
		Title:     p.Title,
		Location:  p.Location,
		Phone:     p.Phone,
		Email:     p.Email,
		About:     p.About,
		AvatarURL: p.AvatarURL,
		Social: domain.SocialLinks{
			Facebook:  p.Facebook,
			Instagram: p.Instagram,
			Twitter:   p.Twitter,
			WhatsApp:  p.WhatsApp,
		},
		ListingCount: p.ListingCount,
		Premium:      p.Premium,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgAgent) FromDomain(agent domain.AgentProfile) {
	*p = PgAgent{
		ID: uuid.UUID(agent.ID),
		UserID: uuid.NullUUID{
			UUID:  uuid.UUID(agent.UserID),
			Valid: !agent.UserID.IsZero(),
		},
		Name:         agent.Name,
		Title:        agent.Title,
		Location:     agent.Location,
		Phone:        agent.Phone,
		Email:        agent.Email,
		About:        agent.About,
		AvatarURL:    agent.AvatarURL,
		Facebook:     agent.Social.Facebook,
		Instagram:    agent.Social.Instagram,
		Twitter:      agent.Social.Twitter,
		WhatsApp:     agent.Social.WhatsApp,
		ListingCount: agent.ListingCount,
		Premium:      agent.Premium,
	}
}

// PgPaymentGateway is a row of the payment_gateways table. Config is kept as
// raw JSONB text and decoded on the way out.
type PgPaymentGateway struct {
	Name        string    `db:"name"`
	DisplayName string    `db:"display_name"`
	Enabled     bool      `db:"enabled"`
	Config      string    `db:"config"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (p *PgPaymentGateway) ToDomain() (*domain.PaymentGateway, error) {
	cfg := map[string]string{}
	if err := json.Unmarshal([]byte(p.Config), &cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal payment gateway config: %w", err)
	}

	return &domain.PaymentGateway{
		Name:        domain.GatewayName(p.Name),
		DisplayName: p.DisplayName,
		Enabled:     p.Enabled,
		Config:      cfg,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

// marshalStrings encodes a nil slice as an empty JSON array. JSONB columns
// are carried as text so goqu renders them as string literals.
func marshalStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}

	b, err := json.Marshal(values)

	return string(b), err //nolint: wrapcheck
}

func domainPropertiesToPg(properties []domain.Property) ([]PgProperty, error) {
	out := make([]PgProperty, len(properties))
	for i := range out {
		if err := out[i].FromDomain(properties[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgPropertiesToDomain(properties []PgProperty) ([]domain.Property, error) {
	out := make([]domain.Property, 0, len(properties))
	for _, property := range properties {
		d, err := property.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func pgUsersToDomain(users []PgUser) []domain.User {
	out := make([]domain.User, 0, len(users))
	for _, user := range users {
		out = append(out, *user.ToDomain())
	}

	return out
}

func pgAgentsToDomain(agents []PgAgent) []domain.AgentProfile {
	out := make([]domain.AgentProfile, 0, len(agents))
	for _, agent := range agents {
		out = append(out, *agent.ToDomain())
	}

	return out
}
