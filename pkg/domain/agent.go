package domain

import (
	"time"

	"github.com/google/uuid"
)

// AgentID uniquely identifies an agent profile.
type AgentID uuid.UUID

// String returns the canonical UUID representation of the ID.
func (id AgentID) String() string { return uuid.UUID(id).String() }

// SocialLinks are the optional contact channels of an agent.
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
}

// AgentProfile is the public profile of a real estate agent. Catalog agents
// have no linked user.
type AgentProfile struct {
	ID     AgentID `json:"id"`
	UserID UserID  `json:"userId"`

	Name      string      `json:"name"`
	Title     string      `json:"title"`
	Location  string      `json:"location"`
	Phone     string      `json:"phone"`
	Email     string      `json:"email"`
	About     string      `json:"about"`
	AvatarURL string      `json:"avatarUrl"`
	Social    SocialLinks `json:"social"`

	ListingCount int  `json:"listingCount"`
	Premium      bool `json:"isPremium"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
