package v1specs

import (
	"estate/internal/agent"
	"estate/pkg/domain"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

func encodeSocial(e *jx.Encoder, s domain.SocialLinks) {
	e.Obj(func(e *jx.Encoder) {
		for _, f := range []struct{ name, value string }{
			{"facebook", s.Facebook},
			{"instagram", s.Instagram},
			{"twitter", s.Twitter},
			{"whatsapp", s.WhatsApp},
		} {
			if f.value != "" {
				e.Field(f.name, func(e *jx.Encoder) { e.Str(f.value) })
			}
		}
	})
}

func decodeSocial(d *jx.Decoder) (domain.SocialLinks, error) {
	var s domain.SocialLinks
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "facebook":
			s.Facebook, err = optStr(d)
		case "instagram":
			s.Instagram, err = optStr(d)
		case "twitter":
			s.Twitter, err = optStr(d)
		case "whatsapp":
			s.WhatsApp, err = optStr(d)
		default:
			return d.Skip() //nolint: wrapcheck
		}

		return field(key, err)
	})

	return s, err //nolint: wrapcheck
}

// EncodeAgent writes a public agent profile.
func EncodeAgent(e *jx.Encoder, a domain.AgentProfile) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(a.ID.String()) })
		e.Field("name", func(e *jx.Encoder) { e.Str(a.Name) })
		e.Field("title", func(e *jx.Encoder) { e.Str(a.Title) })
		e.Field("location", func(e *jx.Encoder) { e.Str(a.Location) })
		e.Field("phone", func(e *jx.Encoder) { e.Str(a.Phone) })
		e.Field("email", func(e *jx.Encoder) { e.Str(a.Email) })
		e.Field("about", func(e *jx.Encoder) { e.Str(a.About) })
		e.Field("avatarUrl", func(e *jx.Encoder) { e.Str(a.AvatarURL) })
		e.Field("social", func(e *jx.Encoder) { encodeSocial(e, a.Social) })
		e.Field("listingCount", func(e *jx.Encoder) { e.Int(a.ListingCount) })
		e.Field("isPremium", func(e *jx.Encoder) { e.Bool(a.Premium) })
	})
}

// EncodeAgents writes a JSON array of agent profiles.
func EncodeAgents(e *jx.Encoder, agents []domain.AgentProfile) {
	e.Arr(func(e *jx.Encoder) {
		for _, a := range agents {
			EncodeAgent(e, a)
		}
	})
}

func agentFields(d *jx.Decoder, key string, a *domain.AgentProfile) error {
	var err error
	switch key {
	case "name":
		a.Name, err = d.Str()
	case "title":
		a.Title, err = d.Str()
	case "location":
		a.Location, err = d.Str()
	case "phone":
		a.Phone, err = d.Str()
	case "email":
		a.Email, err = d.Str()
	case "about":
		a.About, err = optStr(d)
	case "avatarUrl":
		a.AvatarURL, err = optStr(d)
	case "social":
		a.Social, err = decodeSocial(d)
	case "listingCount":
		a.ListingCount, err = d.Int()
	case "isPremium":
		a.Premium, err = d.Bool()
	default:
		return d.Skip() //nolint: wrapcheck
	}

	return field(key, err)
}

// DecodeAgent reads a catalog agent.
func DecodeAgent(d *jx.Decoder) (domain.AgentProfile, error) {
	var a domain.AgentProfile
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		return agentFields(d, key, &a)
	}); err != nil {
		return domain.AgentProfile{}, errors.Wrap(err, "decode agent")
	}

	return a, nil
}

// DecodeAgentProfile reads the body of PUT /me/agent-profile. Counters and
// the premium flag are not editable and are ignored.
func DecodeAgentProfile(data []byte) (agent.ProfileForm, error) {
	var a domain.AgentProfile
	if err := DecodeObject(data, func(d *jx.Decoder, key string) error {
		if key == "listingCount" || key == "isPremium" {
			return d.Skip() //nolint: wrapcheck
		}

		return agentFields(d, key, &a)
	}); err != nil {
		return agent.ProfileForm{}, errors.Wrap(err, "decode agent profile")
	}

	return agent.ProfileForm{
		Name:      a.Name,
		Title:     a.Title,
		Location:  a.Location,
		Phone:     a.Phone,
		Email:     a.Email,
		About:     a.About,
		AvatarURL: a.AvatarURL,
		Facebook:  a.Social.Facebook,
		Instagram: a.Social.Instagram,
		Twitter:   a.Social.Twitter,
		WhatsApp:  a.Social.WhatsApp,
	}, nil
}
