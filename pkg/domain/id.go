package domain

import "github.com/google/uuid"

// IDs are encoded as canonical UUID strings in JSON and job arguments.

func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *UserID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id SessionID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *SessionID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id PropertyID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *PropertyID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id AgentID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *AgentID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// ParseUserID parses the canonical string form of a user ID.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)

	return UserID(id), err //nolint: wrapcheck
}

// ParseSessionID parses the canonical string form of a session ID.
func ParseSessionID(s string) (SessionID, error) {
	id, err := uuid.Parse(s)

	return SessionID(id), err //nolint: wrapcheck
}

// ParsePropertyID parses the canonical string form of a property ID.
func ParsePropertyID(s string) (PropertyID, error) {
	id, err := uuid.Parse(s)

	return PropertyID(id), err //nolint: wrapcheck
}

// ParseAgentID parses the canonical string form of an agent ID.
func ParseAgentID(s string) (AgentID, error) {
	id, err := uuid.Parse(s)

	return AgentID(id), err //nolint: wrapcheck
}
