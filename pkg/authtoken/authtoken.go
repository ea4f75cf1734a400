// Package authtoken signs and verifies the RS256 bearer tokens handed out on
// sign-in. A token names the user (sub) and the session it belongs to (jti).
package authtoken

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"estate/internal/config"
	"estate/pkg/domain"
	"estate/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the JWT claims carried by a bearer token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Token is a verified bearer token.
type Token struct {
	UserID    domain.UserID
	SessionID domain.SessionID
	Role      domain.Role
	ExpiresAt time.Time
}

// Signer issues tokens with a private key.
type Signer struct {
	key    *rsa.PrivateKey
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewSigner parses a PEM encoded RSA private key. Tokens it signs expire
// after ttl.
func NewSigner(privateKeyPEM, issuer string, ttl time.Duration) (*Signer, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}

	return &Signer{key: key, issuer: issuer, ttl: ttl, now: time.Now}, nil
}

// NewSignerFromConfig builds a Signer from the jwt and session sections.
func NewSignerFromConfig(cfg *config.Config) (*Signer, error) {
	return NewSigner(cfg.JWT.PrivateKey, cfg.JWT.Issuer, cfg.Session.TTL)
}

// Sign returns a token for the session together with its expiry.
func (s *Signer) Sign(session domain.Session) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := Claims{
		Role: string(session.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   session.UserID.String(),
			ID:        session.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, expiresAt, nil
}

// Verifier checks tokens with the matching public key.
type Verifier struct {
	key    *rsa.PublicKey
	issuer string
}

func NewVerifier(publicKeyPEM, issuer string) (*Verifier, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &Verifier{key: key, issuer: issuer}, nil
}

// Verify parses and validates raw. Every failure is an UNAUTHORIZED error.
func (v *Verifier) Verify(raw string) (Token, error) {
	var claims Claims
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Token{}, serrors.Wrap(serrors.ErrUnauthorized, err, "token expired")
		}

		return Token{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Token{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}
	sessionID, err := uuid.Parse(claims.ID)
	if err != nil {
		return Token{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token id")
	}

	return Token{
		UserID:    domain.UserID(userID),
		SessionID: domain.SessionID(sessionID),
		Role:      domain.ParseRole(claims.Role),
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
