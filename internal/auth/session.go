package auth

import (
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// Session is the signed-in operator on the client side. Roles are read
// from the token without verifying it; the API stays the authority.
type Session struct {
	token  string
	claims Claims
}

func NewSession(token string) (*Session, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("failed to read token claims: %w", err)
	}
	return &Session{token: token, claims: claims}, nil
}

func (s *Session) Token() string { return s.token }

func (s *Session) Username() string { return s.claims.Username }

func (s *Session) Roles() []string { return slices.Clone(s.claims.Roles) }

func (s *Session) HasRole(role string) bool {
	return slices.Contains(s.claims.Roles, role)
}

func (s *Session) Expired(now time.Time) bool {
	if s.claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(s.claims.ExpiresAt.Time)
}

// TokenSource attaches the session token as a bearer token.
func (s *Session) TokenSource() oauth2.TokenSource {
	tok := &oauth2.Token{AccessToken: s.token, TokenType: "Bearer"}
	if s.claims.ExpiresAt != nil {
		tok.Expiry = s.claims.ExpiresAt.Time
	}
	return oauth2.StaticTokenSource(tok)
}
