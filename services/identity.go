package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrNoSession      = errors.New("no session token presented")
	ErrInvalidSession = errors.New("invalid or expired session token")
)

// AccessTokenCookie is the cookie the identity provider's browser SDK stores
// the session token under.
const AccessTokenCookie = "sb-access-token"

// Session is the authenticated-visitor view this service needs. Issuance,
// refresh and revocation all belong to the identity provider.
type Session struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

// SessionVerifier reports whether a presented token corresponds to a live
// session.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (*Session, error)
}

// IdentityService verifies provider-issued HS256 session tokens locally with
// the project's JWT secret, the same check the provider applies server side.
type IdentityService struct {
	secret []byte
}

func NewIdentityService(jwtSecret string) *IdentityService {
	return &IdentityService{secret: []byte(jwtSecret)}
}

func (s *IdentityService) Verify(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}

	session := &Session{}
	if sub, ok := claims["sub"].(string); ok {
		session.UserID = sub
	}
	if email, ok := claims["email"].(string); ok {
		session.Email = email
	}
	if exp, ok := claims["exp"].(float64); ok {
		session.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return session, nil
}

// TokenFromRequest pulls the session token from the Authorization header or,
// failing that, the provider's access-token cookie. Empty string means the
// visitor presented nothing.
func TokenFromRequest(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer"))
	}
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}
