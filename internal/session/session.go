// Package session keeps the per-role bearer-token caches. The browser stays
// the persisted store: each role maps to one fixed cookie holding a
// base64url JSON payload {token, expire}. The gateway only reads, writes and
// clears those entries; there is no refresh, expiry forces re-authentication.
package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

type Role string

const (
	RoleStaff Role = "staff"
	RoleGuest Role = "guest"
)

const (
	StaffCookie = "adminToken"
	GuestCookie = "userToken"

	StaffTTL = 16 * time.Hour
	GuestTTL = 24 * time.Hour
)

// Token is the stored payload. Expire is epoch millis.
type Token struct {
	Token  string `json:"token"`
	Expire int64  `json:"expire"`
}

type Store struct {
	now func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// NewStoreAt pins the clock, for tests.
func NewStoreAt(now func() time.Time) *Store {
	return &Store{now: now}
}

func cookieName(role Role) string {
	if role == RoleStaff {
		return StaffCookie
	}
	return GuestCookie
}

func TTL(role Role) time.Duration {
	if role == RoleStaff {
		return StaffTTL
	}
	return GuestTTL
}

// Save writes the role's token entry with a fresh expiry.
func (s *Store) Save(c echo.Context, role Role, token string) {
	ttl := TTL(role)
	payload, _ := json.Marshal(Token{ //nolint:errcheck
		Token:  token,
		Expire: s.now().Add(ttl).UnixMilli(),
	})
	c.SetCookie(&http.Cookie{
		Name:     cookieName(role),
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Load returns the role's token. An expired entry behaves exactly like an
// absent one; a payload that fails to decode is cleared on sight.
func (s *Store) Load(c echo.Context, role Role) (string, bool) {
	cookie, err := c.Cookie(cookieName(role))
	if err != nil || cookie.Value == "" {
		return "", false
	}
	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		s.Clear(c, role)
		return "", false
	}
	var tok Token
	if err := json.Unmarshal(raw, &tok); err != nil || tok.Token == "" {
		s.Clear(c, role)
		return "", false
	}
	now := s.now()
	if tok.Expire <= now.UnixMilli() {
		s.Clear(c, role)
		return "", false
	}
	if jwtExpired(tok.Token, now) {
		s.Clear(c, role)
		return "", false
	}
	return tok.Token, true
}

// Clear erases the role's entry.
func (s *Store) Clear(c echo.Context, role Role) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName(role),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// jwtExpired peeks at the token's exp claim without verifying the signature.
// The backend signs and validates its own tokens; this only catches entries
// whose inner expiry ran out before the cookie TTL did.
func jwtExpired(token string, now time.Time) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// opaque token, let the backend judge it
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return now.After(claims.ExpiresAt.Time)
}
