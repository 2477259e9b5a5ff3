package session_test

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CutieCat6778/reservation-frontdesk/internal/session"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T, cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func encode(t *testing.T, tok session.Token) string {
	t.Helper()
	raw, err := json.Marshal(tok)
	require.NoError(t, err)
	return base64.RawURLEncoding.EncodeToString(raw)
}

func TestStore_SaveThenLoad(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)
	store := session.NewStoreAt(func() time.Time { return now })

	c, rec := newContext(t)
	store.Save(c, session.RoleGuest, "guest-token")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, session.GuestCookie, cookies[0].Name)
	require.Equal(t, int(session.GuestTTL/time.Second), cookies[0].MaxAge)
	require.True(t, cookies[0].HttpOnly)

	raw, err := base64.RawURLEncoding.DecodeString(cookies[0].Value)
	require.NoError(t, err)
	var tok session.Token
	require.NoError(t, json.Unmarshal(raw, &tok))
	require.Equal(t, "guest-token", tok.Token)
	require.Equal(t, now.Add(24*time.Hour).UnixMilli(), tok.Expire)

	c2, _ := newContext(t, cookies[0])
	got, ok := store.Load(c2, session.RoleGuest)
	require.True(t, ok)
	require.Equal(t, "guest-token", got)
}

func TestStore_ExpiredBehavesLikeAbsent(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)
	store := session.NewStoreAt(func() time.Time { return now })

	for _, role := range []session.Role{session.RoleStaff, session.RoleGuest} {
		name := session.GuestCookie
		if role == session.RoleStaff {
			name = session.StaffCookie
		}
		c, rec := newContext(t, &http.Cookie{
			Name:  name,
			Value: encode(t, session.Token{Token: "stale", Expire: now.UnixMilli()}),
		})
		_, ok := store.Load(c, role)
		require.False(t, ok)

		// the stale entry is cleared
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, name, cookies[0].Name)
		require.Equal(t, -1, cookies[0].MaxAge)
	}
}

func TestStore_RolesAreIndependent(t *testing.T) {
	t.Parallel()

	now := time.Now()
	store := session.NewStoreAt(func() time.Time { return now })

	staff := &http.Cookie{
		Name:  session.StaffCookie,
		Value: encode(t, session.Token{Token: "staff-token", Expire: now.Add(time.Hour).UnixMilli()}),
	}
	guest := &http.Cookie{
		Name:  session.GuestCookie,
		Value: encode(t, session.Token{Token: "guest-token", Expire: now.Add(-time.Hour).UnixMilli()}),
	}

	c, _ := newContext(t, staff, guest)
	got, ok := store.Load(c, session.RoleStaff)
	require.True(t, ok)
	require.Equal(t, "staff-token", got)

	_, ok = store.Load(c, session.RoleGuest)
	require.False(t, ok)
}

func TestStore_MalformedPayloadIsCleared(t *testing.T) {
	t.Parallel()

	store := session.NewStore()

	for _, value := range []string{"%%%not-base64%%%", base64.RawURLEncoding.EncodeToString([]byte("{broken"))} {
		c, rec := newContext(t, &http.Cookie{Name: session.StaffCookie, Value: value})
		_, ok := store.Load(c, session.RoleStaff)
		require.False(t, ok)
		require.NotEmpty(t, rec.Result().Cookies())
	}
}

func TestStore_JWTExpiryIsHonored(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)
	store := session.NewStoreAt(func() time.Time { return now })

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "r-1",
		"exp": now.Add(-time.Minute).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	// cookie TTL still valid, inner token already expired
	c, _ := newContext(t, &http.Cookie{
		Name:  session.GuestCookie,
		Value: encode(t, session.Token{Token: signed, Expire: now.Add(time.Hour).UnixMilli()}),
	})
	_, ok := store.Load(c, session.RoleGuest)
	require.False(t, ok)

	// opaque tokens pass through untouched
	c2, _ := newContext(t, &http.Cookie{
		Name:  session.GuestCookie,
		Value: encode(t, session.Token{Token: "opaque", Expire: now.Add(time.Hour).UnixMilli()}),
	})
	_, ok = store.Load(c2, session.RoleGuest)
	require.True(t, ok)
}
