package auth

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/quotablebooks/quotable/pkg/migrations"
	"github.com/quotablebooks/quotable/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

const testSessionSecret = "test-session-secret"

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func seedUser(t *testing.T, db *bun.DB, externalID string) *models.User {
	t.Helper()

	user := &models.User{
		ID:         "local-" + externalID,
		ExternalID: &externalID,
		Email:      externalID + "@example.com",
	}
	_, err := db.NewInsert().Model(user).Exec(context.Background())
	require.NoError(t, err)

	return user
}

func signToken(t *testing.T, secret, subject string) string {
	t.Helper()

	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func newAuthContext(t *testing.T, token string, useCookie bool) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		if useCookie {
			req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
		} else {
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		}
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestMiddleware_RequireSession_Cookie(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	m := NewMiddleware(NewService(db, testSessionSecret))

	user := seedUser(t, db, "ext_1")
	c := newAuthContext(t, signToken(t, testSessionSecret, "ext_1"), true)

	called := false
	err := m.RequireSession(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	require.NoError(t, err)

	assert.True(t, called)
	assert.Equal(t, user.ID, c.Get("user_id"))
	require.NotNil(t, SessionUser(c))
	assert.Equal(t, user.ID, SessionUser(c).ID)
}

func TestMiddleware_RequireSession_BearerHeader(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	m := NewMiddleware(NewService(db, testSessionSecret))

	user := seedUser(t, db, "ext_1")
	c := newAuthContext(t, signToken(t, testSessionSecret, "ext_1"), false)

	err := m.RequireSession(func(c echo.Context) error { return nil })(c)
	require.NoError(t, err)
	assert.Equal(t, user.ID, c.Get("user_id"))
}

func TestMiddleware_RequireSession_NoToken(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	m := NewMiddleware(NewService(db, testSessionSecret))

	c := newAuthContext(t, "", false)

	err := m.RequireSession(func(c echo.Context) error { return nil })(c)
	require.Error(t, err)
	assert.EqualError(t, err, "Authentication required")
}

func TestMiddleware_RequireSession_BadSignature(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	m := NewMiddleware(NewService(db, testSessionSecret))

	seedUser(t, db, "ext_1")
	c := newAuthContext(t, signToken(t, "some-other-secret", "ext_1"), false)

	err := m.RequireSession(func(c echo.Context) error { return nil })(c)
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid or expired session")
}

func TestMiddleware_RequireSession_UnknownUser(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	m := NewMiddleware(NewService(db, testSessionSecret))

	c := newAuthContext(t, signToken(t, testSessionSecret, "ext_unknown"), false)

	err := m.RequireSession(func(c echo.Context) error { return nil })(c)
	require.Error(t, err)
	assert.EqualError(t, err, "User not found")
}

func TestMiddleware_OptionalSession(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	m := NewMiddleware(NewService(db, testSessionSecret))

	// anonymous requests pass through without a user
	c := newAuthContext(t, "", false)
	err := m.OptionalSession(func(c echo.Context) error { return nil })(c)
	require.NoError(t, err)
	assert.Nil(t, SessionUser(c))

	// a valid token attaches the user
	user := seedUser(t, db, "ext_1")
	c = newAuthContext(t, signToken(t, testSessionSecret, "ext_1"), true)
	err = m.OptionalSession(func(c echo.Context) error { return nil })(c)
	require.NoError(t, err)
	require.NotNil(t, SessionUser(c))
	assert.Equal(t, user.ID, SessionUser(c).ID)

	// an invalid token degrades to anonymous instead of failing
	c = newAuthContext(t, "garbage", false)
	err = m.OptionalSession(func(c echo.Context) error { return nil })(c)
	require.NoError(t, err)
	assert.Nil(t, SessionUser(c))
}
