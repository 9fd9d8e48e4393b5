package auth

import (
	"context"
	"database/sql"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/quotablebooks/quotable/pkg/errcodes"
	"github.com/quotablebooks/quotable/pkg/models"
	"github.com/uptrace/bun"
)

// CookieName is the session cookie set by the identity provider's frontend
// SDK.
const CookieName = "__session"

// SessionClaims are the claims carried by a provider-issued session token. The
// subject is the provider's user id.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// Service verifies identity-provider session tokens and resolves them to the
// local user mirror. Sessions are issued and revoked by the provider; this
// service only checks the signature and looks up the mirrored row.
type Service struct {
	db            *bun.DB
	sessionSecret []byte
}

func NewService(db *bun.DB, sessionSecret string) *Service {
	return &Service{
		db:            db,
		sessionSecret: []byte(sessionSecret),
	}
}

// ValidateToken validates a session token and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.sessionSecret, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return claims, nil
}

// RetrieveSessionUser loads the local mirror row for the external user id in
// the claims.
func (s *Service) RetrieveSessionUser(ctx context.Context, claims *SessionClaims) (*models.User, error) {
	user := &models.User{}
	err := s.db.NewSelect().
		Model(user).
		Where("u.external_id = ?", claims.Subject).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("User")
		}
		return nil, errors.WithStack(err)
	}
	return user, nil
}
