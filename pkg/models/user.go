package models

import (
	"time"

	"github.com/uptrace/bun"
)

// User is a local mirror of the external identity provider's user record.
// ExternalID holds the provider's user id; rows are written only by the user
// webhook handler.
type User struct {
	bun.BaseModel `bun:"table:qt_users,alias:u"`

	ID            string     `bun:",pk" json:"id"`
	ExternalID    *string    `json:"external_id"`
	Name          *string    `json:"name"`
	Email         string     `bun:",nullzero" json:"email"`
	EmailVerified *time.Time `json:"email_verified"`
	Image         *string    `json:"image"`
}
