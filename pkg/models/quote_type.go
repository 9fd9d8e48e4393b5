package models

import (
	"github.com/uptrace/bun"
)

// Type is a taxonomy label describing the kind of quote (aphorism, dialogue,
// excerpt, and so on).
type Type struct {
	bun.BaseModel `bun:"table:qt_types,alias:ty"`

	ID          int     `bun:",pk,nullzero" json:"id"`
	Name        string  `bun:",nullzero" json:"name"`
	Description *string `json:"description"`
}

type QuoteType struct {
	bun.BaseModel `bun:"table:qt_quote_types,alias:qty"`

	QuoteID int   `bun:",pk" json:"quote_id"`
	TypeID  int   `bun:",pk" json:"type_id"`
	Type    *Type `bun:"rel:belongs-to,join:type_id=id" json:"type,omitempty"`
}
