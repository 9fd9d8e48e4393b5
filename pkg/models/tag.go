package models

import (
	"github.com/uptrace/bun"
)

type Tag struct {
	bun.BaseModel `bun:"table:qt_tags,alias:t"`

	ID          int     `bun:",pk,nullzero" json:"id"`
	Name        string  `bun:",nullzero" json:"name"`
	Description *string `json:"description"`
}

type QuoteTag struct {
	bun.BaseModel `bun:"table:qt_quote_tags,alias:qtg"`

	QuoteID int  `bun:",pk" json:"quote_id"`
	TagID   int  `bun:",pk" json:"tag_id"`
	Tag     *Tag `bun:"rel:belongs-to,join:tag_id=id" json:"tag,omitempty"`
}
