package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Quote struct {
	bun.BaseModel `bun:"table:qt_quotes,alias:q"`

	ID          int        `bun:",pk,nullzero" json:"id"`
	UserID      string     `bun:",nullzero" json:"user_id"`
	Text        string     `bun:",nullzero" json:"text"`
	BookID      int        `bun:",nullzero" json:"book_id"`
	Context     *string    `json:"context"`
	PageNumber  *string    `json:"page_number"`
	CreatedAt   time.Time  `bun:",nullzero" json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
	QuotedBy    *int       `json:"quoted_by"`
	IsImportant *bool      `json:"is_important"`
	IsPrivate   *bool      `json:"is_private"`

	Book *Book `bun:"rel:belongs-to,join:book_id=id" json:"book,omitempty"`
}

type QuoteAuthor struct {
	bun.BaseModel `bun:"table:qt_quote_authors,alias:qa"`

	QuoteID  int     `bun:",pk" json:"quote_id"`
	AuthorID int     `bun:",pk" json:"author_id"`
	Author   *Author `bun:"rel:belongs-to,join:author_id=id" json:"author,omitempty"`
}
