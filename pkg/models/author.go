package models

import (
	"github.com/uptrace/bun"
)

type Author struct {
	bun.BaseModel `bun:"table:qt_authors,alias:a"`

	ID          int     `bun:",pk,nullzero" json:"id"`
	FirstName   string  `bun:",nullzero" json:"first_name"`
	LastName    string  `bun:",nullzero" json:"last_name"`
	BirthYear   *int    `json:"birth_year"`
	DeathYear   *int    `json:"death_year"`
	Nationality *string `json:"nationality"`
	Biography   *string `json:"biography"`
}

// Name returns the display name used in denormalized quote views.
func (a *Author) Name() string {
	return a.FirstName + " " + a.LastName
}

type BookAuthor struct {
	bun.BaseModel `bun:"table:qt_book_authors,alias:ba"`

	BookID   int     `bun:",pk" json:"book_id"`
	AuthorID int     `bun:",pk" json:"author_id"`
	Author   *Author `bun:"rel:belongs-to,join:author_id=id" json:"author,omitempty"`
}
