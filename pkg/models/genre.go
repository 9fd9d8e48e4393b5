package models

import (
	"github.com/uptrace/bun"
)

type Genre struct {
	bun.BaseModel `bun:"table:qt_genres,alias:g"`

	ID          int     `bun:",pk,nullzero" json:"id"`
	Name        string  `bun:",nullzero" json:"name"`
	Description *string `json:"description"`
}

type BookGenre struct {
	bun.BaseModel `bun:"table:qt_book_genres,alias:bg"`

	BookID  int    `bun:",pk" json:"book_id"`
	GenreID int    `bun:",pk" json:"genre_id"`
	Genre   *Genre `bun:"rel:belongs-to,join:genre_id=id" json:"genre,omitempty"`
}
