package models

import (
	"github.com/uptrace/bun"
)

type Book struct {
	bun.BaseModel `bun:"table:qt_books,alias:b"`

	ID              int     `bun:",pk,nullzero" json:"id"`
	Title           string  `bun:",nullzero" json:"title"`
	PublicationYear *string `json:"publication_year"`
	ISBN            *string `bun:"isbn" json:"isbn"`
	PublisherID     int     `bun:",nullzero" json:"publisher_id"`
	Summary         *string `json:"summary"`
	Citation        *string `json:"citation"`
	SourceLink      *string `json:"source_link"`
	Rating          *int    `json:"rating"`

	Publisher *Publisher `bun:"rel:belongs-to,join:publisher_id=id" json:"publisher,omitempty"`
}
