package models

import (
	"github.com/uptrace/bun"
)

// Publisher rows duplicate state_id and country_id from the referenced city at
// write time rather than deriving them at read time.
type Publisher struct {
	bun.BaseModel `bun:"table:qt_publishers,alias:pub"`

	ID        int    `bun:",pk,nullzero" json:"id"`
	Name      string `bun:",nullzero" json:"name"`
	CityID    int    `bun:",nullzero" json:"city_id"`
	StateID   int    `bun:",nullzero" json:"state_id"`
	CountryID int    `bun:",nullzero" json:"country_id"`

	City *City `bun:"rel:belongs-to,join:city_id=id" json:"city,omitempty"`
}

type PublisherBook struct {
	bun.BaseModel `bun:"table:qt_publisher_books,alias:pb"`

	PublisherID int `bun:",pk" json:"publisher_id"`
	BookID      int `bun:",pk" json:"book_id"`
}

type PublisherCity struct {
	bun.BaseModel `bun:"table:qt_publisher_cities,alias:pc"`

	PublisherID int `bun:",pk" json:"publisher_id"`
	CityID      int `bun:",pk" json:"city_id"`
}
