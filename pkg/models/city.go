package models

import (
	"github.com/uptrace/bun"
)

type City struct {
	bun.BaseModel `bun:"table:qt_cities,alias:c"`

	ID        int    `bun:",pk,nullzero" json:"id"`
	Name      string `bun:",nullzero" json:"name"`
	StateID   *int   `json:"state_id"`
	CountryID int    `bun:",nullzero" json:"country_id"`

	State   *State   `bun:"rel:belongs-to,join:state_id=id" json:"state,omitempty"`
	Country *Country `bun:"rel:belongs-to,join:country_id=id" json:"country,omitempty"`
}

type StateCity struct {
	bun.BaseModel `bun:"table:qt_state_cities,alias:sc"`

	StateID int `bun:",pk" json:"state_id"`
	CityID  int `bun:",pk" json:"city_id"`
}

type CountryCity struct {
	bun.BaseModel `bun:"table:qt_country_cities,alias:cc"`

	CountryID int `bun:",pk" json:"country_id"`
	CityID    int `bun:",pk" json:"city_id"`
}
