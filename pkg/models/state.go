package models

import (
	"github.com/uptrace/bun"
)

type State struct {
	bun.BaseModel `bun:"table:qt_states,alias:st"`

	ID           int    `bun:",pk,nullzero" json:"id"`
	Name         string `bun:",nullzero" json:"name"`
	Abbreviation string `bun:",nullzero" json:"abbreviation"`
	CountryID    int    `bun:",nullzero" json:"country_id"`

	Country *Country `bun:"rel:belongs-to,join:country_id=id" json:"country,omitempty"`
}

type CountryState struct {
	bun.BaseModel `bun:"table:qt_country_states,alias:cst"`

	CountryID int `bun:",pk" json:"country_id"`
	StateID   int `bun:",pk" json:"state_id"`
}
