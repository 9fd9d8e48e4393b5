package models

import (
	"github.com/uptrace/bun"
)

type Country struct {
	bun.BaseModel `bun:"table:qt_countries,alias:co"`

	ID   int    `bun:",pk,nullzero" json:"id"`
	Name string `bun:",nullzero" json:"name"`
}
