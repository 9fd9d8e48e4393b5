package models

import (
	"github.com/uptrace/bun"
)

type Topic struct {
	bun.BaseModel `bun:"table:qt_topics,alias:tp"`

	ID          int     `bun:",pk,nullzero" json:"id"`
	Name        string  `bun:",nullzero" json:"name"`
	Description *string `json:"description"`
}

type QuoteTopic struct {
	bun.BaseModel `bun:"table:qt_quote_topics,alias:qtp"`

	QuoteID int    `bun:",pk" json:"quote_id"`
	TopicID int    `bun:",pk" json:"topic_id"`
	Topic   *Topic `bun:"rel:belongs-to,join:topic_id=id" json:"topic,omitempty"`
}
