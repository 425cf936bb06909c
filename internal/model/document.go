package model

import "time"

// Document keys, one per persisted collection.
const (
	DocSession      = "pos_session"
	DocMenu         = "pos_menu"
	DocStock        = "pos_stock"
	DocTransactions = "pos_transactions"
	DocSettings     = "pos_settings"
)

// Document is a whole collection serialized as JSON under a fixed key.
type Document struct {
	Key       string    `gorm:"column:doc_key;type:varchar(100);primaryKey" json:"key"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	UpdatedAt time.Time `json:"updated_at"`
}
