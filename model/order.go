package model

import (
	"time"

	"gorm.io/datatypes"
)

// Order is one item-mall purchase waiting to be granted. Rows are never
// deleted, only flagged processed, so the table doubles as an audit trail
// for payment support.
type Order struct {
	ID            int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	CharacterName string         `gorm:"index:idx_orders_character;size:16;not null" json:"character_name"`
	Coins         int64          `gorm:"not null" json:"coins"`
	Processed     bool           `gorm:"not null;default:false" json:"processed"`
	Receipt       datatypes.JSON `json:"receipt"` // raw provider payload, for support lookups
	Created       time.Time      `gorm:"autoCreateTime" json:"created"`
}

func (Order) TableName() string { return "character_orders" }
