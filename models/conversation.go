package models

import (
	"time"

	"gorm.io/datatypes"
)

// Conversation persists the slot values of one chat sender between turns.
// Slots is a JSON object keyed by slot name (city, price, party_size).
type Conversation struct {
	ID       uint           `gorm:"primaryKey" json:"id"`
	SenderID string         `gorm:"column:sender_id;type:varchar(100);uniqueIndex" json:"senderId"`
	Slots    datatypes.JSON `gorm:"column:slots" json:"slots"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
