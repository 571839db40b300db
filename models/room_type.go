package models

import "time"

type RoomType struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"column:name;type:varchar(100)" json:"name"`
	NightlyPrice float64 `gorm:"column:nightly_price" json:"nightlyPrice"`

	CreatedAt time.Time `json:"-"`
}
