package models

import "time"

type Hotel struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"column:name;type:varchar(100)" json:"name"`
	Street string `gorm:"column:street;type:varchar(100)" json:"street"`
	City   string `gorm:"column:city;type:varchar(100);index" json:"city"`
	Stars  int    `gorm:"column:stars" json:"stars"`

	CreatedAt time.Time `json:"-"`

	Rooms []Room `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
}
