package models

import "time"

type Client struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"column:name;type:varchar(100)" json:"name"`
	Surname string `gorm:"column:surname;type:varchar(100)" json:"surname"`
	Street  string `gorm:"column:street;type:varchar(100)" json:"street"`
	City    string `gorm:"column:city;type:varchar(100)" json:"city"`

	CreatedAt time.Time `json:"-"`
}
