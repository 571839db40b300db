package models

import "time"

// Reservation and Occupation are written in pairs by the fixture generator but
// stored independently; they share (ClientID, HotelID, StartAt), there is no
// foreign key between them.
type Reservation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ClientID   uint      `gorm:"column:client_id;uniqueIndex:idx_reservation_key" json:"clientId"`
	HotelID    uint      `gorm:"column:hotel_id;uniqueIndex:idx_reservation_key" json:"hotelId"`
	RoomTypeID uint      `gorm:"column:room_type_id;uniqueIndex:idx_reservation_key" json:"roomTypeId"`
	StartAt    time.Time `gorm:"column:start_at;uniqueIndex:idx_reservation_key" json:"startAt"`
	Nights     int       `gorm:"column:nights" json:"nights"`
	RoomCount  int       `gorm:"column:room_count" json:"roomCount"`

	CreatedAt time.Time `json:"-"`

	Client   Client   `gorm:"foreignKey:ClientID" json:"-"`
	Hotel    Hotel    `gorm:"foreignKey:HotelID" json:"-"`
	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"-"`
}
