package models

import "time"

// Room is identified to the outside world by (Number, HotelID); the surrogate
// ID only exists for gorm. Room numbers repeat across hotels.
type Room struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	Number     int  `gorm:"column:room_number;uniqueIndex:idx_room_number_hotel" json:"roomNumber"`
	HotelID    uint `gorm:"column:hotel_id;uniqueIndex:idx_room_number_hotel" json:"hotelId"`
	RoomTypeID uint `gorm:"column:room_type_id;index" json:"roomTypeId"`

	CreatedAt time.Time `json:"-"`

	Hotel    Hotel    `gorm:"foreignKey:HotelID" json:"-"`
	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"-"`
}
