package models

import "time"

// Occupation holds a room for a client over the half-open interval
// [StartAt, EndAt). Non-overlap per room is guaranteed by the fixture
// generator only; the store itself accepts overlapping rows on import.
type Occupation struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	ClientID uint      `gorm:"column:client_id;uniqueIndex:idx_occupation_key" json:"clientId"`
	HotelID  uint      `gorm:"column:hotel_id;uniqueIndex:idx_occupation_key" json:"hotelId"`
	RoomID   uint      `gorm:"column:room_id;uniqueIndex:idx_occupation_key" json:"roomId"`
	StartAt  time.Time `gorm:"column:start_at;uniqueIndex:idx_occupation_key" json:"startAt"`
	EndAt    time.Time `gorm:"column:end_at" json:"endAt"`

	CreatedAt time.Time `json:"-"`

	Client Client `gorm:"foreignKey:ClientID" json:"-"`
	Hotel  Hotel  `gorm:"foreignKey:HotelID" json:"-"`
	Room   Room   `gorm:"foreignKey:RoomID" json:"-"`
}
