package services

import (
	"fmt"

	"hotel-assistant/models"

	"gorm.io/gorm"
)

// HotelWithPrice is a hotel row annotated with the mean nightly price over
// its rooms' types.
type HotelWithPrice struct {
	models.Hotel
	AvgPrice float64 `gorm:"column:avg_price" json:"avgPrice"`
}

// HotelSearcher is the query contract the dialogue layer depends on.
type HotelSearcher interface {
	Search(city string, maxAvgPrice *float64, priceOnly bool) ([]HotelWithPrice, error)
}

// HotelService answers hotel queries against the relational store.
type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

// Search returns hotels annotated with their average room-type price.
// City matches case-insensitively when non-empty; maxAvgPrice bounds the
// average when set. Results come back ordered by ascending average price
// only for price-only queries, otherwise in store-default order.
func (s *HotelService) Search(city string, maxAvgPrice *float64, priceOnly bool) ([]HotelWithPrice, error) {
	q := s.DB.Model(&models.Hotel{}).
		Select("hotels.*, AVG(room_types.nightly_price) AS avg_price").
		Joins("LEFT JOIN rooms ON rooms.hotel_id = hotels.id").
		Joins("LEFT JOIN room_types ON room_types.id = rooms.room_type_id").
		Group("hotels.id")

	if city != "" {
		q = q.Where("LOWER(hotels.city) = LOWER(?)", city)
	}
	if maxAvgPrice != nil {
		q = q.Having("AVG(room_types.nightly_price) <= ?", *maxAvgPrice)
	}
	if priceOnly {
		q = q.Order("avg_price ASC")
	}

	var hotels []HotelWithPrice
	if err := q.Scan(&hotels).Error; err != nil {
		return nil, fmt.Errorf("hotel search: %w", err)
	}
	return hotels, nil
}

// GetAll lists every hotel with its rooms preloaded.
func (s *HotelService) GetAll() ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := s.DB.Preload("Rooms").Find(&hotels).Error
	return hotels, err
}

// GetByID fetches one hotel.
func (s *HotelService) GetByID(id uint) (models.Hotel, error) {
	var hotel models.Hotel
	err := s.DB.First(&hotel, id).Error
	return hotel, err
}
