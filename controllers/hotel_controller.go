package controllers

import (
	"net/http"
	"strconv"

	"hotel-assistant/services"
	"hotel-assistant/utils"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	service *services.HotelService
}

func NewHotelController(service *services.HotelService) *HotelController {
	return &HotelController{service: service}
}

// GetHotels lists hotels with their average room-type price. Optional query
// params: city (case-insensitive exact match), max_price (upper bound on the
// average). With max_price and no city the result is price-sorted.
func (ctrl *HotelController) GetHotels(c *gin.Context) {
	city := c.Query("city")

	var maxPrice *float64
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid max_price")
			return
		}
		maxPrice = &v
	}

	hotels, err := ctrl.service.Search(city, maxPrice, city == "" && maxPrice != nil)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "hotel search failed")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

// GetAllHotels lists every hotel with its rooms preloaded.
func (ctrl *HotelController) GetAllHotels(c *gin.Context) {
	hotels, err := ctrl.service.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "hotel listing failed")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

// GetHotelByID fetches a single hotel.
func (ctrl *HotelController) GetHotelByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
		return
	}
	hotel, err := ctrl.service.GetByID(uint(id))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "hotel not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}
