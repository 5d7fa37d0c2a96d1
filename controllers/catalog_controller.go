package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-reservation-backend/services"
	"hotel-reservation-backend/utils"
)

type CatalogController struct {
	service *services.CatalogService
}

func NewCatalogController(service *services.CatalogService) *CatalogController {
	return &CatalogController{service: service}
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, name+" id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

func (cc *CatalogController) GetHotel(c *gin.Context) {
	id, ok := idParam(c, "hotel")
	if !ok {
		return
	}
	hotel, err := cc.service.Hotel(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (cc *CatalogController) GetRoom(c *gin.Context) {
	id, ok := idParam(c, "room")
	if !ok {
		return
	}
	room, err := cc.service.Room(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (cc *CatalogController) GetCountries(c *gin.Context) {
	countries, err := cc.service.Countries(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"countries": countries})
}

func (cc *CatalogController) GetCities(c *gin.Context) {
	country := strings.TrimSpace(c.Query("country"))
	cities, err := cc.service.Cities(c.Request.Context(), country)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

func (cc *CatalogController) GetRoomFacilities(c *gin.Context) {
	names, err := cc.service.RoomFacilities(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room_facilities": names})
}

func (cc *CatalogController) GetHotelFacilities(c *gin.Context) {
	names, err := cc.service.HotelFacilities(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel_facilities": names})
}

func (cc *CatalogController) GetHotelImages(c *gin.Context) {
	id, ok := idParam(c, "hotel")
	if !ok {
		return
	}
	images, err := cc.service.HotelImages(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}
