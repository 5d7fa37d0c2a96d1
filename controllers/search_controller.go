package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservation-backend/services"
	"hotel-reservation-backend/utils"
)

type SearchController struct {
	service *services.SearchService
}

func NewSearchController(service *services.SearchService) *SearchController {
	return &SearchController{service: service}
}

// SearchFreeRooms returns the rooms available for the requested stay and
// filters. No match is a 404 with a message body, not an empty list.
func (sc *SearchController) SearchFreeRooms(c *gin.Context) {
	var req services.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid JSON body")
		return
	}

	criteria, err := services.BuildSearchCriteria(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	rooms, err := sc.service.Search(c.Request.Context(), criteria)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if len(rooms) == 0 {
		utils.JSONMessage(c, http.StatusNotFound, "no rooms available for the given criteria")
		return
	}

	c.JSON(http.StatusOK, gin.H{"available_rooms": rooms})
}
