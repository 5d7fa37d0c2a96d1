package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-reservation-backend/middleware"
	"hotel-reservation-backend/services"
	"hotel-reservation-backend/utils"
)

type ReservationController struct {
	service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{service: service}
}

type reservationRequest struct {
	IDRoom     *uint   `json:"id_room"`
	IDUser     *uint   `json:"id_user"`
	FirstNight *string `json:"first_night"`
	LastNight  *string `json:"last_night"`
	FullName   *string `json:"full_name"`
	BillType   *string `json:"bill_type"`
	NIP        *string `json:"nip"`
}

// PostReservation books a room for the authenticated user.
func (rc *ReservationController) PostReservation(c *gin.Context) {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
		return
	}

	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var missing []string
	if req.IDRoom == nil {
		missing = append(missing, "id_room")
	}
	if req.IDUser == nil {
		missing = append(missing, "id_user")
	}
	if req.FirstNight == nil || strings.TrimSpace(*req.FirstNight) == "" {
		missing = append(missing, "first_night")
	}
	if req.LastNight == nil || strings.TrimSpace(*req.LastNight) == "" {
		missing = append(missing, "last_night")
	}
	if req.FullName == nil || strings.TrimSpace(*req.FullName) == "" {
		missing = append(missing, "full_name")
	}
	if req.BillType == nil || strings.TrimSpace(*req.BillType) == "" {
		missing = append(missing, "bill_type")
	}
	if len(missing) > 0 {
		utils.JSONFieldError(c, http.StatusBadRequest, "missing required fields", missing)
		return
	}

	firstNight, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(*req.FirstNight), time.UTC)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "first_night must be a date in YYYY-MM-DD format")
		return
	}
	lastNight, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(*req.LastNight), time.UTC)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "last_night must be a date in YYYY-MM-DD format")
		return
	}

	input := services.CreateReservationInput{
		RoomID:     *req.IDRoom,
		UserID:     *req.IDUser,
		FirstNight: firstNight,
		LastNight:  lastNight,
		FullName:   *req.FullName,
		BillType:   strings.ToUpper(strings.TrimSpace(*req.BillType)),
	}
	if req.NIP != nil {
		input.NIP = *req.NIP
	}

	reservation, err := rc.service.Create(c.Request.Context(), callerID, input)
	if err != nil {
		// Clients treat a date conflict as a plain bad request.
		if errors.Is(err, services.ErrConflict) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "reservation created successfully",
		"id_reservation": reservation.ID,
	})
}

type cancellationRequest struct {
	IDReservation *uint `json:"id_reservation"`
	IDUser        *uint `json:"id_user"`
}

// PostCancellation cancels one of the authenticated user's reservations.
func (rc *ReservationController) PostCancellation(c *gin.Context) {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
		return
	}

	var req cancellationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var missing []string
	if req.IDReservation == nil {
		missing = append(missing, "id_reservation")
	}
	if req.IDUser == nil {
		missing = append(missing, "id_user")
	}
	if len(missing) > 0 {
		utils.JSONFieldError(c, http.StatusBadRequest, "missing required fields", missing)
		return
	}

	if services.OwnedBy(callerID, *req.IDUser) != nil {
		utils.JSONError(c, http.StatusForbidden, "no permission to cancel this reservation")
		return
	}

	if _, err := rc.service.Cancel(c.Request.Context(), callerID, *req.IDReservation); err != nil {
		if errors.Is(err, services.ErrConflict) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "reservation cancelled successfully"})
}
