package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-reservation-backend/middleware"
	"hotel-reservation-backend/services"
	"hotel-reservation-backend/utils"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

func userIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "user id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// GetUser returns the authenticated user's own profile.
func (uc *UserController) GetUser(c *gin.Context) {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
		return
	}
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	user, err := uc.service.Profile(c.Request.Context(), callerID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id_user":      user.ID,
		"email":        user.Email,
		"birth_date":   time.Time(user.BirthDate).Format("2006-01-02"),
		"first_name":   user.FirstName,
		"last_name":    user.LastName,
		"phone_number": user.PhoneNumber,
		"role":         user.Role,
	})
}

type changePasswordRequest struct {
	CurrentPassword *string `json:"current_password"`
	NewPassword     *string `json:"new_password"`
}

// ChangePassword replaces the authenticated user's password.
func (uc *UserController) ChangePassword(c *gin.Context) {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
		return
	}
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid JSON body")
		return
	}
	var missing []string
	if req.CurrentPassword == nil || *req.CurrentPassword == "" {
		missing = append(missing, "current_password")
	}
	if req.NewPassword == nil || *req.NewPassword == "" {
		missing = append(missing, "new_password")
	}
	if len(missing) > 0 {
		utils.JSONFieldError(c, http.StatusBadRequest, "missing required fields", missing)
		return
	}

	err := uc.service.ChangePassword(c.Request.Context(), callerID, userID, *req.CurrentPassword, *req.NewPassword)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONMessage(c, http.StatusOK, "password changed successfully")
}

// DeleteUser removes the authenticated user's account and reservations.
func (uc *UserController) DeleteUser(c *gin.Context) {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
		return
	}
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	if err := uc.service.Delete(c.Request.Context(), callerID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONMessage(c, http.StatusOK, "account deleted successfully")
}

// GetUserReservations lists the authenticated user's reservations filtered
// by ?status=active|cancelled.
func (uc *UserController) GetUserReservations(c *gin.Context) {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
		return
	}
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	status := strings.ToLower(strings.TrimSpace(c.DefaultQuery("status", "active")))

	reservations, err := uc.service.Reservations(c.Request.Context(), callerID, userID, status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if len(reservations) == 0 {
		utils.JSONMessage(c, http.StatusNotFound, fmt.Sprintf("no %s reservations for this user", status))
		return
	}

	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}
