package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-reservation-backend/services"
	"hotel-reservation-backend/utils"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type registerRequest struct {
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	BirthDate   *string `json:"birth_date"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	Role        *string `json:"role"`
}

// Register creates a new account.
func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var missing []string
	for _, field := range []struct {
		name  string
		value *string
	}{
		{"email", req.Email},
		{"password", req.Password},
		{"birth_date", req.BirthDate},
		{"first_name", req.FirstName},
		{"last_name", req.LastName},
		{"phone_number", req.PhoneNumber},
		{"role", req.Role},
	} {
		if field.value == nil || strings.TrimSpace(*field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		utils.JSONFieldError(c, http.StatusBadRequest, "missing required fields", missing)
		return
	}

	user, err := ac.service.Register(c.Request.Context(), services.RegisterInput{
		Email:       *req.Email,
		Password:    *req.Password,
		BirthDate:   *req.BirthDate,
		FirstName:   *req.FirstName,
		LastName:    *req.LastName,
		PhoneNumber: *req.PhoneNumber,
		Role:        *req.Role,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "registration completed successfully",
		"user": gin.H{
			"id_user":    user.ID,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		},
	})
}

type loginRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Login exchanges credentials for a token pair.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Email == nil || req.Password == nil || *req.Email == "" || *req.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := ac.service.Login(c.Request.Context(), *req.Email, *req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"token_type":    "Bearer",
		"user": gin.H{
			"id_user":    result.User.ID,
			"email":      result.User.Email,
			"first_name": result.User.FirstName,
			"last_name":  result.User.LastName,
		},
	})
}
