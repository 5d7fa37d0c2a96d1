package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/utils"
)

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

// AuthService handles registration and login.
type AuthService struct {
	DB             *gorm.DB
	JWTSecret      string
	AccessTTLMin   int
	RefreshTTLDays int
	BcryptCost     int
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{
		DB:             db,
		JWTSecret:      jwtSecret,
		AccessTTLMin:   utils.EnvIntOrDefault("ACCESS_TOKEN_TTL_MIN", 15),
		RefreshTTLDays: utils.EnvIntOrDefault("REFRESH_TOKEN_TTL_DAYS", 30),
		BcryptCost:     bcrypt.DefaultCost,
	}
}

// RegisterInput carries a registration request whose presence checks
// already passed.
type RegisterInput struct {
	Email       string
	Password    string
	BirthDate   string
	FirstName   string
	LastName    string
	PhoneNumber string
	Role        string
}

// Register validates the input, enforces email uniqueness and stores the
// new account with a bcrypt password hash.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if err := utils.ValidateEmail(email); err != nil {
		return nil, invalid(err.Error())
	}
	if err := utils.ValidatePassword(in.Password); err != nil {
		return nil, invalid(err.Error())
	}
	birthDate, err := utils.ValidateBirthDate(strings.TrimSpace(in.BirthDate))
	if err != nil {
		return nil, invalid(err.Error())
	}
	role := strings.ToLower(strings.TrimSpace(in.Role))
	if role != RoleClient && role != RoleAdmin {
		return nil, invalid("role must be client or admin")
	}

	var existing models.User
	err = s.DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, conflict("an account with this email already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: hash,
		BirthDate:    datatypes.Date(birthDate),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		Role:         role,
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// LoginResult is a successful authentication: a short-lived access token,
// a refresh token and the account it belongs to.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         models.User
}

// Login verifies the credentials and issues a token pair. A missing
// account and a wrong password both return ErrInvalidCredentials so the
// response does not reveal which one failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !utils.VerifyPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	access, err := utils.NewAccessToken(s.JWTSecret, user.ID, user.Role, s.AccessTTLMin)
	if err != nil {
		return nil, err
	}
	refresh, err := utils.NewRefreshToken(s.JWTSecret, user.ID, s.RefreshTTLDays)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  access.Token,
		RefreshToken: refresh.Token,
		User:         user,
	}, nil
}
