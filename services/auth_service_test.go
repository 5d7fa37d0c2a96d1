package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-reservation-backend/models"
)

const testJWTSecret = "test-secret"

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Email:       "anna@example.com",
		Password:    "Sup3rSecret",
		BirthDate:   "1992-03-14",
		FirstName:   "Anna",
		LastName:    "Nowak",
		PhoneNumber: "+48123123123",
		Role:        "client",
	}
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testJWTSecret)
	ctx := context.Background()

	t.Run("creates account", func(t *testing.T) {
		user, err := svc.Register(ctx, validRegisterInput())
		require.NoError(t, err)
		assert.Equal(t, "anna@example.com", user.Email)
		assert.Equal(t, RoleClient, user.Role)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "Sup3rSecret", user.PasswordHash)
	})

	t.Run("duplicate email", func(t *testing.T) {
		in := validRegisterInput()
		in.FirstName = "Another"
		_, err := svc.Register(ctx, in)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("email is normalized", func(t *testing.T) {
		in := validRegisterInput()
		in.Email = "  ANNA@example.com "
		_, err := svc.Register(ctx, in)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("bad email", func(t *testing.T) {
		in := validRegisterInput()
		in.Email = "not-an-email"
		_, err := svc.Register(ctx, in)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("weak password", func(t *testing.T) {
		for _, password := range []string{"short1A", "nouppercase1", "NoDigitsHere"} {
			in := validRegisterInput()
			in.Email = "fresh@example.com"
			in.Password = password
			_, err := svc.Register(ctx, in)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr, "password %q", password)
		}
	})

	t.Run("bad birth date", func(t *testing.T) {
		for _, birthDate := range []string{"14-03-1992", "1899-12-31", "2100-01-01"} {
			in := validRegisterInput()
			in.Email = "fresh@example.com"
			in.BirthDate = birthDate
			_, err := svc.Register(ctx, in)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr, "birth date %q", birthDate)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		in := validRegisterInput()
		in.Email = "fresh@example.com"
		in.Role = "owner"
		_, err := svc.Register(ctx, in)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
	})
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testJWTSecret)
	ctx := context.Background()

	registered, err := svc.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		result, err := svc.Login(ctx, "anna@example.com", "Sup3rSecret")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, result.User.ID)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)

		token, err := jwt.Parse(result.AccessToken, func(t *jwt.Token) (interface{}, error) {
			return []byte(testJWTSecret), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.EqualValues(t, registered.ID, claims["sub"])
		assert.Equal(t, RoleClient, claims["role"])
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "anna@example.com", "WrongPass1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "Sup3rSecret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRegisteredUserCanReserve(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testJWTSecret)
	reservations := NewReservationService(db, nil)
	ctx := context.Background()

	user, err := auth.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	hotel := createHotel(t, db, "Hotel Polonia", "Warsaw", "PL", 4)
	room := createRoom(t, db, hotel, 2, "150.00")

	res, err := reservations.Create(ctx, user.ID, validCreateInput(room, user))
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusActive, res.ReservationStatus)
}
