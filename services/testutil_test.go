package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-reservation-backend/config"
	"hotel-reservation-backend/models"
)

// newTestDB opens a fresh in-memory database. The pool is capped at one
// connection because every :memory: connection is its own database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.AutoMigrateAll(db))
	return db
}

func date(t *testing.T, raw string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	require.NoError(t, err)
	return d
}

func createHotel(t *testing.T, db *gorm.DB, name, city, country string, stars int) *models.Hotel {
	t.Helper()
	hotel := models.Hotel{
		Name:        name,
		Stars:       stars,
		GeoLength:   21.0,
		GeoLatitude: 52.2,
		Address:     models.Address{Country: country, City: city, Street: "Main", Building: "1", ZipCode: "00-001"},
	}
	require.NoError(t, db.Create(&hotel).Error)
	return &hotel
}

func createRoom(t *testing.T, db *gorm.DB, hotel *models.Hotel, capacity int, pricePerNight string) *models.Room {
	t.Helper()
	price, err := decimal.NewFromString(pricePerNight)
	require.NoError(t, err)
	room := models.Room{HotelID: hotel.ID, Capacity: capacity, PricePerNight: price}
	require.NoError(t, db.Create(&room).Error)
	return &room
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{
		Email:        email,
		PasswordHash: "x",
		BirthDate:    datatypes.Date(date(t, "1990-05-20")),
		FirstName:    "Jan",
		LastName:     "Kowalski",
		PhoneNumber:  "+48123456789",
		Role:         RoleClient,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createReservation(t *testing.T, db *gorm.DB, room *models.Room, user *models.User, firstNight, lastNight, status string) *models.Reservation {
	t.Helper()
	first := date(t, firstNight)
	last := date(t, lastNight)
	res := models.Reservation{
		FirstNight:        datatypes.Date(first),
		LastNight:         datatypes.Date(last),
		FullName:          user.FirstName + " " + user.LastName,
		Price:             room.PricePerNight.Mul(decimal.NewFromInt(int64(nightsBetween(first, last)))),
		BillType:          models.BillTypeReceipt,
		ReservationStatus: status,
		RoomID:            room.ID,
		UserID:            user.ID,
	}
	require.NoError(t, db.Create(&res).Error)
	return &res
}

func strPtr(s string) *string     { return &s }
func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }
