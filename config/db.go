package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-reservation-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := os.Getenv("DB_PASS")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

// AutoMigrateAll migrates the schema in parent->child order.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Address{},
		&models.Hotel{},
		&models.HotelImage{},
		&models.HotelFacility{},
		&models.RoomFacility{},
		&models.Room{},
		&models.User{},
		&models.Reservation{},
	)
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := AutoMigrateAll(DB); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

func price(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		log.Fatalf("Error parsing seed price %q: %v", s, err)
	}
	return d
}

// SeedDatabase populates an empty database with a small hotel catalog so a
// fresh instance can serve searches. Skipped when hotels already exist.
func SeedDatabase() {
	var hotelCount int64
	DB.Model(&models.Hotel{}).Count(&hotelCount)
	if hotelCount > 0 {
		log.Println("Hotels already seeded")
		return
	}

	roomFacilities := []models.RoomFacility{
		{FacilityName: "wifi"},
		{FacilityName: "tv"},
		{FacilityName: "minibar"},
		{FacilityName: "air conditioning"},
		{FacilityName: "balcony"},
	}
	if err := DB.Create(&roomFacilities).Error; err != nil {
		log.Printf("warning: failed to seed room facilities: %v", err)
		return
	}

	hotelFacilities := []models.HotelFacility{
		{FacilityName: "pool"},
		{FacilityName: "gym"},
		{FacilityName: "parking"},
		{FacilityName: "spa"},
		{FacilityName: "restaurant"},
	}
	if err := DB.Create(&hotelFacilities).Error; err != nil {
		log.Printf("warning: failed to seed hotel facilities: %v", err)
		return
	}

	hotels := []models.Hotel{
		{
			Name:        "Hotel Polonia",
			Stars:       4,
			GeoLength:   21.0122,
			GeoLatitude: 52.2297,
			Address:     models.Address{Country: "PL", City: "Warsaw", Street: "Marszalkowska", Building: "12", ZipCode: "00-590"},
			Facilities:  []models.HotelFacility{hotelFacilities[0], hotelFacilities[2], hotelFacilities[4]},
		},
		{
			Name:        "Baltic Breeze",
			Stars:       5,
			GeoLength:   18.6466,
			GeoLatitude: 54.3520,
			Address:     models.Address{Country: "PL", City: "Gdansk", Street: "Dluga", Building: "3", ZipCode: "80-827"},
			Facilities:  hotelFacilities,
		},
		{
			Name:        "Alpenhof",
			Stars:       3,
			GeoLength:   11.5820,
			GeoLatitude: 48.1351,
			Address:     models.Address{Country: "DE", City: "Munich", Street: "Leopoldstrasse", Building: "88", ZipCode: "80802"},
			Facilities:  []models.HotelFacility{hotelFacilities[1], hotelFacilities[2]},
		},
	}
	if err := DB.Create(&hotels).Error; err != nil {
		log.Printf("warning: failed to seed hotels: %v", err)
		return
	}

	rooms := []models.Room{
		{HotelID: hotels[0].ID, Capacity: 2, PricePerNight: price("240.00"), Facilities: roomFacilities[:2]},
		{HotelID: hotels[0].ID, Capacity: 4, PricePerNight: price("410.00"), Facilities: roomFacilities[:4]},
		{HotelID: hotels[1].ID, Capacity: 2, PricePerNight: price("520.00"), Facilities: roomFacilities},
		{HotelID: hotels[1].ID, Capacity: 3, PricePerNight: price("610.00"), Facilities: roomFacilities[1:]},
		{HotelID: hotels[2].ID, Capacity: 2, PricePerNight: price("150.00"), Facilities: roomFacilities[:1]},
	}
	if err := DB.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed rooms: %v", err)
		return
	}

	images := []models.HotelImage{
		{HotelID: hotels[0].ID, ImageURL: "/uploads/hotels/polonia-front.jpg", Description: "Front view", IsMain: true},
		{HotelID: hotels[1].ID, ImageURL: "/uploads/hotels/baltic-lobby.jpg", Description: "Lobby", IsMain: true},
		{HotelID: hotels[1].ID, ImageURL: "/uploads/hotels/baltic-pool.jpg", Description: "Pool area"},
	}
	if err := DB.Create(&images).Error; err != nil {
		log.Printf("warning: failed to seed hotel images: %v", err)
	}

	log.Println("Hotel catalog seeded")
}
