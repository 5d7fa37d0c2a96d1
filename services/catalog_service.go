package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hotel-reservation-backend/models"
)

const catalogCacheTTL = 10 * time.Minute

// CatalogService serves hotel, room and lookup-list reads. The lookup
// lists change only when inventory is edited, so they are cached in Redis
// when a client is available; a nil Cache falls straight through to the
// database.
type CatalogService struct {
	DB    *gorm.DB
	Cache *redis.Client
}

func NewCatalogService(db *gorm.DB, cache *redis.Client) *CatalogService {
	return &CatalogService{DB: db, Cache: cache}
}

// HotelDetail is the public view of a hotel.
type HotelDetail struct {
	IDHotel     uint           `json:"id_hotel"`
	Name        string         `json:"name"`
	Stars       int            `json:"stars"`
	GeoLength   float64        `json:"geo_length"`
	GeoLatitude float64        `json:"geo_latitude"`
	Address     models.Address `json:"address"`
	Facilities  []string       `json:"facilities"`
}

// RoomDetail is the public view of a room.
type RoomDetail struct {
	IDRoom        uint     `json:"id_room"`
	Capacity      int      `json:"capacity"`
	PricePerNight float64  `json:"price_per_night"`
	IDHotel       uint     `json:"id_hotel"`
	Facilities    []string `json:"facilities"`
}

// HotelImageInfo is one gallery entry for a hotel.
type HotelImageInfo struct {
	URL         string `json:"url"`
	Description string `json:"description"`
	IsMain      bool   `json:"is_main"`
}

func (s *CatalogService) Hotel(ctx context.Context, id uint) (*HotelDetail, error) {
	var hotel models.Hotel
	err := s.DB.WithContext(ctx).
		Preload("Address").
		Preload("Facilities").
		First(&hotel, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("hotel does not exist")
		}
		return nil, err
	}
	return &HotelDetail{
		IDHotel:     hotel.ID,
		Name:        hotel.Name,
		Stars:       hotel.Stars,
		GeoLength:   hotel.GeoLength,
		GeoLatitude: hotel.GeoLatitude,
		Address:     hotel.Address,
		Facilities:  hotelFacilityNames(hotel.Facilities),
	}, nil
}

func (s *CatalogService) Room(ctx context.Context, id uint) (*RoomDetail, error) {
	var room models.Room
	err := s.DB.WithContext(ctx).Preload("Facilities").First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("room does not exist")
		}
		return nil, err
	}
	return &RoomDetail{
		IDRoom:        room.ID,
		Capacity:      room.Capacity,
		PricePerNight: room.PricePerNight.InexactFloat64(),
		IDHotel:       room.HotelID,
		Facilities:    roomFacilityNames(room.Facilities),
	}, nil
}

// Countries lists every country with at least one hotel.
func (s *CatalogService) Countries(ctx context.Context) ([]string, error) {
	return s.cachedList(ctx, "catalog:countries", func() ([]string, error) {
		var countries []string
		err := s.DB.WithContext(ctx).Model(&models.Address{}).
			Distinct("country").
			Order("country ASC").
			Pluck("country", &countries).Error
		return countries, err
	})
}

// Cities lists the cities with at least one hotel, optionally narrowed to
// one country.
func (s *CatalogService) Cities(ctx context.Context, country string) ([]string, error) {
	key := "catalog:cities"
	if country != "" {
		key += ":" + country
	}
	return s.cachedList(ctx, key, func() ([]string, error) {
		q := s.DB.WithContext(ctx).Model(&models.Address{}).
			Distinct("city").
			Order("city ASC")
		if country != "" {
			q = q.Where("country = ?", country)
		}
		var cities []string
		err := q.Pluck("city", &cities).Error
		return cities, err
	})
}

func (s *CatalogService) RoomFacilities(ctx context.Context) ([]string, error) {
	return s.cachedList(ctx, "catalog:room_facilities", func() ([]string, error) {
		var names []string
		err := s.DB.WithContext(ctx).Model(&models.RoomFacility{}).
			Order("facility_name ASC").
			Pluck("facility_name", &names).Error
		return names, err
	})
}

func (s *CatalogService) HotelFacilities(ctx context.Context) ([]string, error) {
	return s.cachedList(ctx, "catalog:hotel_facilities", func() ([]string, error) {
		var names []string
		err := s.DB.WithContext(ctx).Model(&models.HotelFacility{}).
			Order("facility_name ASC").
			Pluck("facility_name", &names).Error
		return names, err
	})
}

// HotelImages lists the gallery of an existing hotel, main image first.
func (s *CatalogService) HotelImages(ctx context.Context, hotelID uint) ([]HotelImageInfo, error) {
	var hotel models.Hotel
	if err := s.DB.WithContext(ctx).Select("id").First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("hotel does not exist")
		}
		return nil, err
	}

	var images []models.HotelImage
	err := s.DB.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("is_main DESC, id ASC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}

	infos := make([]HotelImageInfo, 0, len(images))
	for _, img := range images {
		infos = append(infos, HotelImageInfo{
			URL:         img.ImageURL,
			Description: img.Description,
			IsMain:      img.IsMain,
		})
	}
	return infos, nil
}

// cachedList reads a string list through the cache. Cache failures only
// cost the caching, never the response.
func (s *CatalogService) cachedList(ctx context.Context, key string, load func() ([]string, error)) ([]string, error) {
	if s.Cache != nil {
		raw, err := s.Cache.Get(ctx, key).Result()
		if err == nil {
			var cached []string
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Printf("services: cache read for %s failed: %v", key, err)
		}
	}

	values, err := load()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if body, err := json.Marshal(values); err == nil {
			if err := s.Cache.Set(ctx, key, body, catalogCacheTTL).Err(); err != nil {
				log.Printf("services: cache write for %s failed: %v", key, err)
			}
		}
	}
	return values, nil
}
