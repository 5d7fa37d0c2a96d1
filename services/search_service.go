package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotel-reservation-backend/models"
)

// SearchService answers free-room queries. Every filter is a predicate
// value; Search collects the applicable ones and ANDs them onto a single
// rooms/hotels/addresses join.
type SearchService struct {
	DB *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{DB: db}
}

// RoomResult is one available room in a search response.
type RoomResult struct {
	IDRoom        uint    `json:"id_room"`
	Capacity      int     `json:"capacity"`
	PricePerNight float64 `json:"price_per_night"`
	TotalPrice    float64 `json:"total_price"`
	IDHotel       uint    `json:"id_hotel"`
	HotelName     string  `json:"hotel_name"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	HotelStars    int     `json:"hotel_stars"`
}

type availabilityRow struct {
	IDRoom        uint
	Capacity      int
	PricePerNight decimal.Decimal
	IDHotel       uint
	HotelName     string
	City          string
	Country       string
	HotelStars    int
}

type predicate interface {
	apply(q *gorm.DB) *gorm.DB
}

type capacityAtLeast struct {
	guests int
}

func (p capacityAtLeast) apply(q *gorm.DB) *gorm.DB {
	return q.Where("r.capacity >= ?", p.guests)
}

// noConflictWithin excludes rooms holding a non-cancelled reservation
// that overlaps the requested stay.
type noConflictWithin struct {
	db         *gorm.DB
	firstNight time.Time
	lastNight  time.Time
}

func (p noConflictWithin) apply(q *gorm.DB) *gorm.DB {
	sub := p.db.Model(&models.Reservation{}).
		Select("room_id").
		Where("reservation_status <> ?", models.ReservationStatusCancelled).
		Where(overlapCond, p.firstNight, p.lastNight)
	return q.Where("r.id NOT IN (?)", sub)
}

// placeFilter matches an address on city OR country. Countries holds only
// the countries not already represented by a requested city, so a city
// request narrows its own country instead of being widened by it.
type placeFilter struct {
	cities    []string
	countries []string
}

func (p placeFilter) apply(q *gorm.DB) *gorm.DB {
	switch {
	case len(p.cities) > 0 && len(p.countries) > 0:
		return q.Where("a.city IN ? OR a.country IN ?", p.cities, p.countries)
	case len(p.cities) > 0:
		return q.Where("a.city IN ?", p.cities)
	case len(p.countries) > 0:
		return q.Where("a.country IN ?", p.countries)
	default:
		return q
	}
}

type starBounds struct {
	min *int
	max *int
}

func (p starBounds) apply(q *gorm.DB) *gorm.DB {
	if p.min != nil {
		q = q.Where("h.stars >= ?", *p.min)
	}
	if p.max != nil {
		q = q.Where("h.stars <= ?", *p.max)
	}
	return q
}

// totalPriceBounds compares against the whole-stay total, not the nightly
// rate. Bounds are bound as float64 so the comparison stays numeric on
// every dialect.
type totalPriceBounds struct {
	nights int
	min    *decimal.Decimal
	max    *decimal.Decimal
}

func (p totalPriceBounds) apply(q *gorm.DB) *gorm.DB {
	if p.min != nil {
		q = q.Where("r.price_per_night * ? >= ?", p.nights, p.min.InexactFloat64())
	}
	if p.max != nil {
		q = q.Where("r.price_per_night * ? <= ?", p.nights, p.max.InexactFloat64())
	}
	return q
}

// roomFacilityAll keeps rooms carrying every requested facility. The
// HAVING count over distinct matched names implements the AND semantics.
type roomFacilityAll struct {
	names []string
}

func (p roomFacilityAll) apply(q *gorm.DB) *gorm.DB {
	return q.
		Joins("JOIN rooms_room_facilities rrf ON rrf.room_id = r.id").
		Joins("JOIN room_facilities rf ON rf.id = rrf.room_facility_id").
		Where("LOWER(rf.facility_name) IN ?", p.names).
		Having("COUNT(DISTINCT rf.facility_name) = ?", len(p.names))
}

type hotelFacilityAll struct {
	names []string
}

func (p hotelFacilityAll) apply(q *gorm.DB) *gorm.DB {
	return q.
		Joins("JOIN hotels_hotel_facilities hhf ON hhf.hotel_id = h.id").
		Joins("JOIN hotel_facilities hf ON hf.id = hhf.hotel_facility_id").
		Where("LOWER(hf.facility_name) IN ?", p.names).
		Having("COUNT(DISTINCT hf.facility_name) = ?", len(p.names))
}

// Search returns the rooms free for the whole stay that satisfy every
// filter in the criteria, priced for the full number of nights.
func (s *SearchService) Search(ctx context.Context, c SearchCriteria) ([]RoomResult, error) {
	db := s.DB.WithContext(ctx)

	preds := []predicate{
		capacityAtLeast{guests: c.Guests},
		noConflictWithin{db: s.DB, firstNight: c.FirstNight, lastNight: c.LastNight},
	}

	place, err := s.placePredicate(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("resolving place filter: %w", err)
	}
	preds = append(preds, place)

	if c.StarsMin != nil || c.StarsMax != nil {
		preds = append(preds, starBounds{min: c.StarsMin, max: c.StarsMax})
	}
	if c.PriceMin != nil || c.PriceMax != nil {
		preds = append(preds, totalPriceBounds{nights: c.Nights(), min: c.PriceMin, max: c.PriceMax})
	}
	if len(c.RoomFacilities) > 0 {
		preds = append(preds, roomFacilityAll{names: c.RoomFacilities})
	}
	if len(c.HotelFacilities) > 0 {
		preds = append(preds, hotelFacilityAll{names: c.HotelFacilities})
	}

	q := db.Table("rooms r").
		Select("r.id AS id_room, r.capacity, r.price_per_night, " +
			"h.id AS id_hotel, h.name AS hotel_name, h.stars AS hotel_stars, " +
			"a.city, a.country").
		Joins("JOIN hotels h ON h.id = r.hotel_id").
		Joins("JOIN addresses a ON a.id = h.address_id")

	for _, p := range preds {
		q = p.apply(q)
	}
	if len(c.RoomFacilities) > 0 || len(c.HotelFacilities) > 0 {
		q = q.Group("r.id, r.capacity, r.price_per_night, h.id, h.name, h.stars, a.city, a.country")
	}
	q = q.Order(orderClause(c))

	var rows []availabilityRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("querying available rooms: %w", err)
	}

	nights := decimal.NewFromInt(int64(c.Nights()))
	results := make([]RoomResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, RoomResult{
			IDRoom:        row.IDRoom,
			Capacity:      row.Capacity,
			PricePerNight: row.PricePerNight.InexactFloat64(),
			TotalPrice:    row.PricePerNight.Mul(nights).InexactFloat64(),
			IDHotel:       row.IDHotel,
			HotelName:     row.HotelName,
			City:          row.City,
			Country:       row.Country,
			HotelStars:    row.HotelStars,
		})
	}
	return results, nil
}

// placePredicate resolves the asymmetric city/country rule: a country is
// dropped from the OR filter when one of the requested cities already
// lies in it, otherwise the country would re-admit every city in it.
func (s *SearchService) placePredicate(ctx context.Context, c SearchCriteria) (placeFilter, error) {
	filter := placeFilter{cities: c.Cities, countries: c.Countries}
	if len(c.Cities) == 0 || len(c.Countries) == 0 {
		return filter, nil
	}

	var covered []string
	err := s.DB.WithContext(ctx).Model(&models.Address{}).
		Distinct("country").
		Where("city IN ?", c.Cities).
		Pluck("country", &covered).Error
	if err != nil {
		return filter, err
	}

	coveredSet := make(map[string]struct{}, len(covered))
	for _, country := range covered {
		coveredSet[country] = struct{}{}
	}
	remaining := make([]string, 0, len(c.Countries))
	for _, country := range c.Countries {
		if _, ok := coveredSet[country]; !ok {
			remaining = append(remaining, country)
		}
	}
	filter.countries = remaining
	return filter, nil
}

// orderClause whitelists the sortable columns; r.id breaks ties so pages
// are stable across identical requests.
func orderClause(c SearchCriteria) string {
	column := map[string]string{
		"price": "r.price_per_night",
		"stars": "h.stars",
	}[c.SortBy]
	if column == "" {
		return "r.id ASC"
	}
	return fmt.Sprintf("%s %s, r.id ASC", column, strings.ToUpper(c.SortOrder))
}
