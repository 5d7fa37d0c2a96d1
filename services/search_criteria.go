package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// SearchRequest is the raw JSON body of a free-room search. Optional
// filters are pointers so that absent and zero-valued fields can be
// told apart.
type SearchRequest struct {
	StartDate       *string  `json:"start_date"`
	EndDate         *string  `json:"end_date"`
	Guests          *int     `json:"guests"`
	Cities          []string `json:"city"`
	Countries       []string `json:"countries"`
	PriceMin        *float64 `json:"lowest_price"`
	PriceMax        *float64 `json:"highest_price"`
	StarsMin        *int     `json:"min_hotel_stars"`
	StarsMax        *int     `json:"max_hotel_stars"`
	RoomFacilities  []string `json:"room_facilities"`
	HotelFacilities []string `json:"hotel_facilities"`
	SortBy          *string  `json:"sort_by"`
	SortOrder       *string  `json:"sort_order"`
}

// SearchCriteria is the validated, normalized form consumed by the
// availability query.
type SearchCriteria struct {
	FirstNight      time.Time
	LastNight       time.Time
	Guests          int
	Cities          []string
	Countries       []string
	PriceMin        *decimal.Decimal
	PriceMax        *decimal.Decimal
	StarsMin        *int
	StarsMax        *int
	RoomFacilities  []string
	HotelFacilities []string
	SortBy          string
	SortOrder       string
}

// Nights is the number of nights charged for the stay.
func (c SearchCriteria) Nights() int {
	return nightsBetween(c.FirstNight, c.LastNight)
}

var sortColumns = map[string]struct{}{
	"price": {},
	"stars": {},
}

// BuildSearchCriteria validates a SearchRequest and normalizes it into
// SearchCriteria. The first violated rule aborts the build.
func BuildSearchCriteria(req SearchRequest) (SearchCriteria, error) {
	var c SearchCriteria

	var missing []string
	if req.StartDate == nil || strings.TrimSpace(*req.StartDate) == "" {
		missing = append(missing, "start_date")
	}
	if req.EndDate == nil || strings.TrimSpace(*req.EndDate) == "" {
		missing = append(missing, "end_date")
	}
	if req.Guests == nil {
		missing = append(missing, "guests")
	}
	if len(missing) > 0 {
		return c, &ValidationError{Message: "missing required fields", Fields: missing}
	}

	firstNight, err := parseDate(*req.StartDate)
	if err != nil {
		return c, invalid("start_date must be a date in YYYY-MM-DD format")
	}
	lastNight, err := parseDate(*req.EndDate)
	if err != nil {
		return c, invalid("end_date must be a date in YYYY-MM-DD format")
	}
	if !firstNight.Before(lastNight) {
		return c, invalid("start_date must be earlier than end_date")
	}
	c.FirstNight = firstNight
	c.LastNight = lastNight

	if *req.Guests < 1 {
		return c, invalid("guests must be a positive integer")
	}
	c.Guests = *req.Guests

	if req.PriceMin != nil {
		if *req.PriceMin < 0 {
			return c, invalid("lowest_price must not be negative")
		}
		v := decimal.NewFromFloat(*req.PriceMin)
		c.PriceMin = &v
	}
	if req.PriceMax != nil {
		if *req.PriceMax < 0 {
			return c, invalid("highest_price must not be negative")
		}
		v := decimal.NewFromFloat(*req.PriceMax)
		c.PriceMax = &v
	}
	if c.PriceMin != nil && c.PriceMax != nil && c.PriceMin.GreaterThan(*c.PriceMax) {
		return c, invalid("lowest_price must not exceed highest_price")
	}

	if req.StarsMin != nil {
		if *req.StarsMin < 1 || *req.StarsMin > 5 {
			return c, invalid("min_hotel_stars must be between 1 and 5")
		}
		c.StarsMin = req.StarsMin
	}
	if req.StarsMax != nil {
		if *req.StarsMax < 1 || *req.StarsMax > 5 {
			return c, invalid("max_hotel_stars must be between 1 and 5")
		}
		c.StarsMax = req.StarsMax
	}
	if c.StarsMin != nil && c.StarsMax != nil && *c.StarsMin > *c.StarsMax {
		return c, invalid("min_hotel_stars must not exceed max_hotel_stars")
	}

	c.Cities = normalizePlaces(req.Cities)
	c.Countries = normalizePlaces(req.Countries)
	c.RoomFacilities = normalizeNames(req.RoomFacilities)
	c.HotelFacilities = normalizeNames(req.HotelFacilities)

	if req.SortBy != nil && strings.TrimSpace(*req.SortBy) != "" {
		key := strings.ToLower(strings.TrimSpace(*req.SortBy))
		if _, ok := sortColumns[key]; !ok {
			return c, invalid("sort_by must be one of: price, stars")
		}
		c.SortBy = key
		c.SortOrder = "asc"
		if req.SortOrder != nil && strings.TrimSpace(*req.SortOrder) != "" {
			order := strings.ToLower(strings.TrimSpace(*req.SortOrder))
			if order != "asc" && order != "desc" {
				return c, invalid("sort_order must be asc or desc")
			}
			c.SortOrder = order
		}
	}

	return c, nil
}

func parseDate(raw string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, strings.TrimSpace(raw), time.UTC)
}

// normalizePlaces trims whitespace and drops empty entries, keeping the
// original casing so that place names round-trip to the address table.
func normalizePlaces(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// normalizeNames lowercases facility names so matching is case-insensitive.
func normalizeNames(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
