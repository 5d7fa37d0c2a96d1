package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hotel-reservation-backend/models"
)

type searchFixture struct {
	db   *gorm.DB
	svc  *SearchService
	user *models.User

	roomA *models.Room // Warsaw PL 4 stars, cap 2, 100/night, wifi+tv
	roomB *models.Room // Warsaw PL 4 stars, cap 4, 200/night, wifi
	roomC *models.Room // Gdansk PL 5 stars, cap 2, 300/night, wifi+tv+minibar
	roomD *models.Room // Munich DE 3 stars, cap 2, 50/night
}

func newSearchFixture(t *testing.T) *searchFixture {
	t.Helper()
	db := newTestDB(t)

	wifi := createRoomFacility(t, db, "wifi")
	tv := createRoomFacility(t, db, "tv")
	minibar := createRoomFacility(t, db, "minibar")
	pool := createHotelFacility(t, db, "pool")
	gym := createHotelFacility(t, db, "gym")
	parking := createHotelFacility(t, db, "parking")

	warsaw := createHotel(t, db, "Hotel Polonia", "Warsaw", "PL", 4)
	gdansk := createHotel(t, db, "Baltic Breeze", "Gdansk", "PL", 5)
	munich := createHotel(t, db, "Alpenhof", "Munich", "DE", 3)
	attachHotelFacilities(t, db, warsaw, pool, parking)
	attachHotelFacilities(t, db, gdansk, pool, gym)
	attachHotelFacilities(t, db, munich, parking)

	f := &searchFixture{
		db:    db,
		svc:   NewSearchService(db),
		user:  createUser(t, db, "guest@example.com"),
		roomA: createRoom(t, db, warsaw, 2, "100.00"),
		roomB: createRoom(t, db, warsaw, 4, "200.00"),
		roomC: createRoom(t, db, gdansk, 2, "300.00"),
		roomD: createRoom(t, db, munich, 2, "50.00"),
	}
	attachRoomFacilities(t, db, f.roomA, wifi, tv)
	attachRoomFacilities(t, db, f.roomB, wifi)
	attachRoomFacilities(t, db, f.roomC, wifi, tv, minibar)
	return f
}

func createRoomFacility(t *testing.T, db *gorm.DB, name string) *models.RoomFacility {
	t.Helper()
	facility := models.RoomFacility{FacilityName: name}
	require.NoError(t, db.Create(&facility).Error)
	return &facility
}

func createHotelFacility(t *testing.T, db *gorm.DB, name string) *models.HotelFacility {
	t.Helper()
	facility := models.HotelFacility{FacilityName: name}
	require.NoError(t, db.Create(&facility).Error)
	return &facility
}

func attachRoomFacilities(t *testing.T, db *gorm.DB, room *models.Room, facilities ...*models.RoomFacility) {
	t.Helper()
	require.NoError(t, db.Model(room).Association("Facilities").Append(facilities))
}

func attachHotelFacilities(t *testing.T, db *gorm.DB, hotel *models.Hotel, facilities ...*models.HotelFacility) {
	t.Helper()
	require.NoError(t, db.Model(hotel).Association("Facilities").Append(facilities))
}

func (f *searchFixture) search(t *testing.T, mutate func(*SearchRequest)) []RoomResult {
	t.Helper()
	req := validSearchRequest()
	if mutate != nil {
		mutate(&req)
	}
	criteria, err := BuildSearchCriteria(req)
	require.NoError(t, err)
	results, err := f.svc.Search(context.Background(), criteria)
	require.NoError(t, err)
	return results
}

func roomIDs(results []RoomResult) []uint {
	ids := make([]uint, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.IDRoom)
	}
	return ids
}

func TestSearchBaseline(t *testing.T) {
	f := newSearchFixture(t)

	results := f.search(t, nil)
	assert.Equal(t, []uint{f.roomA.ID, f.roomB.ID, f.roomC.ID, f.roomD.ID}, roomIDs(results))

	first := results[0]
	assert.Equal(t, "Hotel Polonia", first.HotelName)
	assert.Equal(t, "Warsaw", first.City)
	assert.Equal(t, "PL", first.Country)
	assert.Equal(t, 4, first.HotelStars)
	assert.Equal(t, 2, first.Capacity)
	assert.InDelta(t, 100.0, first.PricePerNight, 0.001)
	// 9 nights at 100/night
	assert.InDelta(t, 900.0, first.TotalPrice, 0.001)
}

func TestSearchCapacityFilter(t *testing.T) {
	f := newSearchFixture(t)
	results := f.search(t, func(req *SearchRequest) { req.Guests = intPtr(3) })
	assert.Equal(t, []uint{f.roomB.ID}, roomIDs(results))
}

func TestSearchTotalPriceBounds(t *testing.T) {
	f := newSearchFixture(t)

	results := f.search(t, func(req *SearchRequest) { req.PriceMax = floatPtr(1000) })
	assert.Equal(t, []uint{f.roomA.ID, f.roomD.ID}, roomIDs(results))

	results = f.search(t, func(req *SearchRequest) {
		req.PriceMin = floatPtr(900)
		req.PriceMax = floatPtr(900)
	})
	assert.Equal(t, []uint{f.roomA.ID}, roomIDs(results))
}

func TestSearchExcludesConflictingRooms(t *testing.T) {
	f := newSearchFixture(t)
	res := createReservation(t, f.db, f.roomA, f.user, "2100-01-08", "2100-01-12", models.ReservationStatusActive)

	results := f.search(t, nil)
	assert.NotContains(t, roomIDs(results), f.roomA.ID)

	// A stay ending the night the other one starts still conflicts.
	results = f.search(t, func(req *SearchRequest) {
		req.StartDate = strPtr("2100-01-05")
		req.EndDate = strPtr("2100-01-08")
	})
	assert.NotContains(t, roomIDs(results), f.roomA.ID)

	// Disjoint dates see the room again.
	results = f.search(t, func(req *SearchRequest) {
		req.StartDate = strPtr("2100-01-13")
		req.EndDate = strPtr("2100-01-20")
	})
	assert.Contains(t, roomIDs(results), f.roomA.ID)

	// Cancelling frees the original dates.
	require.NoError(t, f.db.Model(res).Update("reservation_status", models.ReservationStatusCancelled).Error)
	results = f.search(t, nil)
	assert.Contains(t, roomIDs(results), f.roomA.ID)
}

func TestSearchFacilityFilters(t *testing.T) {
	f := newSearchFixture(t)

	results := f.search(t, func(req *SearchRequest) {
		req.RoomFacilities = []string{"WiFi", "TV"}
	})
	assert.Equal(t, []uint{f.roomA.ID, f.roomC.ID}, roomIDs(results))

	results = f.search(t, func(req *SearchRequest) {
		req.RoomFacilities = []string{"wifi", "tv"}
		req.HotelFacilities = []string{"pool", "gym"}
	})
	assert.Equal(t, []uint{f.roomC.ID}, roomIDs(results))

	results = f.search(t, func(req *SearchRequest) {
		req.RoomFacilities = []string{"sauna"}
	})
	assert.Empty(t, results)
}

func TestSearchPlaceFilters(t *testing.T) {
	f := newSearchFixture(t)

	t.Run("city only", func(t *testing.T) {
		results := f.search(t, func(req *SearchRequest) { req.Cities = []string{"Warsaw"} })
		assert.Equal(t, []uint{f.roomA.ID, f.roomB.ID}, roomIDs(results))
	})

	t.Run("country only", func(t *testing.T) {
		results := f.search(t, func(req *SearchRequest) { req.Countries = []string{"PL"} })
		assert.Equal(t, []uint{f.roomA.ID, f.roomB.ID, f.roomC.ID}, roomIDs(results))
	})

	t.Run("city narrows its own country", func(t *testing.T) {
		results := f.search(t, func(req *SearchRequest) {
			req.Cities = []string{"Warsaw"}
			req.Countries = []string{"PL"}
		})
		assert.Equal(t, []uint{f.roomA.ID, f.roomB.ID}, roomIDs(results))
	})

	t.Run("foreign country still widens", func(t *testing.T) {
		results := f.search(t, func(req *SearchRequest) {
			req.Cities = []string{"Warsaw"}
			req.Countries = []string{"DE"}
		})
		assert.Equal(t, []uint{f.roomA.ID, f.roomB.ID, f.roomD.ID}, roomIDs(results))
	})
}

func TestSearchStarBounds(t *testing.T) {
	f := newSearchFixture(t)
	results := f.search(t, func(req *SearchRequest) { req.StarsMin = intPtr(4) })
	assert.Equal(t, []uint{f.roomA.ID, f.roomB.ID, f.roomC.ID}, roomIDs(results))

	results = f.search(t, func(req *SearchRequest) {
		req.StarsMin = intPtr(3)
		req.StarsMax = intPtr(4)
	})
	assert.Equal(t, []uint{f.roomA.ID, f.roomB.ID, f.roomD.ID}, roomIDs(results))
}

func TestSearchSorting(t *testing.T) {
	f := newSearchFixture(t)

	results := f.search(t, func(req *SearchRequest) {
		req.SortBy = strPtr("price")
		req.SortOrder = strPtr("desc")
	})
	assert.Equal(t, []uint{f.roomC.ID, f.roomB.ID, f.roomA.ID, f.roomD.ID}, roomIDs(results))

	results = f.search(t, func(req *SearchRequest) { req.SortBy = strPtr("stars") })
	// Ties on stars fall back to room id.
	assert.Equal(t, []uint{f.roomD.ID, f.roomA.ID, f.roomB.ID, f.roomC.ID}, roomIDs(results))
}

func TestSearchNoResults(t *testing.T) {
	f := newSearchFixture(t)
	results := f.search(t, func(req *SearchRequest) { req.Guests = intPtr(10) })
	assert.Empty(t, results)
}
