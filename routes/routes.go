package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-reservation-backend/controllers"
	"hotel-reservation-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto the HTTP surface. Paths are
// root-level; the reservation and account endpoints sit behind the JWT
// middleware.
func SetupRouter(
	ac *controllers.AuthController,
	sc *controllers.SearchController,
	rc *controllers.ReservationController,
	uc *controllers.UserController,
	cc *controllers.CatalogController,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/register", ac.Register)
	r.POST("/login", ac.Login)

	r.POST("/search_free_rooms", sc.SearchFreeRooms)

	r.GET("/hotel/:id", cc.GetHotel)
	r.GET("/room/:id", cc.GetRoom)
	r.GET("/countries", cc.GetCountries)
	r.GET("/cities", cc.GetCities)
	r.GET("/room_facilities", cc.GetRoomFacilities)
	r.GET("/hotel_facilities", cc.GetHotelFacilities)
	r.GET("/hotel_images/:id", cc.GetHotelImages)

	authorized := r.Group("", middleware.RequireAuth(jwtSecret))
	{
		authorized.POST("/post_reservation", rc.PostReservation)
		authorized.POST("/post_cancellation", rc.PostCancellation)

		authorized.GET("/user/:id", uc.GetUser)
		authorized.PUT("/user/:id/password", uc.ChangePassword)
		authorized.DELETE("/user/:id", uc.DeleteUser)
		authorized.GET("/user/:id/reservations", uc.GetUserReservations)
	}

	return r
}
