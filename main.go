package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-reservation-backend/config"
	"hotel-reservation-backend/controllers"
	"hotel-reservation-backend/queue"
	"hotel-reservation-backend/routes"
	"hotel-reservation-backend/services"
	"hotel-reservation-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	config.InitLogger()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}

	cache := config.NewRedisClient()
	if cache == nil {
		log.Println("redis unavailable; catalog caching disabled")
	}

	mailer := utils.NewMailerFromEnv()
	queue.StartMailConsumers(mailer.Send)
	publisher := queue.NewPublisher()

	authService := services.NewAuthService(db, jwtSecret)
	searchService := services.NewSearchService(db)
	reservationService := services.NewReservationService(db, publisher)
	userService := services.NewUserService(db)
	catalogService := services.NewCatalogService(db, cache)

	authController := controllers.NewAuthController(authService)
	searchController := controllers.NewSearchController(searchService)
	reservationController := controllers.NewReservationController(reservationService)
	userController := controllers.NewUserController(userService)
	catalogController := controllers.NewCatalogController(catalogService)

	router := routes.SetupRouter(
		authController,
		searchController,
		reservationController,
		userController,
		catalogController,
		jwtSecret,
	)

	addr := ":" + utils.EnvOrDefault("PORT", "8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
