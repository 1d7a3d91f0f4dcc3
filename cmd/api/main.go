package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelms/internal/config"
	"hotelms/internal/database"
	"hotelms/internal/middleware"
	"hotelms/internal/modules/auth"
	"hotelms/internal/modules/billing"
	"hotelms/internal/modules/booking"
	"hotelms/internal/modules/desk"
	"hotelms/internal/modules/inventory"
	jwtsvc "hotelms/internal/pkg/jwt"
	"hotelms/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	billRepo := repository.NewBillRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.SessionTTL)

	hub := desk.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, sessionRepo, j)
	authHandler := auth.NewHandler(authService)

	inventoryService := inventory.NewService(roomRepo, bookingRepo, hub)
	inventoryHandler := inventory.NewHandler(inventoryService)

	bookingService := booking.NewService(bookingRepo, roomRepo, hub)
	bookingHandler := booking.NewHandler(bookingService)

	billingService := billing.NewService(billRepo, bookingRepo)
	billingHandler := billing.NewHandler(billingService)

	deskHandler := desk.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j, sessionRepo))
		{
			authHandler.RegisterProtectedRoutes(protected)
			inventoryHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			billingHandler.RegisterProtectedRoutes(protected)
			deskHandler.RegisterRoutes(protected)
		}

		admin := v1.Group("/")
		admin.Use(middleware.Auth(j, sessionRepo), middleware.AdminOnly())
		{
			authHandler.RegisterAdminRoutes(admin)
			inventoryHandler.RegisterAdminRoutes(admin)
			billingHandler.RegisterAdminRoutes(admin)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
