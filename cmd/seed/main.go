package main

import (
	"context"
	"log"
	"time"

	"hotelms/internal/database"
	"hotelms/internal/domain"
	"hotelms/internal/repository"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	db, err := database.Connect("hotel.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bills")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM sessions")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	rooms := repository.NewRoomRepository(db)
	bookings := repository.NewBookingRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Username:     "admin",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Active:       true,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal("Failed to create admin:", err)
	}
	log.Println("Admin created: admin / admin123")

	staffHash, _ := bcrypt.GenerateFromPassword([]byte("staff123"), bcrypt.DefaultCost)
	staff := &domain.User{
		Username:     "reception",
		PasswordHash: string(staffHash),
		Role:         domain.RoleStaff,
		Active:       true,
	}
	if err := users.Create(ctx, staff); err != nil {
		log.Fatal("Failed to create staff user:", err)
	}
	log.Println("Staff created: reception / staff123")

	// ================== ROOMS ==================
	log.Println("Creating rooms...")

	seedRooms := []domain.Room{
		{Number: "101", Type: domain.RoomSingle, NightlyRate: 80, Status: domain.RoomVacant},
		{Number: "102", Type: domain.RoomSingle, NightlyRate: 80, Status: domain.RoomVacant},
		{Number: "103", Type: domain.RoomDouble, NightlyRate: 120, Status: domain.RoomVacant},
		{Number: "201", Type: domain.RoomDouble, NightlyRate: 120, Status: domain.RoomVacant},
		{Number: "202", Type: domain.RoomTwin, NightlyRate: 110, Status: domain.RoomVacant},
		{Number: "203", Type: domain.RoomTwin, NightlyRate: 110, Status: domain.RoomMaintenance},
		{Number: "301", Type: domain.RoomSuite, NightlyRate: 250, Status: domain.RoomVacant},
		{Number: "302", Type: domain.RoomSuite, NightlyRate: 250, Status: domain.RoomVacant},
	}
	for i := range seedRooms {
		if err := rooms.Create(ctx, &seedRooms[i]); err != nil {
			log.Fatal("Failed to create room:", err)
		}
	}

	// ================== BOOKINGS ==================
	log.Println("Creating sample reservations...")

	today := time.Now().UTC().Truncate(24 * time.Hour)
	seedBookings := []domain.Booking{
		{
			Reference:    uuid.NewString(),
			RoomID:       seedRooms[0].ID,
			GuestName:    "Alice Morgan",
			GuestContact: "alice@example.com",
			CheckIn:      today.AddDate(0, 0, 1),
			CheckOut:     today.AddDate(0, 0, 4),
			Status:       domain.BookingReserved,
		},
		{
			Reference:    uuid.NewString(),
			RoomID:       seedRooms[2].ID,
			GuestName:    "Bob Tanaka",
			GuestContact: "+1 555 010 0199",
			CheckIn:      today.AddDate(0, 0, 2),
			CheckOut:     today.AddDate(0, 0, 5),
			Status:       domain.BookingReserved,
		},
	}
	for i := range seedBookings {
		if err := bookings.Create(ctx, &seedBookings[i]); err != nil {
			log.Fatal("Failed to create booking:", err)
		}
	}

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Admin: admin / admin123")
	log.Println("Staff: reception / staff123")
}
