package domain

import "time"

type RoomStatus string

const (
	RoomVacant      RoomStatus = "vacant"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

func ValidRoomStatuses() []RoomStatus {
	return []RoomStatus{RoomVacant, RoomOccupied, RoomMaintenance}
}

type RoomType string

const (
	RoomSingle RoomType = "single"
	RoomDouble RoomType = "double"
	RoomTwin   RoomType = "twin"
	RoomSuite  RoomType = "suite"
)

func ValidRoomTypes() []RoomType {
	return []RoomType{RoomSingle, RoomDouble, RoomTwin, RoomSuite}
}

type Room struct {
	ID          int64      `json:"id"`
	Number      string     `json:"number" validate:"required"`
	Type        RoomType   `json:"type" validate:"required"`
	NightlyRate float64    `json:"nightly_rate" validate:"required,gt=0"`
	Status      RoomStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
