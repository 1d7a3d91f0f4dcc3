package inventory

type AddRoomRequest struct {
	Number      string  `json:"number" validate:"required"`
	Type        string  `json:"type" validate:"required"`
	NightlyRate float64 `json:"nightly_rate" validate:"required,gt=0"`
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
