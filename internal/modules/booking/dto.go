package booking

type ReserveRequest struct {
	RoomNumber   string `json:"room_number" validate:"required"`
	GuestName    string `json:"guest_name" validate:"required"`
	GuestContact string `json:"guest_contact"`
	CheckIn      string `json:"check_in" validate:"required"`
	CheckOut     string `json:"check_out" validate:"required"`
}
