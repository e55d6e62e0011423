package dto

type RegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	Role           string `json:"role" binding:"required,oneof=tenant owner"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ListingRequest struct {
	Name             string   `json:"name" binding:"required"`
	Address          string   `json:"address" binding:"required"`
	Description      string   `json:"description"`
	Price            int      `json:"price" binding:"gte=0"`
	GenderPreference string   `json:"gender_preference" binding:"omitempty,oneof=male female any"`
	Amenities        []string `json:"amenities"`
	ImageURL         string   `json:"image_url"`
	Availability     *bool    `json:"availability"`
}

type CreateRoomRequest struct {
	RoomNumber     string `json:"room_number" binding:"required"`
	TotalBeds      int    `json:"total_beds" binding:"gte=0"`
	CapacityPerBed int    `json:"capacity_per_bed" binding:"gte=0"`
	Availability   *bool  `json:"availability"`
}

// UpdateRoomRequest is a partial update. Omitted fields keep their value.
type UpdateRoomRequest struct {
	RoomNumber     *string `json:"room_number" binding:"omitempty,min=1"`
	CapacityPerBed *int    `json:"capacity_per_bed" binding:"omitempty,gt=0"`
	Availability   *bool   `json:"availability"`
}

type CreateBedRequest struct {
	BedNumber int `json:"bed_number" binding:"required,gt=0"`
}

// CreateBookingRequest accepts booking_date as RFC3339 or YYYY-MM-DD.
// An empty date books from today.
type CreateBookingRequest struct {
	ListingID    string   `json:"listing_id" binding:"required,uuid"`
	RoomID       string   `json:"room_id" binding:"required,uuid"`
	BedIDs       []string `json:"bed_ids" binding:"omitempty,dive,uuid"`
	BedsRequired int      `json:"beds_required" binding:"gte=0"`
	BookingDate  string   `json:"booking_date"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
