package dto

import (
	"time"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
)

const dateLayout = "2006-01-02"

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ListingResponse struct {
	ID               string   `json:"id"`
	OwnerID          string   `json:"owner_id"`
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	Description      string   `json:"description"`
	Price            int      `json:"price"`
	GenderPreference string   `json:"gender_preference"`
	Amenities        []string `json:"amenities"`
	ImageURL         string   `json:"image_url,omitempty"`
	Availability     bool     `json:"availability"`
	CreatedAt        string   `json:"created_at"`
}

type ListingDetailsResponse struct {
	Listing ListingResponse `json:"listing"`
	Rooms   []RoomResponse  `json:"rooms"`
}

type RoomResponse struct {
	ID             string        `json:"id"`
	ListingID      string        `json:"listing_id"`
	RoomNumber     string        `json:"room_number"`
	TotalBeds      int           `json:"total_beds"`
	CapacityPerBed int           `json:"capacity_per_bed"`
	Availability   bool          `json:"availability"`
	VacantBeds     int           `json:"vacant_beds"`
	Beds           []BedResponse `json:"beds"`
}

type BedResponse struct {
	ID         string  `json:"id"`
	RoomID     string  `json:"room_id"`
	BedNumber  int     `json:"bed_number"`
	IsOccupied bool    `json:"is_occupied"`
	TenantID   *string `json:"tenant_id,omitempty"`
}

type BedSelectionResponse struct {
	Required   int      `json:"required"`
	BedIDs     []string `json:"bed_ids"`
	BedNumbers []int    `json:"bed_numbers"`
	Complete   bool     `json:"complete"`
}

type BookingResponse struct {
	ID          string  `json:"id"`
	TenantID    string  `json:"tenant_id"`
	ListingID   string  `json:"listing_id"`
	RoomID      *string `json:"room_id,omitempty"`
	BedID       *string `json:"bed_id,omitempty"`
	Status      string  `json:"status"`
	BookingDate string  `json:"booking_date"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type BookingDetailsResponse struct {
	Booking BookingResponse  `json:"booking"`
	Listing *ListingResponse `json:"listing,omitempty"`
	Room    *RoomResponse    `json:"room,omitempty"`
	Bed     *BedResponse     `json:"bed,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           string(u.Role),
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToListingResponse(l *domain.Listing) ListingResponse {
	amenities := l.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return ListingResponse{
		ID:               l.ID,
		OwnerID:          l.OwnerID,
		Name:             l.Name,
		Address:          l.Address,
		Description:      l.Description,
		Price:            l.Price,
		GenderPreference: string(l.GenderPreference),
		Amenities:        amenities,
		ImageURL:         l.ImageURL,
		Availability:     l.Availability,
		CreatedAt:        l.CreatedAt.Format(time.RFC3339),
	}
}

func ToListingResponses(listings []*domain.Listing) []ListingResponse {
	resp := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, ToListingResponse(l))
	}
	return resp
}

func ToListingDetailsResponse(d *domain.ListingDetails) ListingDetailsResponse {
	rooms := make([]RoomResponse, 0, len(d.Rooms))
	for _, r := range d.Rooms {
		rooms = append(rooms, ToRoomResponse(&r))
	}

	return ListingDetailsResponse{
		Listing: ToListingResponse(&d.Listing),
		Rooms:   rooms,
	}
}

func ToRoomResponse(r *domain.RoomWithBeds) RoomResponse {
	return RoomResponse{
		ID:             r.Room.ID,
		ListingID:      r.Room.ListingID,
		RoomNumber:     r.Room.RoomNumber,
		TotalBeds:      r.Room.TotalBeds,
		CapacityPerBed: r.Room.CapacityPerBed,
		Availability:   r.Room.Availability,
		VacantBeds:     r.VacantBeds,
		Beds:           ToBedResponses(r.Beds),
	}
}

func ToBedResponse(b *domain.Bed) BedResponse {
	return BedResponse{
		ID:         b.ID,
		RoomID:     b.RoomID,
		BedNumber:  b.BedNumber,
		IsOccupied: b.IsOccupied,
		TenantID:   b.TenantID,
	}
}

func ToBedResponses(beds []domain.Bed) []BedResponse {
	resp := make([]BedResponse, 0, len(beds))
	for _, b := range beds {
		resp = append(resp, ToBedResponse(&b))
	}
	return resp
}

func ToBedSelectionResponse(required int, s domain.BedSelection) BedSelectionResponse {
	ids, numbers := s.BedIDs, s.BedNumbers
	if ids == nil {
		ids = []string{}
	}
	if numbers == nil {
		numbers = []int{}
	}

	return BedSelectionResponse{
		Required:   required,
		BedIDs:     ids,
		BedNumbers: numbers,
		Complete:   len(ids) == required,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		TenantID:    b.TenantID,
		ListingID:   b.ListingID,
		RoomID:      b.RoomID,
		BedID:       b.BedID,
		Status:      string(b.Status),
		BookingDate: b.BookingDate.Format(dateLayout),
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, ToBookingResponse(b))
	}
	return resp
}

func ToBookingDetailsResponse(d *domain.BookingDetails) BookingDetailsResponse {
	resp := BookingDetailsResponse{Booking: ToBookingResponse(&d.Booking)}

	if d.Listing != nil {
		l := ToListingResponse(d.Listing)
		resp.Listing = &l
	}
	if d.Room != nil {
		r := ToRoomResponse(&domain.RoomWithBeds{Room: *d.Room})
		resp.Room = &r
	}
	if d.Bed != nil {
		b := ToBedResponse(d.Bed)
		resp.Bed = &b
	}

	return resp
}
