package domain

import "time"

type Room struct {
	ID             string    `json:"id"`
	ListingID      string    `json:"listing_id"`
	RoomNumber     string    `json:"room_number"`
	TotalBeds      int       `json:"total_beds"`
	CapacityPerBed int       `json:"capacity_per_bed"`
	Availability   bool      `json:"availability"`
	CreatedAt      time.Time `json:"created_at"`
}

type Bed struct {
	ID         string    `json:"id"`
	RoomID     string    `json:"room_id"`
	BedNumber  int       `json:"bed_number"`
	IsOccupied bool      `json:"is_occupied"`
	TenantID   *string   `json:"tenant_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type RoomWithBeds struct {
	Room       Room  `json:"room"`
	Beds       []Bed `json:"beds"`
	VacantBeds int   `json:"vacant_beds"`
}

type CreateRoomInput struct {
	RoomNumber     string
	TotalBeds      int
	CapacityPerBed int
	Availability   *bool
}

// UpdateRoomInput carries the room fields an owner may change. Nil fields
// keep their stored value.
type UpdateRoomInput struct {
	RoomNumber     *string
	CapacityPerBed *int
	Availability   *bool
}

// NewRoomWithBeds counts vacant beds of a room.
func NewRoomWithBeds(room Room, beds []Bed) RoomWithBeds {
	vacant := 0
	for _, b := range beds {
		if !b.IsOccupied {
			vacant++
		}
	}
	return RoomWithBeds{Room: room, Beds: beds, VacantBeds: vacant}
}
