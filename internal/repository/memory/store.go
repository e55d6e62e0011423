// Package memory keeps the whole catalog in process memory. It honours the
// same contracts as the PostgreSQL repositories, including the single
// transaction around a booking status change, and backs tests and the
// "memory" storage driver.
package memory

import (
	"slices"
	"sync"
	"time"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
)

type Store struct {
	mu sync.RWMutex

	users    map[string]domain.User
	listings map[string]domain.Listing
	rooms    map[string]domain.Room
	beds     map[string]domain.Bed
	bookings map[string]domain.Booking

	now func() time.Time
}

func New() *Store {
	return &Store{
		users:    make(map[string]domain.User),
		listings: make(map[string]domain.Listing),
		rooms:    make(map[string]domain.Room),
		beds:     make(map[string]domain.Bed),
		bookings: make(map[string]domain.Booking),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) Users() *UserRepo       { return &UserRepo{s: s} }
func (s *Store) Listings() *ListingRepo { return &ListingRepo{s: s} }
func (s *Store) Rooms() *RoomRepo       { return &RoomRepo{s: s} }
func (s *Store) Beds() *BedRepo         { return &BedRepo{s: s} }
func (s *Store) Bookings() *BookingRepo { return &BookingRepo{s: s} }

// deleteBedLocked removes a bed and detaches the bookings that referenced it.
func (s *Store) deleteBedLocked(id string) {
	delete(s.beds, id)
	for bid, b := range s.bookings {
		if b.BedID != nil && *b.BedID == id {
			b.BedID = nil
			s.bookings[bid] = b
		}
	}
}

func (s *Store) deleteRoomLocked(id string) {
	for bedID, bed := range s.beds {
		if bed.RoomID == id {
			s.deleteBedLocked(bedID)
		}
	}
	delete(s.rooms, id)
	for bid, b := range s.bookings {
		if b.RoomID != nil && *b.RoomID == id {
			b.RoomID = nil
			s.bookings[bid] = b
		}
	}
}

func cloneListing(l domain.Listing) *domain.Listing {
	l.Amenities = slices.Clone(l.Amenities)
	if l.Amenities == nil {
		l.Amenities = []string{}
	}
	return &l
}

func cloneBed(b domain.Bed) domain.Bed {
	if b.TenantID != nil {
		id := *b.TenantID
		b.TenantID = &id
	}
	return b
}

func cloneBooking(b domain.Booking) *domain.Booking {
	if b.RoomID != nil {
		id := *b.RoomID
		b.RoomID = &id
	}
	if b.BedID != nil {
		id := *b.BedID
		b.BedID = &id
	}
	return &b
}

func newestFirst[T any](created func(T) time.Time) func(a, b T) int {
	return func(a, b T) int {
		return created(b).Compare(created(a))
	}
}
