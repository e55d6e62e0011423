package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
)

type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailTaken
		}
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type ListingRepo struct{ s *Store }

func (r *ListingRepo) Create(_ context.Context, l *domain.Listing) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.listings[l.ID] = *cloneListing(*l)
	return nil
}

func (r *ListingRepo) Update(_ context.Context, l *domain.Listing) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.listings[l.ID]; !ok {
		return domain.ErrListingNotFound
	}
	r.s.listings[l.ID] = *cloneListing(*l)
	return nil
}

// Delete cascades to the listing's rooms, beds and bookings.
func (r *ListingRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.listings[id]; !ok {
		return domain.ErrListingNotFound
	}
	for roomID, room := range r.s.rooms {
		if room.ListingID == id {
			r.s.deleteRoomLocked(roomID)
		}
	}
	for bid, b := range r.s.bookings {
		if b.ListingID == id {
			delete(r.s.bookings, bid)
		}
	}
	delete(r.s.listings, id)
	return nil
}

func (r *ListingRepo) GetByID(_ context.Context, id string) (*domain.Listing, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	l, ok := r.s.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	return cloneListing(l), nil
}

func (r *ListingRepo) List(_ context.Context) ([]*domain.Listing, error) {
	return r.filter(func(*domain.Listing) bool { return true }), nil
}

func (r *ListingRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Listing, error) {
	return r.filter(func(l *domain.Listing) bool { return l.OwnerID == ownerID }), nil
}

func (r *ListingRepo) filter(keep func(*domain.Listing) bool) []*domain.Listing {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.Listing, 0, len(r.s.listings))
	for _, l := range r.s.listings {
		if c := cloneListing(l); keep(c) {
			res = append(res, c)
		}
	}
	slices.SortFunc(res, newestFirst(func(l *domain.Listing) time.Time { return l.CreatedAt }))
	return res
}

type RoomRepo struct{ s *Store }

func (r *RoomRepo) CreateWithBeds(_ context.Context, room *domain.Room, beds []*domain.Bed) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.listings[room.ListingID]; !ok {
		return domain.ErrListingNotFound
	}

	seen := make(map[int]struct{}, len(beds))
	for _, b := range beds {
		if _, dup := seen[b.BedNumber]; dup {
			return fmt.Errorf("%w: duplicate bed number", domain.ErrValidation)
		}
		seen[b.BedNumber] = struct{}{}
	}

	r.s.rooms[room.ID] = *room
	for _, b := range beds {
		r.s.beds[b.ID] = cloneBed(*b)
	}
	return nil
}

func (r *RoomRepo) GetByID(_ context.Context, id string) (*domain.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	room, ok := r.s.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return &room, nil
}

func (r *RoomRepo) ListByListing(_ context.Context, listingID string) ([]*domain.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.Room, 0)
	for _, room := range r.s.rooms {
		if room.ListingID == listingID {
			res = append(res, &room)
		}
	}
	slices.SortFunc(res, func(a, b *domain.Room) int { return strings.Compare(a.RoomNumber, b.RoomNumber) })
	return res, nil
}

func (r *RoomRepo) Update(_ context.Context, room *domain.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.rooms[room.ID]
	if !ok {
		return domain.ErrRoomNotFound
	}
	stored.RoomNumber = room.RoomNumber
	stored.CapacityPerBed = room.CapacityPerBed
	stored.Availability = room.Availability
	r.s.rooms[room.ID] = stored
	return nil
}

// Delete cascades to the room's beds.
func (r *RoomRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.rooms[id]; !ok {
		return domain.ErrRoomNotFound
	}
	r.s.deleteRoomLocked(id)
	return nil
}

type BedRepo struct{ s *Store }

func (r *BedRepo) Create(_ context.Context, bed *domain.Bed) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.rooms[bed.RoomID]; !ok {
		return domain.ErrRoomNotFound
	}
	for _, b := range r.s.beds {
		if b.RoomID == bed.RoomID && b.BedNumber == bed.BedNumber {
			return fmt.Errorf("%w: bed %d already exists", domain.ErrValidation, bed.BedNumber)
		}
	}
	r.s.beds[bed.ID] = cloneBed(*bed)
	return nil
}

func (r *BedRepo) GetByID(_ context.Context, id string) (*domain.Bed, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.beds[id]
	if !ok {
		return nil, domain.ErrBedNotFound
	}
	b = cloneBed(b)
	return &b, nil
}

func (r *BedRepo) ListByRoom(_ context.Context, roomID string) ([]domain.Bed, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]domain.Bed, 0)
	for _, b := range r.s.beds {
		if b.RoomID == roomID {
			res = append(res, cloneBed(b))
		}
	}
	slices.SortFunc(res, func(a, b domain.Bed) int { return a.BedNumber - b.BedNumber })
	return res, nil
}

func (r *BedRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.beds[id]; !ok {
		return domain.ErrBedNotFound
	}
	r.s.deleteBedLocked(id)
	return nil
}
