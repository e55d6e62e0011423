package memory

import (
	"context"
	"slices"
	"time"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
	"github.com/MustaliSadikot/pg-finder-ms/internal/service/ports"
)

type BookingRepo struct{ s *Store }

func (r *BookingRepo) CreateMany(_ context.Context, bookings []*domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, b := range bookings {
		if _, ok := r.s.listings[b.ListingID]; !ok {
			return domain.ErrListingNotFound
		}
	}
	for _, b := range bookings {
		r.s.bookings[b.ID] = *cloneBooking(*b)
	}
	return nil
}

func (r *BookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return cloneBooking(b), nil
}

// UpdateStatus runs fn on copies under the write lock and stores them only
// when fn succeeds with a change.
func (r *BookingRepo) UpdateStatus(_ context.Context, id string, fn ports.TransitionFunc) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	b := cloneBooking(stored)

	var bed *domain.Bed
	if b.BedID != nil {
		if row, ok := r.s.beds[*b.BedID]; ok {
			c := cloneBed(row)
			bed = &c
		}
	}

	changed, err := fn(b, bed)
	if err != nil {
		return nil, err
	}
	if !changed {
		return b, nil
	}

	if bed != nil {
		r.s.beds[bed.ID] = cloneBed(*bed)
	}
	r.s.bookings[b.ID] = *cloneBooking(*b)

	return b, nil
}

func (r *BookingRepo) RejectExpiredPending(_ context.Context, olderThan time.Duration) ([]*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	res := make([]*domain.Booking, 0)
	for id, b := range r.s.bookings {
		if b.Status != domain.BookingStatusPending || now.Sub(b.CreatedAt) <= olderThan {
			continue
		}
		b.Status = domain.BookingStatusRejected
		b.UpdatedAt = now
		r.s.bookings[id] = b
		res = append(res, cloneBooking(b))
	}
	return res, nil
}

func (r *BookingRepo) ListByTenant(_ context.Context, tenantID string) ([]*domain.Booking, error) {
	return r.filter(func(b domain.Booking) bool { return b.TenantID == tenantID }), nil
}

func (r *BookingRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Booking, error) {
	return r.filter(func(b domain.Booking) bool {
		l, ok := r.s.listings[b.ListingID]
		return ok && l.OwnerID == ownerID
	}), nil
}

func (r *BookingRepo) HasConfirmedForBed(_ context.Context, bedID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, b := range r.s.bookings {
		if b.Status == domain.BookingStatusConfirmed && b.BedID != nil && *b.BedID == bedID {
			return true, nil
		}
	}
	return false, nil
}

func (r *BookingRepo) HasConfirmedForRoom(_ context.Context, roomID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, b := range r.s.bookings {
		if b.Status == domain.BookingStatusConfirmed && b.RoomID != nil && *b.RoomID == roomID {
			return true, nil
		}
	}
	return false, nil
}

func (r *BookingRepo) filter(keep func(domain.Booking) bool) []*domain.Booking {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.Booking, 0)
	for _, b := range r.s.bookings {
		if keep(b) {
			res = append(res, cloneBooking(b))
		}
	}
	slices.SortFunc(res, newestFirst(func(b *domain.Booking) time.Time { return b.CreatedAt }))
	return res
}
