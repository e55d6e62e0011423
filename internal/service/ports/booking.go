package ports

import (
	"context"
	"time"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
)

// TransitionFunc mutates a locked booking and its bed (nil when the booking
// has no bed) and reports whether anything changed.
type TransitionFunc func(b *domain.Booking, bed *domain.Bed) (bool, error)

type BookingRepo interface {
	CreateMany(ctx context.Context, bookings []*domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// UpdateStatus runs fn inside one transaction holding the booking row and
	// its bed row, and persists both only when fn reports a change.
	UpdateStatus(ctx context.Context, id string, fn TransitionFunc) (*domain.Booking, error)
	RejectExpiredPending(ctx context.Context, olderThan time.Duration) ([]*domain.Booking, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Booking, error)
	HasConfirmedForBed(ctx context.Context, bedID string) (bool, error)
	// HasConfirmedForRoom reports whether any booking of the room is confirmed.
	HasConfirmedForRoom(ctx context.Context, roomID string) (bool, error)
}
