package ports

import (
	"context"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, owner *domain.User, listing *domain.Listing, bookings []*domain.Booking)
	NotifyBookingConfirmed(ctx context.Context, tenant *domain.User, listing *domain.Listing)
	NotifyBookingRejected(ctx context.Context, tenant *domain.User, listing *domain.Listing)
}

type BookingEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event domain.BookingStatusChanged) error
}
