package ports

import (
	"context"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
)

type RoomRepo interface {
	// CreateWithBeds inserts the room and its beds atomically.
	CreateWithBeds(ctx context.Context, room *domain.Room, beds []*domain.Bed) error
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	ListByListing(ctx context.Context, listingID string) ([]*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id string) error
}

type BedRepo interface {
	Create(ctx context.Context, bed *domain.Bed) error
	GetByID(ctx context.Context, id string) (*domain.Bed, error)
	ListByRoom(ctx context.Context, roomID string) ([]domain.Bed, error)
	Delete(ctx context.Context, id string) error
}
