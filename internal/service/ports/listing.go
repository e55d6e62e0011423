package ports

import (
	"context"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
)

type ListingRepo interface {
	Create(ctx context.Context, l *domain.Listing) error
	Update(ctx context.Context, l *domain.Listing) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context) ([]*domain.Listing, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Listing, error)
}

// ListingCache holds the full listing set used by search.
type ListingCache interface {
	GetAll(ctx context.Context) ([]*domain.Listing, bool, error)
	SetAll(ctx context.Context, listings []*domain.Listing) error
	Invalidate(ctx context.Context) error
}
