package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
	"github.com/MustaliSadikot/pg-finder-ms/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type ListingService struct {
	repo     ports.ListingRepo
	roomRepo ports.RoomRepo
	bedRepo  ports.BedRepo
	cache    ports.ListingCache
	logger   logger.Logger
}

func NewListingService(
	repo ports.ListingRepo,
	roomRepo ports.RoomRepo,
	bedRepo ports.BedRepo,
	cache ports.ListingCache,
	logger logger.Logger,
) *ListingService {
	return &ListingService{
		repo:     repo,
		roomRepo: roomRepo,
		bedRepo:  bedRepo,
		cache:    cache,
		logger:   logger,
	}
}

func (s *ListingService) Create(ctx context.Context, session domain.Session, input domain.ListingInput) (*domain.Listing, error) {
	if !session.IsOwner() {
		return nil, fmt.Errorf("%w: only owners can add listings", domain.ErrUnauthorized)
	}

	now := time.Now().UTC()
	listing := &domain.Listing{
		ID:           uuid.New().String(),
		OwnerID:      session.UserID,
		Availability: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := applyListingInput(listing, input); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	s.invalidate(ctx)

	return listing, nil
}

func (s *ListingService) Update(ctx context.Context, session domain.Session, id string, input domain.ListingInput) (*domain.Listing, error) {
	listing, err := s.ownedListing(ctx, session, id)
	if err != nil {
		return nil, err
	}

	if err = applyListingInput(listing, input); err != nil {
		return nil, err
	}
	listing.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, listing); err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}

	s.invalidate(ctx)

	return listing, nil
}

// Delete removes a listing; rooms, beds and bookings go with it.
func (s *ListingService) Delete(ctx context.Context, session domain.Session, id string) error {
	if _, err := s.ownedListing(ctx, session, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *ListingService) Get(ctx context.Context, id string) (*domain.ListingDetails, error) {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rooms, err := s.roomRepo.ListByListing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	details := &domain.ListingDetails{
		Listing: *listing,
		Rooms:   make([]domain.RoomWithBeds, 0, len(rooms)),
	}
	for _, r := range rooms {
		beds, err := s.bedRepo.ListByRoom(ctx, r.ID)
		if err != nil {
			return nil, fmt.Errorf("list beds: %w", err)
		}
		details.Rooms = append(details.Rooms, domain.NewRoomWithBeds(*r, beds))
	}

	return details, nil
}

// List serves the full listing set from the cache when possible.
func (s *ListingService) List(ctx context.Context) ([]*domain.Listing, error) {
	listings, ok, err := s.cache.GetAll(ctx)
	if err != nil {
		s.logger.Warn("listing cache read failed",
			logger.String("error", err.Error()),
		)
	}
	if ok {
		return listings, nil
	}

	listings, err = s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}

	if err = s.cache.SetAll(ctx, listings); err != nil {
		s.logger.Warn("listing cache write failed",
			logger.String("error", err.Error()),
		)
	}

	return listings, nil
}

func (s *ListingService) Search(ctx context.Context, filters domain.FilterOptions) ([]*domain.Listing, error) {
	listings, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	return domain.FilterListings(listings, filters), nil
}

func (s *ListingService) ListByOwner(ctx context.Context, session domain.Session) ([]*domain.Listing, error) {
	if !session.IsOwner() {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.ListByOwner(ctx, session.UserID)
}

func (s *ListingService) ownedListing(ctx context.Context, session domain.Session, id string) (*domain.Listing, error) {
	if !session.IsOwner() {
		return nil, fmt.Errorf("%w: only owners can manage listings", domain.ErrUnauthorized)
	}

	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if listing.OwnerID != session.UserID {
		return nil, fmt.Errorf("%w: listing belongs to another owner", domain.ErrForbidden)
	}

	return listing, nil
}

func (s *ListingService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("listing cache invalidation failed",
			logger.String("error", err.Error()),
		)
	}
}

func applyListingInput(l *domain.Listing, input domain.ListingInput) error {
	name := strings.TrimSpace(input.Name)
	address := strings.TrimSpace(input.Address)
	if name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if address == "" {
		return fmt.Errorf("%w: address is required", domain.ErrValidation)
	}
	if input.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	gender := input.GenderPreference
	if gender == "" {
		gender = domain.GenderAny
	}
	if !gender.IsValid() {
		return fmt.Errorf("%w: gender_preference must be male, female or any", domain.ErrValidation)
	}

	l.Name = name
	l.Address = address
	l.Description = input.Description
	l.Price = input.Price
	l.GenderPreference = gender
	l.Amenities = uniqueStrings(input.Amenities)
	l.ImageURL = input.ImageURL
	if input.Availability != nil {
		l.Availability = *input.Availability
	}

	return nil
}
