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

type RoomService struct {
	roomRepo    ports.RoomRepo
	bedRepo     ports.BedRepo
	listingRepo ports.ListingRepo
	bookingRepo ports.BookingRepo
	logger      logger.Logger
}

func NewRoomService(
	roomRepo ports.RoomRepo,
	bedRepo ports.BedRepo,
	listingRepo ports.ListingRepo,
	bookingRepo ports.BookingRepo,
	logger logger.Logger,
) *RoomService {
	return &RoomService{
		roomRepo:    roomRepo,
		bedRepo:     bedRepo,
		listingRepo: listingRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// AddRoom creates a room with beds numbered 1..TotalBeds.
func (s *RoomService) AddRoom(
	ctx context.Context,
	session domain.Session,
	listingID string,
	input domain.CreateRoomInput,
) (*domain.RoomWithBeds, error) {
	if err := s.checkListingOwner(ctx, session, listingID); err != nil {
		return nil, err
	}

	number := strings.TrimSpace(input.RoomNumber)
	if number == "" {
		return nil, fmt.Errorf("%w: room_number is required", domain.ErrValidation)
	}
	if input.TotalBeds < 0 || input.CapacityPerBed < 0 {
		return nil, fmt.Errorf("%w: bed counts must not be negative", domain.ErrValidation)
	}

	now := time.Now().UTC()
	room := &domain.Room{
		ID:             uuid.New().String(),
		ListingID:      listingID,
		RoomNumber:     number,
		TotalBeds:      max(input.TotalBeds, 1),
		CapacityPerBed: max(input.CapacityPerBed, 1),
		Availability:   true,
		CreatedAt:      now,
	}
	if input.Availability != nil {
		room.Availability = *input.Availability
	}

	beds := make([]*domain.Bed, 0, room.TotalBeds)
	for i := 1; i <= room.TotalBeds; i++ {
		beds = append(beds, &domain.Bed{
			ID:        uuid.New().String(),
			RoomID:    room.ID,
			BedNumber: i,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err := s.roomRepo.CreateWithBeds(ctx, room, beds); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.logger.Info("room added",
		logger.String("room_id", room.ID),
		logger.String("listing_id", listingID),
		logger.Int("beds", len(beds)),
	)

	res := make([]domain.Bed, 0, len(beds))
	for _, b := range beds {
		res = append(res, *b)
	}
	withBeds := domain.NewRoomWithBeds(*room, res)

	return &withBeds, nil
}

// UpdateRoom changes the number, bed capacity or availability of a room.
// Bed rows are left untouched.
func (s *RoomService) UpdateRoom(
	ctx context.Context,
	session domain.Session,
	roomID string,
	input domain.UpdateRoomInput,
) (*domain.RoomWithBeds, error) {
	room, err := s.ownedRoom(ctx, session, roomID)
	if err != nil {
		return nil, err
	}

	if input.RoomNumber != nil {
		number := strings.TrimSpace(*input.RoomNumber)
		if number == "" {
			return nil, fmt.Errorf("%w: room_number must not be empty", domain.ErrValidation)
		}
		room.RoomNumber = number
	}
	if input.CapacityPerBed != nil {
		if *input.CapacityPerBed < 1 {
			return nil, fmt.Errorf("%w: capacity_per_bed must be at least 1", domain.ErrValidation)
		}
		room.CapacityPerBed = *input.CapacityPerBed
	}
	if input.Availability != nil {
		room.Availability = *input.Availability
	}

	if err = s.roomRepo.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}

	s.logger.Info("room updated",
		logger.String("room_id", room.ID),
		logger.Bool("availability", room.Availability),
	)

	beds, err := s.bedRepo.ListByRoom(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("list beds: %w", err)
	}
	withBeds := domain.NewRoomWithBeds(*room, beds)

	return &withBeds, nil
}

// DeleteRoom removes a room together with its beds. A room with a confirmed
// booking on any bed is refused.
func (s *RoomService) DeleteRoom(ctx context.Context, session domain.Session, roomID string) error {
	if _, err := s.ownedRoom(ctx, session, roomID); err != nil {
		return err
	}

	held, err := s.bookingRepo.HasConfirmedForRoom(ctx, roomID)
	if err != nil {
		return fmt.Errorf("check room bookings: %w", err)
	}
	if held {
		return domain.ErrBedHasActiveBooking
	}

	if err = s.roomRepo.Delete(ctx, roomID); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}

	return nil
}

func (s *RoomService) ListBeds(ctx context.Context, roomID string) ([]domain.Bed, error) {
	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		return nil, err
	}
	return s.bedRepo.ListByRoom(ctx, roomID)
}

// AddBed appends a bed to a room. A zero bed number takes the next free number.
func (s *RoomService) AddBed(ctx context.Context, session domain.Session, roomID string, bedNumber int) (*domain.Bed, error) {
	if _, err := s.ownedRoom(ctx, session, roomID); err != nil {
		return nil, err
	}
	if bedNumber < 0 {
		return nil, fmt.Errorf("%w: bed_number must not be negative", domain.ErrValidation)
	}

	beds, err := s.bedRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("list beds: %w", err)
	}

	highest := 0
	for _, b := range beds {
		if b.BedNumber == bedNumber {
			return nil, fmt.Errorf("%w: bed %d already exists", domain.ErrValidation, bedNumber)
		}
		highest = max(highest, b.BedNumber)
	}
	if bedNumber == 0 {
		bedNumber = highest + 1
	}

	now := time.Now().UTC()
	bed := &domain.Bed{
		ID:        uuid.New().String(),
		RoomID:    roomID,
		BedNumber: bedNumber,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.bedRepo.Create(ctx, bed); err != nil {
		return nil, fmt.Errorf("create bed: %w", err)
	}

	return bed, nil
}

func (s *RoomService) DeleteBed(ctx context.Context, session domain.Session, bedID string) error {
	if _, err := s.ownedBed(ctx, session, bedID); err != nil {
		return err
	}

	if err := s.bedRepo.Delete(ctx, bedID); err != nil {
		return fmt.Errorf("delete bed: %w", err)
	}

	return nil
}

// ownedBed loads a bed of the caller's listing that no confirmed booking holds.
// The occupied flag of a held bed belongs to the booking lifecycle.
func (s *RoomService) ownedBed(ctx context.Context, session domain.Session, bedID string) (*domain.Bed, error) {
	bed, err := s.bedRepo.GetByID(ctx, bedID)
	if err != nil {
		return nil, fmt.Errorf("get bed: %w", err)
	}

	if _, err = s.ownedRoom(ctx, session, bed.RoomID); err != nil {
		return nil, err
	}

	held, err := s.bookingRepo.HasConfirmedForBed(ctx, bedID)
	if err != nil {
		return nil, fmt.Errorf("check bed bookings: %w", err)
	}
	if held {
		return nil, domain.ErrBedHasActiveBooking
	}

	return bed, nil
}

func (s *RoomService) ownedRoom(ctx context.Context, session domain.Session, roomID string) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	if err = s.checkListingOwner(ctx, session, room.ListingID); err != nil {
		return nil, err
	}

	return room, nil
}

func (s *RoomService) checkListingOwner(ctx context.Context, session domain.Session, listingID string) error {
	if !session.IsOwner() {
		return fmt.Errorf("%w: only owners can manage rooms", domain.ErrUnauthorized)
	}

	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return fmt.Errorf("get listing: %w", err)
	}
	if listing.OwnerID != session.UserID {
		return fmt.Errorf("%w: listing belongs to another owner", domain.ErrForbidden)
	}

	return nil
}
