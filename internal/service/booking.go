package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
	"github.com/MustaliSadikot/pg-finder-ms/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	listingRepo ports.ListingRepo
	roomRepo    ports.RoomRepo
	bedRepo     ports.BedRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	publisher   ports.BookingEventPublisher
	logger      logger.Logger
	pendingTTL  time.Duration

	now func() time.Time
	rnd *rand.Rand
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	listingRepo ports.ListingRepo,
	roomRepo ports.RoomRepo,
	bedRepo ports.BedRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	publisher ports.BookingEventPublisher,
	logger logger.Logger,
	pendingTTL time.Duration,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		roomRepo:    roomRepo,
		bedRepo:     bedRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		publisher:   publisher,
		logger:      logger,
		pendingTTL:  pendingTTL,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// SelectBeds proposes vacant beds of a room for a multi-bed request. Nothing
// is reserved.
func (s *BookingService) SelectBeds(ctx context.Context, roomID string, required int) (domain.BedSelection, error) {
	if required < 1 {
		return domain.BedSelection{}, fmt.Errorf("%w: required beds must be at least 1", domain.ErrValidation)
	}

	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		return domain.BedSelection{}, fmt.Errorf("get room: %w", err)
	}

	beds, err := s.bedRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return domain.BedSelection{}, fmt.Errorf("list beds: %w", err)
	}

	return domain.SelectAvailableBeds(beds, required, s.rnd), nil
}

// Create files one pending booking per requested bed, or a single room-level
// booking when no beds are requested.
func (s *BookingService) Create(ctx context.Context, session domain.Session, input domain.CreateBookingInput) ([]*domain.Booking, error) {
	if !session.IsTenant() {
		return nil, fmt.Errorf("%w: only tenants can book", domain.ErrUnauthorized)
	}
	if input.ListingID == "" || input.RoomID == "" {
		return nil, fmt.Errorf("%w: listing_id and room_id are required", domain.ErrValidation)
	}

	bedIDs := uniqueStrings(input.BedIDs)
	if input.BedsRequired < 0 {
		return nil, fmt.Errorf("%w: beds_required must not be negative", domain.ErrValidation)
	}
	if input.BedsRequired > 0 && len(bedIDs) != input.BedsRequired {
		return nil, fmt.Errorf("%w: select %d beds, got %d", domain.ErrValidation, input.BedsRequired, len(bedIDs))
	}

	listing, err := s.listingRepo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if !listing.Availability {
		return nil, domain.ErrListingUnavailable
	}

	room, err := s.roomRepo.GetByID(ctx, input.RoomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room.ListingID != listing.ID {
		return nil, fmt.Errorf("%w: room does not belong to listing", domain.ErrValidation)
	}
	if !room.Availability {
		return nil, domain.ErrRoomUnavailable
	}

	if len(bedIDs) > 0 {
		if err = s.checkBedsVacant(ctx, room.ID, bedIDs); err != nil {
			return nil, err
		}
	}

	now := s.now()
	date := input.BookingDate
	if date.IsZero() {
		date = now
	}
	date = date.Truncate(24 * time.Hour)

	newBooking := func(bedID *string) *domain.Booking {
		roomID := room.ID
		return &domain.Booking{
			ID:          uuid.New().String(),
			TenantID:    session.UserID,
			ListingID:   listing.ID,
			RoomID:      &roomID,
			BedID:       bedID,
			Status:      domain.BookingStatusPending,
			BookingDate: date,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	bookings := make([]*domain.Booking, 0, max(len(bedIDs), 1))
	if len(bedIDs) == 0 {
		bookings = append(bookings, newBooking(nil))
	}
	for _, id := range bedIDs {
		bedID := id
		bookings = append(bookings, newBooking(&bedID))
	}

	if err = s.bookingRepo.CreateMany(ctx, bookings); err != nil {
		return nil, fmt.Errorf("create bookings: %w", err)
	}

	s.logger.Info("bookings requested",
		logger.String("tenant_id", session.UserID),
		logger.String("listing_id", listing.ID),
		logger.String("room_id", room.ID),
		logger.Int("count", len(bookings)),
	)

	go s.notifyCreated(context.WithoutCancel(ctx), listing, bookings)

	return bookings, nil
}

func (s *BookingService) checkBedsVacant(ctx context.Context, roomID string, bedIDs []string) error {
	beds, err := s.bedRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return fmt.Errorf("list beds: %w", err)
	}

	byID := make(map[string]domain.Bed, len(beds))
	for _, b := range beds {
		byID[b.ID] = b
	}

	for _, id := range bedIDs {
		bed, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: bed %s does not belong to room", domain.ErrValidation, id)
		}
		if bed.IsOccupied {
			return fmt.Errorf("bed %d: %w", bed.BedNumber, domain.ErrAlreadyOccupied)
		}
	}

	return nil
}

// Transition moves a booking to status to and reconciles its bed in the same
// store transaction. Requesting the current status is a no-op.
func (s *BookingService) Transition(
	ctx context.Context,
	session domain.Session,
	bookingID string,
	to domain.BookingStatus,
) (*domain.Booking, error) {
	if !to.IsValid() {
		return nil, fmt.Errorf("%w: unknown booking status %q", domain.ErrValidation, to)
	}
	if role, ok := domain.RequiredRole(to); ok && session.Role != role {
		return nil, fmt.Errorf("%w: %s cannot move a booking to %s", domain.ErrUnauthorized, session.Role, to)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	listing, err := s.authorize(ctx, session, booking)
	if err != nil {
		return nil, err
	}

	var (
		from    domain.BookingStatus
		changed bool
	)
	updated, err := s.bookingRepo.UpdateStatus(ctx, bookingID, func(b *domain.Booking, bed *domain.Bed) (bool, error) {
		from = b.Status
		var applyErr error
		changed, applyErr = domain.ApplyTransition(b, bed, to, s.now())
		return changed, applyErr
	})
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	if !changed {
		return updated, nil
	}

	s.logger.Info("booking status changed",
		logger.String("booking_id", updated.ID),
		logger.String("from", string(from)),
		logger.String("to", string(to)),
		logger.String("actor_id", session.UserID),
	)

	s.publish(ctx, domain.BookingStatusChanged{
		BookingID: updated.ID,
		TenantID:  updated.TenantID,
		ListingID: updated.ListingID,
		BedID:     updated.BedID,
		From:      from,
		To:        to,
		ChangedAt: updated.UpdatedAt,
	})

	if to == domain.BookingStatusConfirmed || to == domain.BookingStatusRejected {
		go s.notifyTenant(context.WithoutCancel(ctx), updated, listing)
	}

	return updated, nil
}

// authorize checks that an owner owns the booking's listing and that a tenant
// is the booking's tenant.
func (s *BookingService) authorize(ctx context.Context, session domain.Session, b *domain.Booking) (*domain.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, b.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	switch session.Role {
	case domain.RoleOwner:
		if listing.OwnerID != session.UserID {
			return nil, fmt.Errorf("%w: listing belongs to another owner", domain.ErrForbidden)
		}
	case domain.RoleTenant:
		if b.TenantID != session.UserID {
			return nil, fmt.Errorf("%w: booking belongs to another tenant", domain.ErrForbidden)
		}
	default:
		return nil, domain.ErrUnauthorized
	}

	return listing, nil
}

func (s *BookingService) Get(ctx context.Context, session domain.Session, id string) (*domain.BookingDetails, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	listing, err := s.authorize(ctx, session, booking)
	if err != nil {
		return nil, err
	}

	details := &domain.BookingDetails{Booking: *booking, Listing: listing}

	if booking.RoomID != nil {
		room, err := s.roomRepo.GetByID(ctx, *booking.RoomID)
		if err != nil && !errors.Is(err, domain.ErrRoomNotFound) {
			return nil, fmt.Errorf("get room: %w", err)
		}
		details.Room = room
	}

	if booking.BedID != nil {
		bed, err := s.bedRepo.GetByID(ctx, *booking.BedID)
		if err != nil && !errors.Is(err, domain.ErrBedNotFound) {
			return nil, fmt.Errorf("get bed: %w", err)
		}
		details.Bed = bed
	}

	return details, nil
}

// ListMine returns a tenant's own bookings, or every booking on an owner's listings.
func (s *BookingService) ListMine(ctx context.Context, session domain.Session) ([]*domain.Booking, error) {
	switch session.Role {
	case domain.RoleTenant:
		return s.bookingRepo.ListByTenant(ctx, session.UserID)
	case domain.RoleOwner:
		return s.bookingRepo.ListByOwner(ctx, session.UserID)
	default:
		return nil, domain.ErrUnauthorized
	}
}

// RejectExpired rejects pending bookings older than the pending TTL.
func (s *BookingService) RejectExpired(ctx context.Context) ([]*domain.Booking, error) {
	if s.pendingTTL <= 0 {
		return nil, nil
	}

	rejected, err := s.bookingRepo.RejectExpiredPending(ctx, s.pendingTTL)
	if err != nil {
		return nil, fmt.Errorf("reject expired: %w", err)
	}

	if len(rejected) > 0 {
		s.logger.Info("expired bookings rejected",
			logger.Int("count", len(rejected)),
		)

		for _, b := range rejected {
			s.publish(ctx, domain.BookingStatusChanged{
				BookingID: b.ID,
				TenantID:  b.TenantID,
				ListingID: b.ListingID,
				BedID:     b.BedID,
				From:      domain.BookingStatusPending,
				To:        b.Status,
				ChangedAt: b.UpdatedAt,
			})
		}

		go s.notifyRejected(context.WithoutCancel(ctx), rejected)
	}

	return rejected, nil
}

// publish reports a committed change. A failed publish is logged and does not
// undo the transition. The event outlives the caller's request.
func (s *BookingService) publish(ctx context.Context, event domain.BookingStatusChanged) {
	if err := s.publisher.PublishStatusChanged(context.WithoutCancel(ctx), event); err != nil {
		s.logger.Error("failed to publish booking status change",
			logger.String("booking_id", event.BookingID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *BookingService) notifyCreated(ctx context.Context, listing *domain.Listing, bookings []*domain.Booking) {
	owner, err := s.userRepo.GetByID(ctx, listing.OwnerID)
	if err != nil {
		s.logger.Error("failed to get owner for notification",
			logger.String("owner_id", listing.OwnerID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyBookingCreated(ctx, owner, listing, bookings)
}

func (s *BookingService) notifyTenant(ctx context.Context, b *domain.Booking, listing *domain.Listing) {
	tenant, err := s.userRepo.GetByID(ctx, b.TenantID)
	if err != nil {
		s.logger.Error("failed to get tenant for notification",
			logger.String("tenant_id", b.TenantID),
			logger.String("error", err.Error()),
		)
		return
	}

	if b.Status == domain.BookingStatusConfirmed {
		s.notifier.NotifyBookingConfirmed(ctx, tenant, listing)
		return
	}
	s.notifier.NotifyBookingRejected(ctx, tenant, listing)
}

func (s *BookingService) notifyRejected(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		listing, err := s.listingRepo.GetByID(ctx, b.ListingID)
		if err != nil {
			s.logger.Error("failed to get listing for reject notification",
				logger.String("listing_id", b.ListingID),
			)
			continue
		}

		s.notifyTenant(ctx, b, listing)
	}
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
