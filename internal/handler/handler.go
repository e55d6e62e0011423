package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
	"github.com/MustaliSadikot/pg-finder-ms/internal/handler/dto"
	"github.com/MustaliSadikot/pg-finder-ms/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type ListingSvc interface {
	Create(ctx context.Context, session domain.Session, input domain.ListingInput) (*domain.Listing, error)
	Update(ctx context.Context, session domain.Session, id string, input domain.ListingInput) (*domain.Listing, error)
	Delete(ctx context.Context, session domain.Session, id string) error
	Get(ctx context.Context, id string) (*domain.ListingDetails, error)
	Search(ctx context.Context, filters domain.FilterOptions) ([]*domain.Listing, error)
	ListByOwner(ctx context.Context, session domain.Session) ([]*domain.Listing, error)
}

type RoomSvc interface {
	AddRoom(ctx context.Context, session domain.Session, listingID string, input domain.CreateRoomInput) (*domain.RoomWithBeds, error)
	UpdateRoom(ctx context.Context, session domain.Session, roomID string, input domain.UpdateRoomInput) (*domain.RoomWithBeds, error)
	DeleteRoom(ctx context.Context, session domain.Session, roomID string) error
	ListBeds(ctx context.Context, roomID string) ([]domain.Bed, error)
	AddBed(ctx context.Context, session domain.Session, roomID string, bedNumber int) (*domain.Bed, error)
	DeleteBed(ctx context.Context, session domain.Session, bedID string) error
}

type BookingSvc interface {
	SelectBeds(ctx context.Context, roomID string, required int) (domain.BedSelection, error)
	Create(ctx context.Context, session domain.Session, input domain.CreateBookingInput) ([]*domain.Booking, error)
	Transition(ctx context.Context, session domain.Session, bookingID string, to domain.BookingStatus) (*domain.Booking, error)
	Get(ctx context.Context, session domain.Session, id string) (*domain.BookingDetails, error)
	ListMine(ctx context.Context, session domain.Session) ([]*domain.Booking, error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type Handler struct {
	listingService ListingSvc
	roomService    RoomSvc
	bookingService BookingSvc
	userService    UserSvc
}

func NewHandler(listingService ListingSvc, roomService RoomSvc, bookingService BookingSvc, userService UserSvc) *Handler {
	return &Handler{
		listingService: listingService,
		roomService:    roomService,
		bookingService: bookingService,
		userService:    userService,
	}
}

// session returns the caller's session or writes 401 when the route was
// registered without the auth middleware.
func (h *Handler) session(c *ginext.Context) (domain.Session, bool) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthorized.Error()})
		return domain.Session{}, false
	}
	return s, true
}

// pathID reads a uuid path parameter and writes 400 when it is malformed.
func (h *Handler) pathID(c *ginext.Context, name, what string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrBedNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrAlreadyOccupied),
		errors.Is(err, domain.ErrBedHasActiveBooking),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrListingUnavailable),
		errors.Is(err, domain.ErrRoomUnavailable):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "service temporarily unavailable"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
