package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
	"github.com/MustaliSadikot/pg-finder-ms/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// SelectBeds serves GET /api/rooms/:id/beds/select?required=N. The response
// may hold fewer beds than required when the room is short of vacancies.
func (h *Handler) SelectBeds(c *ginext.Context) {
	roomID, ok := h.pathID(c, "id", "room")
	if !ok {
		return
	}

	required, err := queryInt(c, "required", 0)
	if err != nil {
		h.handleError(c, err)
		return
	}

	sel, err := h.bookingService.SelectBeds(c.Request.Context(), roomID, required)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBedSelectionResponse(required, sel))
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := parseBookingDate(req.BookingDate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	bookings, err := h.bookingService.Create(c.Request.Context(), session, domain.CreateBookingInput{
		ListingID:    req.ListingID,
		RoomID:       req.RoomID,
		BedIDs:       req.BedIDs,
		BedsRequired: req.BedsRequired,
		BookingDate:  date,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponses(bookings))
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListMine(c.Request.Context(), session)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id", "booking")
	if !ok {
		return
	}

	details, err := h.bookingService.Get(c.Request.Context(), session, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingDetailsResponse(details))
}

func (h *Handler) UpdateBookingStatus(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id", "booking")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	to, err := domain.ParseBookingStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if err != nil {
		h.handleError(c, err)
		return
	}

	booking, err := h.bookingService.Transition(c.Request.Context(), session, id, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func parseBookingDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}

	return time.Time{}, validationErr("invalid booking_date, expected YYYY-MM-DD or RFC3339")
}

func validationErr(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, msg)
}
