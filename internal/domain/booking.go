package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCompleted BookingStatus = "completed"
)

// bookingTransitions is the booking lifecycle. Rejected and completed are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusRejected},
	BookingStatusConfirmed: {BookingStatusRejected, BookingStatusCompleted},
	BookingStatusRejected:  {},
	BookingStatusCompleted: {},
}

func (s BookingStatus) IsValid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

func (s BookingStatus) CanTransitionTo(to BookingStatus) bool {
	for _, t := range bookingTransitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: unknown booking status %q", ErrValidation, s)
	}
	return status, nil
}

// RequiredRole returns the role allowed to request a move into status to.
// Owners approve or reject, tenants leave. Pending is never requested.
func RequiredRole(to BookingStatus) (Role, bool) {
	switch to {
	case BookingStatusConfirmed, BookingStatusRejected:
		return RoleOwner, true
	case BookingStatusCompleted:
		return RoleTenant, true
	default:
		return "", false
	}
}

type Booking struct {
	ID          string        `json:"id"`
	TenantID    string        `json:"tenant_id"`
	ListingID   string        `json:"listing_id"`
	RoomID      *string       `json:"room_id"`
	BedID       *string       `json:"bed_id"`
	Status      BookingStatus `json:"status"`
	BookingDate time.Time     `json:"booking_date"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type BookingDetails struct {
	Booking Booking  `json:"booking"`
	Listing *Listing `json:"listing,omitempty"`
	Room    *Room    `json:"room,omitempty"`
	Bed     *Bed     `json:"bed,omitempty"`
}

type CreateBookingInput struct {
	ListingID    string
	RoomID       string
	BedIDs       []string
	BedsRequired int
	BookingDate  time.Time
}

// BookingStatusChanged is emitted after a committed status transition.
type BookingStatusChanged struct {
	BookingID string        `json:"booking_id"`
	TenantID  string        `json:"tenant_id"`
	ListingID string        `json:"listing_id"`
	BedID     *string       `json:"bed_id,omitempty"`
	From      BookingStatus `json:"from"`
	To        BookingStatus `json:"to"`
	ChangedAt time.Time     `json:"changed_at"`
}

// ApplyTransition moves b to status to and reconciles the referenced bed.
//
// bed must be the row referenced by b.BedID (nil when the booking has no bed).
// A request for the current status is a no-op and reports changed=false. On
// error neither b nor bed is modified.
func ApplyTransition(b *Booking, bed *Bed, to BookingStatus, now time.Time) (bool, error) {
	if b.Status == to {
		return false, nil
	}
	if !b.Status.CanTransitionTo(to) {
		return false, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, to)
	}
	if b.BedID != nil && bed == nil {
		return false, ErrBedNotFound
	}

	if bed != nil {
		switch {
		case b.Status == BookingStatusPending && to == BookingStatusConfirmed:
			if bed.IsOccupied {
				return false, ErrAlreadyOccupied
			}
			tenantID := b.TenantID
			bed.IsOccupied = true
			bed.TenantID = &tenantID
			bed.UpdatedAt = now
		case b.Status == BookingStatusConfirmed:
			// confirmed -> rejected | completed
			bed.IsOccupied = false
			bed.TenantID = nil
			bed.UpdatedAt = now
		}
	}

	b.Status = to
	b.UpdatedAt = now

	return true, nil
}
