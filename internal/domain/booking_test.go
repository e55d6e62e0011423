package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusRejected, true},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusConfirmed, BookingStatusRejected, true},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusRejected, BookingStatusConfirmed, false},
		{BookingStatusRejected, BookingStatusPending, false},
		{BookingStatusCompleted, BookingStatusConfirmed, false},
		{BookingStatusCompleted, BookingStatusRejected, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, BookingStatusPending.IsTerminal())
	assert.False(t, BookingStatusConfirmed.IsTerminal())
	assert.True(t, BookingStatusRejected.IsTerminal())
	assert.True(t, BookingStatusCompleted.IsTerminal())
}

func TestParseBookingStatus(t *testing.T) {
	s, err := ParseBookingStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, BookingStatusConfirmed, s)

	_, err = ParseBookingStatus("cancelled")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRequiredRole(t *testing.T) {
	role, ok := RequiredRole(BookingStatusConfirmed)
	assert.True(t, ok)
	assert.Equal(t, RoleOwner, role)

	role, ok = RequiredRole(BookingStatusRejected)
	assert.True(t, ok)
	assert.Equal(t, RoleOwner, role)

	role, ok = RequiredRole(BookingStatusCompleted)
	assert.True(t, ok)
	assert.Equal(t, RoleTenant, role)

	_, ok = RequiredRole(BookingStatusPending)
	assert.False(t, ok)
}

func TestApplyTransition_ConfirmOccupiesBed(t *testing.T) {
	now := time.Now().UTC()
	b := &Booking{ID: "bk1", TenantID: "t1", BedID: strPtr("b1"), Status: BookingStatusPending}
	bed := &Bed{ID: "b1"}

	changed, err := ApplyTransition(b, bed, BookingStatusConfirmed, now)

	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, BookingStatusConfirmed, b.Status)
	assert.True(t, bed.IsOccupied)
	require.NotNil(t, bed.TenantID)
	assert.Equal(t, "t1", *bed.TenantID)
	assert.Equal(t, now, bed.UpdatedAt)
}

func TestApplyTransition_ConfirmThenReject(t *testing.T) {
	now := time.Now().UTC()
	b := &Booking{ID: "bk1", TenantID: "t1", BedID: strPtr("b1"), Status: BookingStatusPending}
	bed := &Bed{ID: "b1"}

	_, err := ApplyTransition(b, bed, BookingStatusConfirmed, now)
	require.NoError(t, err)
	require.True(t, bed.IsOccupied)

	changed, err := ApplyTransition(b, bed, BookingStatusRejected, now)

	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, BookingStatusRejected, b.Status)
	assert.False(t, bed.IsOccupied)
	assert.Nil(t, bed.TenantID)
}

func TestApplyTransition_CompleteReleasesBed(t *testing.T) {
	b := &Booking{TenantID: "t1", BedID: strPtr("b1"), Status: BookingStatusConfirmed}
	bed := &Bed{ID: "b1", IsOccupied: true, TenantID: strPtr("t1")}

	changed, err := ApplyTransition(b, bed, BookingStatusCompleted, time.Now())

	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, bed.IsOccupied)
	assert.Nil(t, bed.TenantID)
}

func TestApplyTransition_PendingRejectLeavesBed(t *testing.T) {
	b := &Booking{TenantID: "t1", BedID: strPtr("b1"), Status: BookingStatusPending}
	bed := &Bed{ID: "b1", IsOccupied: true, TenantID: strPtr("other")}

	changed, err := ApplyTransition(b, bed, BookingStatusRejected, time.Now())

	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, bed.IsOccupied)
	assert.Equal(t, "other", *bed.TenantID)
}

func TestApplyTransition_SameStatusIsNoop(t *testing.T) {
	b := &Booking{TenantID: "t1", BedID: strPtr("b1"), Status: BookingStatusConfirmed}
	bed := &Bed{ID: "b1", IsOccupied: true, TenantID: strPtr("t1")}

	changed, err := ApplyTransition(b, bed, BookingStatusConfirmed, time.Now())

	require.NoError(t, err)
	assert.False(t, changed)
	assert.True(t, bed.IsOccupied)
	assert.Equal(t, "t1", *bed.TenantID)
	assert.True(t, bed.UpdatedAt.IsZero())
}

func TestApplyTransition_TerminalSameStatusIsNoop(t *testing.T) {
	b := &Booking{Status: BookingStatusRejected}

	changed, err := ApplyTransition(b, nil, BookingStatusRejected, time.Now())

	require.NoError(t, err)
	assert.False(t, changed)
}

func TestApplyTransition_InvalidTransition(t *testing.T) {
	b := &Booking{TenantID: "t1", BedID: strPtr("b1"), Status: BookingStatusRejected}
	bed := &Bed{ID: "b1"}

	changed, err := ApplyTransition(b, bed, BookingStatusConfirmed, time.Now())

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.False(t, changed)
	assert.Equal(t, BookingStatusRejected, b.Status)
	assert.False(t, bed.IsOccupied)
}

func TestApplyTransition_AlreadyOccupied(t *testing.T) {
	b := &Booking{TenantID: "t1", BedID: strPtr("b1"), Status: BookingStatusPending}
	bed := &Bed{ID: "b1", IsOccupied: true, TenantID: strPtr("t2")}

	_, err := ApplyTransition(b, bed, BookingStatusConfirmed, time.Now())

	assert.ErrorIs(t, err, ErrAlreadyOccupied)
	assert.Equal(t, BookingStatusPending, b.Status)
	assert.Equal(t, "t2", *bed.TenantID)
}

func TestApplyTransition_MissingBed(t *testing.T) {
	b := &Booking{TenantID: "t1", BedID: strPtr("b1"), Status: BookingStatusPending}

	_, err := ApplyTransition(b, nil, BookingStatusConfirmed, time.Now())

	assert.ErrorIs(t, err, ErrBedNotFound)
	assert.Equal(t, BookingStatusPending, b.Status)
}

func TestApplyTransition_NoBed(t *testing.T) {
	b := &Booking{TenantID: "t1", Status: BookingStatusPending}

	changed, err := ApplyTransition(b, nil, BookingStatusConfirmed, time.Now())

	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, BookingStatusConfirmed, b.Status)
}
