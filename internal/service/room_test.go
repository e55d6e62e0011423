package service

import (
	"context"
	"testing"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
	"github.com/MustaliSadikot/pg-finder-ms/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type roomMocks struct {
	rooms    *mocks.MockRoomRepo
	beds     *mocks.MockBedRepo
	listings *mocks.MockListingRepo
	bookings *mocks.MockBookingRepo
}

func newRoomService(t *testing.T) (*RoomService, roomMocks) {
	t.Helper()
	m := roomMocks{
		rooms:    mocks.NewMockRoomRepo(t),
		beds:     mocks.NewMockBedRepo(t),
		listings: mocks.NewMockListingRepo(t),
		bookings: mocks.NewMockBookingRepo(t),
	}
	return NewRoomService(m.rooms, m.beds, m.listings, m.bookings, newTestLogger(t)), m
}

func TestRoomService_AddRoom_NumbersBeds(t *testing.T) {
	svc, m := newRoomService(t)

	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.rooms.EXPECT().CreateWithBeds(mock.Anything, mock.Anything, mock.MatchedBy(func(beds []*domain.Bed) bool {
		return len(beds) == 3
	})).Return(nil)

	room, err := svc.AddRoom(context.Background(), owner, "l1", domain.CreateRoomInput{RoomNumber: "101", TotalBeds: 3})

	require.NoError(t, err)
	assert.Equal(t, 3, room.Room.TotalBeds)
	assert.Equal(t, 1, room.Room.CapacityPerBed)
	assert.Equal(t, 3, room.VacantBeds)
	for i, b := range room.Beds {
		assert.Equal(t, i+1, b.BedNumber)
		assert.Equal(t, room.Room.ID, b.RoomID)
		assert.False(t, b.IsOccupied)
	}
}

func TestRoomService_AddRoom_DefaultsToOneBed(t *testing.T) {
	svc, m := newRoomService(t)

	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.rooms.EXPECT().CreateWithBeds(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	room, err := svc.AddRoom(context.Background(), owner, "l1", domain.CreateRoomInput{RoomNumber: "G1"})

	require.NoError(t, err)
	assert.Len(t, room.Beds, 1)
}

func TestRoomService_AddRoom_NotOwner(t *testing.T) {
	svc, m := newRoomService(t)

	_, err := svc.AddRoom(context.Background(), tenant, "l1", domain.CreateRoomInput{RoomNumber: "101"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	_, err = svc.AddRoom(context.Background(), domain.Session{UserID: "o2", Role: domain.RoleOwner}, "l1",
		domain.CreateRoomInput{RoomNumber: "101"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRoomService_AddRoom_MissingNumber(t *testing.T) {
	svc, m := newRoomService(t)

	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)

	_, err := svc.AddRoom(context.Background(), owner, "l1", domain.CreateRoomInput{RoomNumber: " "})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRoomService_DeleteRoom(t *testing.T) {
	svc, m := newRoomService(t)

	m.rooms.EXPECT().GetByID(mock.Anything, "r1").Return(testRoom(), nil)
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.bookings.EXPECT().HasConfirmedForRoom(mock.Anything, "r1").Return(false, nil)
	m.rooms.EXPECT().Delete(mock.Anything, "r1").Return(nil)

	require.NoError(t, svc.DeleteRoom(context.Background(), owner, "r1"))
}

func TestRoomService_DeleteRoom_HeldByConfirmedBooking(t *testing.T) {
	svc, m := newRoomService(t)

	m.rooms.EXPECT().GetByID(mock.Anything, "r1").Return(testRoom(), nil)
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.bookings.EXPECT().HasConfirmedForRoom(mock.Anything, "r1").Return(true, nil)

	err := svc.DeleteRoom(context.Background(), owner, "r1")

	assert.ErrorIs(t, err, domain.ErrBedHasActiveBooking)
	m.rooms.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRoomService_UpdateRoom_ToggleAvailability(t *testing.T) {
	svc, m := newRoomService(t)

	closed := false
	m.rooms.EXPECT().GetByID(mock.Anything, "r1").Return(testRoom(), nil)
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.rooms.EXPECT().Update(mock.Anything, mock.MatchedBy(func(r *domain.Room) bool {
		return r.ID == "r1" && !r.Availability && r.RoomNumber == "101"
	})).Return(nil)
	m.beds.EXPECT().ListByRoom(mock.Anything, "r1").Return(testBeds(), nil)

	room, err := svc.UpdateRoom(context.Background(), owner, "r1", domain.UpdateRoomInput{Availability: &closed})

	require.NoError(t, err)
	assert.False(t, room.Room.Availability)
	assert.Len(t, room.Beds, 3)
	assert.Equal(t, 2, room.VacantBeds)
}

func TestRoomService_UpdateRoom_Fields(t *testing.T) {
	svc, m := newRoomService(t)

	number, capacity := " 102 ", 2
	m.rooms.EXPECT().GetByID(mock.Anything, "r1").Return(testRoom(), nil)
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.rooms.EXPECT().Update(mock.Anything, mock.MatchedBy(func(r *domain.Room) bool {
		return r.RoomNumber == "102" && r.CapacityPerBed == 2 && r.Availability
	})).Return(nil)
	m.beds.EXPECT().ListByRoom(mock.Anything, "r1").Return(nil, nil)

	room, err := svc.UpdateRoom(context.Background(), owner, "r1",
		domain.UpdateRoomInput{RoomNumber: &number, CapacityPerBed: &capacity})

	require.NoError(t, err)
	assert.Equal(t, "102", room.Room.RoomNumber)
}

func TestRoomService_UpdateRoom_Invalid(t *testing.T) {
	svc, m := newRoomService(t)

	blank, zero := "  ", 0
	m.rooms.EXPECT().GetByID(mock.Anything, "r1").Return(testRoom(), nil)
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)

	_, err := svc.UpdateRoom(context.Background(), owner, "r1", domain.UpdateRoomInput{RoomNumber: &blank})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.UpdateRoom(context.Background(), owner, "r1", domain.UpdateRoomInput{CapacityPerBed: &zero})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRoomService_UpdateRoom_NotOwner(t *testing.T) {
	svc, m := newRoomService(t)

	open := true
	m.rooms.EXPECT().GetByID(mock.Anything, "r1").Return(testRoom(), nil)

	_, err := svc.UpdateRoom(context.Background(), tenant, "r1", domain.UpdateRoomInput{Availability: &open})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	_, err = svc.UpdateRoom(context.Background(), domain.Session{UserID: "o2", Role: domain.RoleOwner}, "r1",
		domain.UpdateRoomInput{Availability: &open})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRoomService_ListBeds_RoomNotFound(t *testing.T) {
	svc, m := newRoomService(t)

	m.rooms.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRoomNotFound)

	_, err := svc.ListBeds(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestRoomService_AddBed_NextNumber(t *testing.T) {
	svc, m := newRoomService(t)

	m.rooms.EXPECT().GetByID(mock.Anything, "r1").Return(testRoom(), nil)
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.beds.EXPECT().ListByRoom(mock.Anything, "r1").Return(testBeds(), nil)
	m.beds.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	bed, err := svc.AddBed(context.Background(), owner, "r1", 0)

	require.NoError(t, err)
	assert.Equal(t, 4, bed.BedNumber)
	assert.False(t, bed.IsOccupied)
}

func TestRoomService_AddBed_DuplicateNumber(t *testing.T) {
	svc, m := newRoomService(t)

	m.rooms.EXPECT().GetByID(mock.Anything, "r1").Return(testRoom(), nil)
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.beds.EXPECT().ListByRoom(mock.Anything, "r1").Return(testBeds(), nil)

	_, err := svc.AddBed(context.Background(), owner, "r1", 2)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRoomService_DeleteBed_HeldByConfirmedBooking(t *testing.T) {
	svc, m := newRoomService(t)

	m.beds.EXPECT().GetByID(mock.Anything, "b2").Return(&domain.Bed{ID: "b2", RoomID: "r1", IsOccupied: true}, nil)
	m.rooms.EXPECT().GetByID(mock.Anything, "r1").Return(testRoom(), nil)
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.bookings.EXPECT().HasConfirmedForBed(mock.Anything, "b2").Return(true, nil)

	err := svc.DeleteBed(context.Background(), owner, "b2")

	assert.ErrorIs(t, err, domain.ErrBedHasActiveBooking)
}

func TestRoomService_DeleteBed_Success(t *testing.T) {
	svc, m := newRoomService(t)

	m.beds.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Bed{ID: "b1", RoomID: "r1"}, nil)
	m.rooms.EXPECT().GetByID(mock.Anything, "r1").Return(testRoom(), nil)
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.bookings.EXPECT().HasConfirmedForBed(mock.Anything, "b1").Return(false, nil)
	m.beds.EXPECT().Delete(mock.Anything, "b1").Return(nil)

	require.NoError(t, svc.DeleteBed(context.Background(), owner, "b1"))
}
