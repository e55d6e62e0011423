package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
	"github.com/MustaliSadikot/pg-finder-ms/internal/service/ports"
	"github.com/MustaliSadikot/pg-finder-ms/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingMocks struct {
	bookings  *mocks.MockBookingRepo
	listings  *mocks.MockListingRepo
	rooms     *mocks.MockRoomRepo
	beds      *mocks.MockBedRepo
	users     *mocks.MockUserRepo
	notifier  *mocks.MockBookingNotifier
	publisher *mocks.MockBookingEventPublisher
}

func newBookingService(t *testing.T, pendingTTL time.Duration) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		bookings:  mocks.NewMockBookingRepo(t),
		listings:  mocks.NewMockListingRepo(t),
		rooms:     mocks.NewMockRoomRepo(t),
		beds:      mocks.NewMockBedRepo(t),
		users:     mocks.NewMockUserRepo(t),
		notifier:  mocks.NewMockBookingNotifier(t),
		publisher: mocks.NewMockBookingEventPublisher(t),
	}
	svc := NewBookingService(m.bookings, m.listings, m.rooms, m.beds, m.users, m.notifier, m.publisher,
		newTestLogger(t), pendingTTL)
	return svc, m
}

func waitNotified(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

var (
	tenant = domain.Session{UserID: "t1", Role: domain.RoleTenant}
	owner  = domain.Session{UserID: "o1", Role: domain.RoleOwner}
)

func testListing() *domain.Listing {
	return &domain.Listing{ID: "l1", OwnerID: "o1", Name: "Sunrise PG", Availability: true}
}

func testRoom() *domain.Room {
	return &domain.Room{ID: "r1", ListingID: "l1", RoomNumber: "101", TotalBeds: 3, Availability: true}
}

func testBeds() []domain.Bed {
	return []domain.Bed{
		{ID: "b1", RoomID: "r1", BedNumber: 1},
		{ID: "b2", RoomID: "r1", BedNumber: 2, IsOccupied: true, TenantID: strPtr("t9")},
		{ID: "b3", RoomID: "r1", BedNumber: 3},
	}
}

func strPtr(s string) *string { return &s }

// --- SelectBeds ---

func TestBookingService_SelectBeds_Success(t *testing.T) {
	svc, m := newBookingService(t, 0)
	svc.rnd = rand.New(rand.NewPCG(1, 2))

	m.rooms.EXPECT().GetByID(mock.Anything, "r1").Return(testRoom(), nil)
	m.beds.EXPECT().ListByRoom(mock.Anything, "r1").Return(testBeds(), nil)

	sel, err := svc.SelectBeds(context.Background(), "r1", 2)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"b1", "b3"}, sel.BedIDs)
	assert.ElementsMatch(t, []int{1, 3}, sel.BedNumbers)
}

func TestBookingService_SelectBeds_RequiredTooSmall(t *testing.T) {
	svc, _ := newBookingService(t, 0)

	_, err := svc.SelectBeds(context.Background(), "r1", 0)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_SelectBeds_RoomNotFound(t *testing.T) {
	svc, m := newBookingService(t, 0)

	m.rooms.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRoomNotFound)

	_, err := svc.SelectBeds(context.Background(), "missing", 1)

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

// --- Create ---

func TestBookingService_Create_OneBookingPerBed(t *testing.T) {
	svc, m := newBookingService(t, 0)

	listing := testListing()
	ownerUser := &domain.User{ID: "o1", Name: "Owner"}
	done := make(chan struct{})

	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)
	m.rooms.EXPECT().GetByID(mock.Anything, "r1").Return(testRoom(), nil)
	m.beds.EXPECT().ListByRoom(mock.Anything, "r1").Return(testBeds(), nil)
	m.bookings.EXPECT().CreateMany(mock.Anything, mock.MatchedBy(func(bs []*domain.Booking) bool {
		return len(bs) == 2
	})).Return(nil)
	m.users.EXPECT().GetByID(mock.Anything, "o1").Return(ownerUser, nil)
	m.notifier.EXPECT().NotifyBookingCreated(mock.Anything, ownerUser, listing, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Listing, []*domain.Booking) { close(done) }).
		Return()

	bookings, err := svc.Create(context.Background(), tenant, domain.CreateBookingInput{
		ListingID:    "l1",
		RoomID:       "r1",
		BedIDs:       []string{"b1", "b3", "b1"},
		BedsRequired: 2,
		BookingDate:  time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	for i, want := range []string{"b1", "b3"} {
		b := bookings[i]
		assert.Equal(t, domain.BookingStatusPending, b.Status)
		assert.Equal(t, "t1", b.TenantID)
		assert.Equal(t, "l1", b.ListingID)
		require.NotNil(t, b.BedID)
		assert.Equal(t, want, *b.BedID)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), b.BookingDate)
	}
	assert.NotEqual(t, bookings[0].ID, bookings[1].ID)

	waitNotified(t, done)
}

func TestBookingService_Create_RoomLevel(t *testing.T) {
	svc, m := newBookingService(t, 0)

	done := make(chan struct{})
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.rooms.EXPECT().GetByID(mock.Anything, "r1").Return(testRoom(), nil)
	m.bookings.EXPECT().CreateMany(mock.Anything, mock.Anything).Return(nil)
	m.users.EXPECT().GetByID(mock.Anything, "o1").
		Run(func(context.Context, string) { close(done) }).
		Return(nil, domain.ErrUserNotFound)

	bookings, err := svc.Create(context.Background(), tenant, domain.CreateBookingInput{ListingID: "l1", RoomID: "r1"})

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Nil(t, bookings[0].BedID)
	assert.Equal(t, "r1", *bookings[0].RoomID)

	waitNotified(t, done)
}

func TestBookingService_Create_OwnerCannotBook(t *testing.T) {
	svc, _ := newBookingService(t, 0)

	_, err := svc.Create(context.Background(), owner, domain.CreateBookingInput{ListingID: "l1", RoomID: "r1"})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBookingService_Create_UnderFilledSelection(t *testing.T) {
	svc, _ := newBookingService(t, 0)

	_, err := svc.Create(context.Background(), tenant, domain.CreateBookingInput{
		ListingID:    "l1",
		RoomID:       "r1",
		BedIDs:       []string{"b1"},
		BedsRequired: 2,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_ListingUnavailable(t *testing.T) {
	svc, m := newBookingService(t, 0)

	listing := testListing()
	listing.Availability = false
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)

	_, err := svc.Create(context.Background(), tenant, domain.CreateBookingInput{ListingID: "l1", RoomID: "r1"})

	assert.ErrorIs(t, err, domain.ErrListingUnavailable)
}

func TestBookingService_Create_RoomOfAnotherListing(t *testing.T) {
	svc, m := newBookingService(t, 0)

	room := testRoom()
	room.ListingID = "l2"
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.rooms.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)

	_, err := svc.Create(context.Background(), tenant, domain.CreateBookingInput{ListingID: "l1", RoomID: "r1"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_RoomUnavailable(t *testing.T) {
	svc, m := newBookingService(t, 0)

	room := testRoom()
	room.Availability = false
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.rooms.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)

	_, err := svc.Create(context.Background(), tenant, domain.CreateBookingInput{ListingID: "l1", RoomID: "r1"})

	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
}

func TestBookingService_Create_OccupiedBed(t *testing.T) {
	svc, m := newBookingService(t, 0)

	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.rooms.EXPECT().GetByID(mock.Anything, "r1").Return(testRoom(), nil)
	m.beds.EXPECT().ListByRoom(mock.Anything, "r1").Return(testBeds(), nil)

	_, err := svc.Create(context.Background(), tenant, domain.CreateBookingInput{
		ListingID: "l1",
		RoomID:    "r1",
		BedIDs:    []string{"b1", "b2"},
	})

	assert.ErrorIs(t, err, domain.ErrAlreadyOccupied)
}

func TestBookingService_Create_BedOfAnotherRoom(t *testing.T) {
	svc, m := newBookingService(t, 0)

	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.rooms.EXPECT().GetByID(mock.Anything, "r1").Return(testRoom(), nil)
	m.beds.EXPECT().ListByRoom(mock.Anything, "r1").Return(testBeds(), nil)

	_, err := svc.Create(context.Background(), tenant, domain.CreateBookingInput{
		ListingID: "l1",
		RoomID:    "r1",
		BedIDs:    []string{"elsewhere"},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// --- Transition ---

// updateStatusWith runs the transition callback against copies of b and bed,
// the way a store would inside its transaction.
func updateStatusWith(b *domain.Booking, bed *domain.Bed) func(context.Context, string, ports.TransitionFunc) (*domain.Booking, error) {
	return func(_ context.Context, _ string, fn ports.TransitionFunc) (*domain.Booking, error) {
		locked := *b
		if _, err := fn(&locked, bed); err != nil {
			return nil, err
		}
		return &locked, nil
	}
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:        "bk1",
		TenantID:  "t1",
		ListingID: "l1",
		RoomID:    strPtr("r1"),
		BedID:     strPtr("b1"),
		Status:    domain.BookingStatusPending,
	}
}

func TestBookingService_Transition_Confirm(t *testing.T) {
	svc, m := newBookingService(t, 0)

	booking := pendingBooking()
	bed := &domain.Bed{ID: "b1", RoomID: "r1", BedNumber: 1}
	listing := testListing()
	tenantUser := &domain.User{ID: "t1"}
	done := make(chan struct{})

	m.bookings.EXPECT().GetByID(mock.Anything, "bk1").Return(booking, nil)
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)
	m.bookings.EXPECT().UpdateStatus(mock.Anything, "bk1", mock.Anything).RunAndReturn(updateStatusWith(booking, bed))
	m.publisher.EXPECT().PublishStatusChanged(mock.Anything, mock.MatchedBy(func(e domain.BookingStatusChanged) bool {
		return e.BookingID == "bk1" && e.From == domain.BookingStatusPending && e.To == domain.BookingStatusConfirmed
	})).Return(nil)
	m.users.EXPECT().GetByID(mock.Anything, "t1").Return(tenantUser, nil)
	m.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, tenantUser, listing).
		Run(func(context.Context, *domain.User, *domain.Listing) { close(done) }).
		Return()

	updated, err := svc.Transition(context.Background(), owner, "bk1", domain.BookingStatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, updated.Status)
	assert.True(t, bed.IsOccupied)
	require.NotNil(t, bed.TenantID)
	assert.Equal(t, "t1", *bed.TenantID)

	waitNotified(t, done)
}

func TestBookingService_Transition_TenantCompletes(t *testing.T) {
	svc, m := newBookingService(t, 0)

	booking := pendingBooking()
	booking.Status = domain.BookingStatusConfirmed
	bed := &domain.Bed{ID: "b1", IsOccupied: true, TenantID: strPtr("t1")}

	m.bookings.EXPECT().GetByID(mock.Anything, "bk1").Return(booking, nil)
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.bookings.EXPECT().UpdateStatus(mock.Anything, "bk1", mock.Anything).RunAndReturn(updateStatusWith(booking, bed))
	m.publisher.EXPECT().PublishStatusChanged(mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.Transition(context.Background(), tenant, "bk1", domain.BookingStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCompleted, updated.Status)
	assert.False(t, bed.IsOccupied)
	assert.Nil(t, bed.TenantID)
}

func TestBookingService_Transition_PublishOutlivesRequest(t *testing.T) {
	svc, m := newBookingService(t, 0)

	booking := pendingBooking()
	booking.Status = domain.BookingStatusConfirmed
	bed := &domain.Bed{ID: "b1", IsOccupied: true, TenantID: strPtr("t1")}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	publishErr := context.Canceled

	m.bookings.EXPECT().GetByID(mock.Anything, "bk1").Return(booking, nil)
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.bookings.EXPECT().UpdateStatus(mock.Anything, "bk1", mock.Anything).RunAndReturn(updateStatusWith(booking, bed))
	m.publisher.EXPECT().PublishStatusChanged(mock.Anything, mock.Anything).
		RunAndReturn(func(pubCtx context.Context, _ domain.BookingStatusChanged) error {
			publishErr = pubCtx.Err()
			return nil
		})

	_, err := svc.Transition(ctx, tenant, "bk1", domain.BookingStatusCompleted)

	require.NoError(t, err)
	assert.NoError(t, publishErr)
}

func TestBookingService_Transition_SameStatusIsNoop(t *testing.T) {
	svc, m := newBookingService(t, 0)

	booking := pendingBooking()
	bed := &domain.Bed{ID: "b1"}

	m.bookings.EXPECT().GetByID(mock.Anything, "bk1").Return(booking, nil)
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.bookings.EXPECT().UpdateStatus(mock.Anything, "bk1", mock.Anything).RunAndReturn(updateStatusWith(booking, bed))

	updated, err := svc.Transition(context.Background(), owner, "bk1", domain.BookingStatusPending)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, updated.Status)
	assert.False(t, bed.IsOccupied)
}

func TestBookingService_Transition_RepeatedConfirmIsNoop(t *testing.T) {
	svc, m := newBookingService(t, 0)

	booking := pendingBooking()
	booking.Status = domain.BookingStatusConfirmed
	bed := &domain.Bed{ID: "b1", IsOccupied: true, TenantID: strPtr("t1")}

	m.bookings.EXPECT().GetByID(mock.Anything, "bk1").Return(booking, nil)
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.bookings.EXPECT().UpdateStatus(mock.Anything, "bk1", mock.Anything).RunAndReturn(updateStatusWith(booking, bed))

	updated, err := svc.Transition(context.Background(), owner, "bk1", domain.BookingStatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, updated.Status)
	assert.True(t, bed.IsOccupied)
}

func TestBookingService_Transition_InvalidTransition(t *testing.T) {
	svc, m := newBookingService(t, 0)

	booking := pendingBooking()
	booking.Status = domain.BookingStatusRejected

	m.bookings.EXPECT().GetByID(mock.Anything, "bk1").Return(booking, nil)
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.bookings.EXPECT().UpdateStatus(mock.Anything, "bk1", mock.Anything).
		RunAndReturn(updateStatusWith(booking, &domain.Bed{ID: "b1"}))

	_, err := svc.Transition(context.Background(), owner, "bk1", domain.BookingStatusConfirmed)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Transition_BedTakenMeanwhile(t *testing.T) {
	svc, m := newBookingService(t, 0)

	booking := pendingBooking()
	bed := &domain.Bed{ID: "b1", IsOccupied: true, TenantID: strPtr("t9")}

	m.bookings.EXPECT().GetByID(mock.Anything, "bk1").Return(booking, nil)
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.bookings.EXPECT().UpdateStatus(mock.Anything, "bk1", mock.Anything).RunAndReturn(updateStatusWith(booking, bed))

	_, err := svc.Transition(context.Background(), owner, "bk1", domain.BookingStatusConfirmed)

	assert.ErrorIs(t, err, domain.ErrAlreadyOccupied)
	assert.Equal(t, "t9", *bed.TenantID)
}

func TestBookingService_Transition_TenantCannotConfirm(t *testing.T) {
	svc, _ := newBookingService(t, 0)

	_, err := svc.Transition(context.Background(), tenant, "bk1", domain.BookingStatusConfirmed)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBookingService_Transition_UnknownStatus(t *testing.T) {
	svc, _ := newBookingService(t, 0)

	_, err := svc.Transition(context.Background(), owner, "bk1", "cancelled")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Transition_OtherOwnersListing(t *testing.T) {
	svc, m := newBookingService(t, 0)

	m.bookings.EXPECT().GetByID(mock.Anything, "bk1").Return(pendingBooking(), nil)
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)

	_, err := svc.Transition(context.Background(), domain.Session{UserID: "o2", Role: domain.RoleOwner},
		"bk1", domain.BookingStatusRejected)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Transition_PublishFailureIsLogged(t *testing.T) {
	svc, m := newBookingService(t, 0)

	booking := pendingBooking()
	bed := &domain.Bed{ID: "b1"}
	done := make(chan struct{})

	m.bookings.EXPECT().GetByID(mock.Anything, "bk1").Return(booking, nil)
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.bookings.EXPECT().UpdateStatus(mock.Anything, "bk1", mock.Anything).RunAndReturn(updateStatusWith(booking, bed))
	m.publisher.EXPECT().PublishStatusChanged(mock.Anything, mock.Anything).Return(errors.New("broker down"))
	m.users.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.User{ID: "t1"}, nil)
	m.notifier.EXPECT().NotifyBookingRejected(mock.Anything, mock.Anything, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Listing) { close(done) }).
		Return()

	updated, err := svc.Transition(context.Background(), owner, "bk1", domain.BookingStatusRejected)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusRejected, updated.Status)
	assert.False(t, bed.IsOccupied)

	waitNotified(t, done)
}

// --- Get / ListMine ---

func TestBookingService_Get_Details(t *testing.T) {
	svc, m := newBookingService(t, 0)

	booking := pendingBooking()
	m.bookings.EXPECT().GetByID(mock.Anything, "bk1").Return(booking, nil)
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)
	m.rooms.EXPECT().GetByID(mock.Anything, "r1").Return(testRoom(), nil)
	m.beds.EXPECT().GetByID(mock.Anything, "b1").Return(nil, domain.ErrBedNotFound)

	details, err := svc.Get(context.Background(), tenant, "bk1")

	require.NoError(t, err)
	assert.Equal(t, "bk1", details.Booking.ID)
	assert.Equal(t, "Sunrise PG", details.Listing.Name)
	assert.Equal(t, "101", details.Room.RoomNumber)
	assert.Nil(t, details.Bed)
}

func TestBookingService_Get_OtherTenant(t *testing.T) {
	svc, m := newBookingService(t, 0)

	m.bookings.EXPECT().GetByID(mock.Anything, "bk1").Return(pendingBooking(), nil)
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(testListing(), nil)

	_, err := svc.Get(context.Background(), domain.Session{UserID: "t2", Role: domain.RoleTenant}, "bk1")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_ListMine(t *testing.T) {
	svc, m := newBookingService(t, 0)

	m.bookings.EXPECT().ListByTenant(mock.Anything, "t1").Return([]*domain.Booking{{ID: "a"}}, nil)
	m.bookings.EXPECT().ListByOwner(mock.Anything, "o1").Return([]*domain.Booking{{ID: "b"}, {ID: "c"}}, nil)

	mine, err := svc.ListMine(context.Background(), tenant)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := svc.ListMine(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, theirs, 2)

	_, err = svc.ListMine(context.Background(), domain.Session{UserID: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// --- RejectExpired ---

func TestBookingService_RejectExpired_Disabled(t *testing.T) {
	svc, _ := newBookingService(t, 0)

	rejected, err := svc.RejectExpired(context.Background())

	require.NoError(t, err)
	assert.Nil(t, rejected)
}

func TestBookingService_RejectExpired_NotifiesTenants(t *testing.T) {
	svc, m := newBookingService(t, 48*time.Hour)

	expired := []*domain.Booking{{ID: "bk1", TenantID: "t1", ListingID: "l1", Status: domain.BookingStatusRejected}}
	listing := testListing()
	tenantUser := &domain.User{ID: "t1"}
	done := make(chan struct{})

	m.bookings.EXPECT().RejectExpiredPending(mock.Anything, 48*time.Hour).Return(expired, nil)
	m.publisher.EXPECT().
		PublishStatusChanged(mock.Anything, mock.MatchedBy(func(e domain.BookingStatusChanged) bool {
			return e.BookingID == "bk1" &&
				e.From == domain.BookingStatusPending &&
				e.To == domain.BookingStatusRejected
		})).
		Return(nil)
	m.listings.EXPECT().GetByID(mock.Anything, "l1").Return(listing, nil)
	m.users.EXPECT().GetByID(mock.Anything, "t1").Return(tenantUser, nil)
	m.notifier.EXPECT().NotifyBookingRejected(mock.Anything, tenantUser, listing).
		Run(func(context.Context, *domain.User, *domain.Listing) { close(done) }).
		Return()

	rejected, err := svc.RejectExpired(context.Background())

	require.NoError(t, err)
	assert.Len(t, rejected, 1)

	waitNotified(t, done)
}

func TestBookingService_RejectExpired_RepoError(t *testing.T) {
	svc, m := newBookingService(t, time.Hour)

	m.bookings.EXPECT().RejectExpiredPending(mock.Anything, time.Hour).Return(nil, domain.ErrStoreUnavailable)

	_, err := svc.RejectExpired(context.Background())

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
