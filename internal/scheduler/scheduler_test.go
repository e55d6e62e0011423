package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
	"github.com/MustaliSadikot/pg-finder-ms/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func TestScheduler_Sweep_RejectsExpired(t *testing.T) {
	rejecter := mocks.NewMockBookingRejecter(t)
	s := New(rejecter, time.Minute, newTestLogger(t))

	rejected := []*domain.Booking{
		{ID: "bk1", TenantID: "t1", ListingID: "l1", Status: domain.BookingStatusRejected},
		{ID: "bk2", TenantID: "t2", ListingID: "l1", Status: domain.BookingStatusRejected},
		{ID: "bk3", TenantID: "t2", ListingID: "l2", Status: domain.BookingStatusRejected},
	}
	rejecter.EXPECT().RejectExpired(mock.Anything).Return(rejected, nil).Once()

	assert.Equal(t, 3, s.sweep(context.Background()))
}

func TestScheduler_Sweep_HandlesError(t *testing.T) {
	rejecter := mocks.NewMockBookingRejecter(t)
	s := New(rejecter, time.Minute, newTestLogger(t))

	rejecter.EXPECT().RejectExpired(mock.Anything).Return(nil, errors.New("db error")).Once()

	assert.Zero(t, s.sweep(context.Background()))
}

func TestScheduler_Sweep_BoundedByInterval(t *testing.T) {
	rejecter := mocks.NewMockBookingRejecter(t)
	s := New(rejecter, 20*time.Millisecond, newTestLogger(t))

	rejecter.EXPECT().RejectExpired(mock.Anything).
		RunAndReturn(func(ctx context.Context) ([]*domain.Booking, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()

	assert.Zero(t, s.sweep(context.Background()))
}

func TestCountByListing(t *testing.T) {
	got := countByListing([]*domain.Booking{
		{ID: "a", ListingID: "l1"},
		{ID: "b", ListingID: "l2"},
		{ID: "c", ListingID: "l1"},
	})

	assert.Equal(t, map[string]int{"l1": 2, "l2": 1}, got)
}

func TestScheduler_Start_SweepsImmediately(t *testing.T) {
	rejecter := mocks.NewMockBookingRejecter(t)
	s := New(rejecter, time.Hour, newTestLogger(t))

	swept := make(chan struct{})
	rejecter.EXPECT().RejectExpired(mock.Anything).
		Run(func(context.Context) { close(swept) }).
		Return(nil, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not sweep on start")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_Start_SweepsEveryInterval(t *testing.T) {
	rejecter := mocks.NewMockBookingRejecter(t)
	s := New(rejecter, 10*time.Millisecond, newTestLogger(t))

	sweeps := make(chan struct{}, 8)
	rejecter.EXPECT().RejectExpired(mock.Anything).
		Run(func(context.Context) {
			select {
			case sweeps <- struct{}{}:
			default:
			}
		}).
		Return(nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-sweeps:
		case <-time.After(time.Second):
			t.Fatalf("sweep %d never ran", i+1)
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_Start_CancelledBeforeStart(t *testing.T) {
	rejecter := mocks.NewMockBookingRejecter(t)
	s := New(rejecter, time.Hour, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
	rejecter.AssertNotCalled(t, "RejectExpired", mock.Anything)
}
