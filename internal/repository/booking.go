package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
	"github.com/MustaliSadikot/pg-finder-ms/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, tenant_id, listing_id, room_id, bed_id, status, booking_date, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// CreateMany inserts all bookings of one request or none of them.
func (r *BookingRepository) CreateMany(ctx context.Context, bookings []*domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("begin tx", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, b := range bookings {
		if _, err = tx.ExecContext(ctx, query,
			b.ID, b.TenantID, b.ListingID, b.RoomID, b.BedID,
			b.Status, b.BookingDate, b.CreatedAt, b.UpdatedAt,
		); err != nil {
			return storeErr("insert booking", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return storeErr("commit bookings", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	if err != nil {
		return nil, storeErr("get booking", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, storeErr("scan booking", err)
	}

	return b, nil
}

// UpdateStatus locks the booking and then its bed, lets fn apply the
// transition and writes both rows back in the same transaction.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, fn ports.TransitionFunc) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storeErr("begin tx", err)
	}
	defer tx.Rollback()

	b, err := scanBooking(tx.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, storeErr("lock booking", err)
	}

	var bed *domain.Bed
	if b.BedID != nil {
		bed, err = scanBed(tx.QueryRowContext(ctx,
			`SELECT `+bedColumns+` FROM beds WHERE id = $1 FOR UPDATE`, *b.BedID))
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, storeErr("lock bed", err)
		}
	}

	changed, err := fn(b, bed)
	if err != nil {
		return nil, err
	}
	if !changed {
		return b, nil
	}

	if bed != nil {
		if _, err = tx.ExecContext(ctx,
			`UPDATE beds SET is_occupied = $2, tenant_id = $3, updated_at = $4 WHERE id = $1`,
			bed.ID, bed.IsOccupied, bed.TenantID, bed.UpdatedAt,
		); err != nil {
			return nil, storeErr("update bed", err)
		}
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`,
		b.ID, b.Status, b.UpdatedAt,
	); err != nil {
		return nil, storeErr("update booking", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, storeErr("commit status", err)
	}

	return b, nil
}

// RejectExpiredPending rejects pending bookings created before now-olderThan.
// Pending bookings never hold a bed, so beds are left alone.
func (r *BookingRepository) RejectExpiredPending(ctx context.Context, olderThan time.Duration) ([]*domain.Booking, error) {
	query := `
        UPDATE bookings
        SET status = $2, updated_at = NOW()
        WHERE status = $1
          AND created_at < NOW() - make_interval(secs => $3)
        RETURNING ` + bookingColumns

	return r.list(ctx, query,
		domain.BookingStatusPending, domain.BookingStatusRejected, olderThan.Seconds(),
	)
}

func (r *BookingRepository) ListByTenant(ctx context.Context, tenantID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
              WHERE tenant_id = $1
              ORDER BY created_at DESC`
	return r.list(ctx, query, tenantID)
}

func (r *BookingRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Booking, error) {
	query := `SELECT b.id, b.tenant_id, b.listing_id, b.room_id, b.bed_id, b.status,
                     b.booking_date, b.created_at, b.updated_at
              FROM bookings b
              JOIN listings l ON l.id = b.listing_id
              WHERE l.owner_id = $1
              ORDER BY b.created_at DESC`
	return r.list(ctx, query, ownerID)
}

func (r *BookingRepository) HasConfirmedForBed(ctx context.Context, bedID string) (bool, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT EXISTS (SELECT 1 FROM bookings WHERE bed_id = $1 AND status = $2)`,
		bedID, domain.BookingStatusConfirmed,
	)
	if err != nil {
		return false, storeErr("check bed bookings", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, storeErr("scan bed bookings", err)
	}

	return exists, nil
}

func (r *BookingRepository) HasConfirmedForRoom(ctx context.Context, roomID string) (bool, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT EXISTS (SELECT 1 FROM bookings WHERE room_id = $1 AND status = $2)`,
		roomID, domain.BookingStatusConfirmed,
	)
	if err != nil {
		return false, storeErr("check room bookings", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, storeErr("scan room bookings", err)
	}

	return exists, nil
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, storeErr("list bookings", err)
	}
	defer rows.Close()

	res := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, storeErr("scan booking", err)
		}
		res = append(res, b)
	}

	if err = rows.Err(); err != nil {
		return nil, storeErr("iterate bookings", err)
	}

	return res, nil
}

func scanBooking(s scanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := s.Scan(
		&b.ID, &b.TenantID, &b.ListingID, &b.RoomID, &b.BedID,
		&b.Status, &b.BookingDate, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}
