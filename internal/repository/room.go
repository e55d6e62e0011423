package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const roomColumns = `id, listing_id, room_number, total_beds, capacity_per_bed, availability, created_at`

type RoomRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRoomRepo(db *dbpg.DB) *RoomRepository {
	return &RoomRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *RoomRepository) CreateWithBeds(ctx context.Context, room *domain.Room, beds []*domain.Bed) error {
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		query := `INSERT INTO rooms (` + roomColumns + `)
				  VALUES ($1, $2, $3, $4, $5, $6, $7)`
		if _, err := tx.ExecContext(ctx, query,
			room.ID, room.ListingID, room.RoomNumber, room.TotalBeds,
			room.CapacityPerBed, room.Availability, room.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert room: %w", err)
		}

		for _, b := range beds {
			if err := insertBed(ctx, tx, b); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: duplicate bed number", domain.ErrValidation)
		}
		return storeErr("create room", err)
	}

	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)
	if err != nil {
		return nil, storeErr("get room", err)
	}

	room, err := scanRoom(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, storeErr("scan room", err)
	}

	return room, nil
}

func (r *RoomRepository) ListByListing(ctx context.Context, listingID string) ([]*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms
			  WHERE listing_id = $1
			  ORDER BY room_number`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, listingID)
	if err != nil {
		return nil, storeErr("list rooms", err)
	}
	defer rows.Close()

	res := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, storeErr("scan room", err)
		}
		res = append(res, room)
	}

	if err = rows.Err(); err != nil {
		return nil, storeErr("iterate rooms", err)
	}

	return res, nil
}

// Delete removes the room; its beds cascade.
// Update writes the mutable room columns. total_beds follows the bed rows and
// is not touched here.
func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy,
		`UPDATE rooms SET room_number = $2, capacity_per_bed = $3, availability = $4 WHERE id = $1`,
		room.ID, room.RoomNumber, room.CapacityPerBed, room.Availability,
	)
	if err != nil {
		return storeErr("update room", err)
	}

	return expectAffected(res, domain.ErrRoomNotFound)
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete room", err)
	}

	return expectAffected(res, domain.ErrRoomNotFound)
}

func scanRoom(s scanner) (*domain.Room, error) {
	var room domain.Room
	if err := s.Scan(
		&room.ID, &room.ListingID, &room.RoomNumber, &room.TotalBeds,
		&room.CapacityPerBed, &room.Availability, &room.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &room, nil
}
