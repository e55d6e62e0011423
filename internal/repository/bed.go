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

const bedColumns = `id, room_id, bed_number, is_occupied, tenant_id, created_at, updated_at`

type BedRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBedRepo(db *dbpg.DB) *BedRepository {
	return &BedRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *BedRepository) Create(ctx context.Context, bed *domain.Bed) error {
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		return insertBed(ctx, tx, bed)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: bed %d already exists", domain.ErrValidation, bed.BedNumber)
		}
		return storeErr("create bed", err)
	}

	return nil
}

func (r *BedRepository) GetByID(ctx context.Context, id string) (*domain.Bed, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT `+bedColumns+` FROM beds WHERE id = $1`, id)
	if err != nil {
		return nil, storeErr("get bed", err)
	}

	bed, err := scanBed(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBedNotFound
		}
		return nil, storeErr("scan bed", err)
	}

	return bed, nil
}

func (r *BedRepository) ListByRoom(ctx context.Context, roomID string) ([]domain.Bed, error) {
	query := `SELECT ` + bedColumns + ` FROM beds
			  WHERE room_id = $1
			  ORDER BY bed_number`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, roomID)
	if err != nil {
		return nil, storeErr("list beds", err)
	}
	defer rows.Close()

	res := make([]domain.Bed, 0)
	for rows.Next() {
		bed, err := scanBed(rows)
		if err != nil {
			return nil, storeErr("scan bed", err)
		}
		res = append(res, *bed)
	}

	if err = rows.Err(); err != nil {
		return nil, storeErr("iterate beds", err)
	}

	return res, nil
}

func (r *BedRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM beds WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete bed", err)
	}

	return expectAffected(res, domain.ErrBedNotFound)
}

func insertBed(ctx context.Context, tx *sql.Tx, b *domain.Bed) error {
	query := `INSERT INTO beds (` + bedColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := tx.ExecContext(ctx, query,
		b.ID, b.RoomID, b.BedNumber, b.IsOccupied, b.TenantID, b.CreatedAt, b.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert bed %d: %w", b.BedNumber, err)
	}
	return nil
}

func scanBed(s scanner) (*domain.Bed, error) {
	var b domain.Bed
	if err := s.Scan(
		&b.ID, &b.RoomID, &b.BedNumber, &b.IsOccupied, &b.TenantID, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}
