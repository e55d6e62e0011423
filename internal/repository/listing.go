package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const listingColumns = `id, owner_id, name, address, description, price, gender_preference,
	amenities, image_url, availability, created_at, updated_at`

type ListingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewListingRepo(db *dbpg.DB) *ListingRepository {
	return &ListingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO listings (` + listingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		l.ID, l.OwnerID, l.Name, l.Address, l.Description, l.Price, l.GenderPreference,
		pq.Array(amenitiesOrEmpty(l.Amenities)), l.ImageURL, l.Availability, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return storeErr("insert listing", err)
	}

	return nil
}

func (r *ListingRepository) Update(ctx context.Context, l *domain.Listing) error {
	query := `UPDATE listings
			  SET name = $2, address = $3, description = $4, price = $5, gender_preference = $6,
			      amenities = $7, image_url = $8, availability = $9, updated_at = $10
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		l.ID, l.Name, l.Address, l.Description, l.Price, l.GenderPreference,
		pq.Array(amenitiesOrEmpty(l.Amenities)), l.ImageURL, l.Availability, l.UpdatedAt,
	)
	if err != nil {
		return storeErr("update listing", err)
	}

	return expectAffected(res, domain.ErrListingNotFound)
}

// Delete removes the listing; rooms, beds and bookings cascade.
func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete listing", err)
	}

	return expectAffected(res, domain.ErrListingNotFound)
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT `+listingColumns+` FROM listings WHERE id = $1`, id)
	if err != nil {
		return nil, storeErr("get listing", err)
	}

	l, err := scanListing(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, storeErr("scan listing", err)
	}

	return l, nil
}

func (r *ListingRepository) List(ctx context.Context) ([]*domain.Listing, error) {
	return r.list(ctx, `SELECT `+listingColumns+` FROM listings ORDER BY created_at DESC`)
}

func (r *ListingRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Listing, error) {
	return r.list(ctx, `SELECT `+listingColumns+` FROM listings
			  WHERE owner_id = $1
			  ORDER BY created_at DESC`, ownerID)
}

func (r *ListingRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Listing, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, storeErr("list listings", err)
	}
	defer rows.Close()

	res := make([]*domain.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, storeErr("scan listing", err)
		}
		res = append(res, l)
	}

	if err = rows.Err(); err != nil {
		return nil, storeErr("iterate listings", err)
	}

	return res, nil
}

func scanListing(s scanner) (*domain.Listing, error) {
	var l domain.Listing
	if err := s.Scan(
		&l.ID, &l.OwnerID, &l.Name, &l.Address, &l.Description, &l.Price, &l.GenderPreference,
		pq.Array(&l.Amenities), &l.ImageURL, &l.Availability, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if l.Amenities == nil {
		l.Amenities = []string{}
	}
	return &l, nil
}

func amenitiesOrEmpty(a []string) []string {
	if a == nil {
		return []string{}
	}
	return a
}

func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr("rows affected", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
