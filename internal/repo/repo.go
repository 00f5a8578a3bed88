// Package repo provides the optional Postgres-backed airport dataset
package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smresponsibilities/flight-sun-tracker/internal/domain"
)

// AirportRepo reads the airport reference table
type AirportRepo struct {
	pool *pgxpool.Pool
}

// NewAirportRepo creates a new airport repository
func NewAirportRepo(pool *pgxpool.Pool) *AirportRepo {
	return &AirportRepo{pool: pool}
}

// LoadAll reads the full airport table, ordered by IATA code
func (r *AirportRepo) LoadAll(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT iata, name, latitude, longitude FROM airports ORDER BY iata")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []domain.Airport
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.IATA, &a.Name, &a.Latitude, &a.Longitude); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Count counts airport records
func (r *AirportRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, "SELECT count(*) FROM airports").Scan(&count)
	return count, err
}

// Seed inserts records, ignoring codes already present
func (r *AirportRepo) Seed(ctx context.Context, list []domain.Airport) error {
	for _, a := range list {
		_, err := r.pool.Exec(ctx, `
			INSERT INTO airports(iata, name, latitude, longitude)
			VALUES($1,$2,$3,$4)
			ON CONFLICT (iata) DO NOTHING`,
			a.IATA, a.Name, a.Latitude, a.Longitude)
		if err != nil {
			return err
		}
	}
	return nil
}

// InitDB initializes database tables
func InitDB(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS airports(
			iata TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL
		)`)
	return err
}
