// README: Catalog store backed by PostgreSQL.
package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) LoadProfiles(ctx context.Context) ([]VehicleProfile, error) {
	rows, err := s.db.Query(ctx, `
		SELECT mode, speed_kmh, fare_per_km
		FROM vehicle_profiles
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []VehicleProfile
	for rows.Next() {
		var p VehicleProfile
		if err := rows.Scan(&p.Mode, &p.SpeedKmh, &p.FarePerKm); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (s *Store) LoadLanguages(ctx context.Context) ([]Language, error) {
	rows, err := s.db.Query(ctx, `
		SELECT name, code
		FROM languages
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var languages []Language
	for rows.Next() {
		var l Language
		if err := rows.Scan(&l.Name, &l.Code); err != nil {
			return nil, err
		}
		languages = append(languages, l)
	}
	return languages, rows.Err()
}
