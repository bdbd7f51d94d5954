package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/geoattend-backend-go/internal/domain/worksite"
	"github.com/cmlabs-hris/geoattend-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workSiteRepository struct {
	db *database.DB
}

func NewWorkSiteRepository(db *database.DB) worksite.WorkSiteRepository {
	return &workSiteRepository{db: db}
}

// Create implements worksite.WorkSiteRepository.
func (r *workSiteRepository) Create(ctx context.Context, site worksite.WorkSite) (worksite.WorkSite, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_sites (id, name, latitude, longitude, radius_m)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		site.ID, site.Name, site.Latitude, site.Longitude, site.RadiusM,
	).Scan(&site.CreatedAt, &site.UpdatedAt)
	if err != nil {
		return worksite.WorkSite{}, fmt.Errorf("failed to create work site: %w", err)
	}

	return site, nil
}

// Update implements worksite.WorkSiteRepository.
func (r *workSiteRepository) Update(ctx context.Context, site worksite.WorkSite) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_sites
		SET name = $2, latitude = $3, longitude = $4, radius_m = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, site.ID, site.Name, site.Latitude, site.Longitude, site.RadiusM)
	if err != nil {
		return fmt.Errorf("failed to update work site: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worksite.ErrWorkSiteNotFound
	}

	return nil
}

// GetByID implements worksite.WorkSiteRepository.
func (r *workSiteRepository) GetByID(ctx context.Context, id string) (worksite.WorkSite, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, latitude, longitude, radius_m, created_at, updated_at
		FROM work_sites
		WHERE id = $1
	`

	var site worksite.WorkSite
	err := q.QueryRow(ctx, query, id).Scan(
		&site.ID, &site.Name, &site.Latitude, &site.Longitude, &site.RadiusM,
		&site.CreatedAt, &site.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worksite.WorkSite{}, worksite.ErrWorkSiteNotFound
		}
		return worksite.WorkSite{}, fmt.Errorf("failed to get work site: %w", err)
	}

	return site, nil
}

// List implements worksite.WorkSiteRepository.
func (r *workSiteRepository) List(ctx context.Context) ([]worksite.WorkSite, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, latitude, longitude, radius_m, created_at, updated_at
		FROM work_sites
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list work sites: %w", err)
	}
	defer rows.Close()

	sites := make([]worksite.WorkSite, 0)
	for rows.Next() {
		var site worksite.WorkSite
		if err := rows.Scan(
			&site.ID, &site.Name, &site.Latitude, &site.Longitude, &site.RadiusM,
			&site.CreatedAt, &site.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work site: %w", err)
		}
		sites = append(sites, site)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work sites: %w", err)
	}

	return sites, nil
}
