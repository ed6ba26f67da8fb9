package postgre

import (
	"context"

	"github.com/google/uuid"

	"construction-visit-analysis/internal/history/repository"
	"construction-visit-analysis/internal/model"
)

// CreateVisit inserts a new visit row and returns the created entity.
func (r *implRepository) CreateVisit(ctx context.Context, opt repository.CreateVisitOptions) (model.Visit, error) {
	const query = `
		INSERT INTO visits (id, location_id, date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, location_id, date, notes, created_at, updated_at`

	var visit model.Visit
	err := r.db.QueryRowContext(ctx, query, uuid.New(), opt.LocationID, opt.Date, opt.Notes).Scan(
		&visit.ID, &visit.LocationID, &visit.Date, &visit.Notes, &visit.CreatedAt, &visit.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateVisit"), err)
		return model.Visit{}, repository.ErrFailedToInsert
	}
	return visit, nil
}

// ListVisitsByLocation returns all visits for a location, oldest first.
func (r *implRepository) ListVisitsByLocation(ctx context.Context, locationID uuid.UUID) ([]model.Visit, error) {
	const query = `
		SELECT id, location_id, date, notes, created_at, updated_at
		FROM visits
		WHERE location_id = $1
		ORDER BY date ASC`

	rows, err := r.db.QueryContext(ctx, query, locationID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListVisitsByLocation"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var visits []model.Visit
	for rows.Next() {
		var visit model.Visit
		if err := rows.Scan(&visit.ID, &visit.LocationID, &visit.Date, &visit.Notes, &visit.CreatedAt, &visit.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListVisitsByLocation"), err)
			return nil, repository.ErrFailedToList
		}
		visits = append(visits, visit)
	}
	return visits, rows.Err()
}
