package postgre

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"construction-visit-analysis/internal/history/repository"
	"construction-visit-analysis/internal/model"
)

const entryColumns = `id, visit_id, task_name, planned_start, planned_end,
	actual_start, actual_end, status, dependencies, created_at, updated_at`

// CreateEntry inserts a chronogram entry row and returns the created entity.
func (r *implRepository) CreateEntry(ctx context.Context, opt repository.CreateEntryOptions) (model.ChronogramEntry, error) {
	const query = `
		INSERT INTO chronogram_entries
			(id, visit_id, task_name, planned_start, planned_end, status, dependencies, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'planned', $6, NOW(), NOW())
		RETURNING ` + entryColumns

	row := r.db.QueryRowContext(ctx, query,
		uuid.New(), opt.VisitID, opt.TaskName, opt.PlannedStart, opt.PlannedEnd,
		pq.Array(uuidStrings(opt.Dependencies)),
	)
	entry, err := scanEntry(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEntry"), err)
		return model.ChronogramEntry{}, repository.ErrFailedToInsert
	}
	return entry, nil
}

// ListEntriesByVisit returns all chronogram entries for a visit in planned
// start order.
func (r *implRepository) ListEntriesByVisit(ctx context.Context, visitID uuid.UUID) ([]model.ChronogramEntry, error) {
	const query = `
		SELECT ` + entryColumns + `
		FROM chronogram_entries
		WHERE visit_id = $1
		ORDER BY planned_start ASC`

	rows, err := r.db.QueryContext(ctx, query, visitID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEntriesByVisit"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var entries []model.ChronogramEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEntriesByVisit"), err)
			return nil, repository.ErrFailedToList
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// GetEntry retrieves a single entry by ID. Returns a zero-value entry when
// not found — do NOT return error for not-found.
func (r *implRepository) GetEntry(ctx context.Context, id uuid.UUID) (model.ChronogramEntry, error) {
	const query = `SELECT ` + entryColumns + ` FROM chronogram_entries WHERE id = $1`

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.ChronogramEntry{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetEntry"), err)
		return model.ChronogramEntry{}, repository.ErrFailedToGet
	}
	return entry, nil
}

// UpdateEntryProgress records actual execution data. Nil timestamps and an
// empty status leave the stored values untouched.
func (r *implRepository) UpdateEntryProgress(ctx context.Context, opt repository.UpdateEntryProgressOptions) (model.ChronogramEntry, error) {
	const query = `
		UPDATE chronogram_entries
		SET actual_start = COALESCE($1, actual_start),
		    actual_end   = COALESCE($2, actual_end),
		    status       = COALESCE(NULLIF($3, ''), status),
		    updated_at   = NOW()
		WHERE id = $4
		RETURNING ` + entryColumns

	row := r.db.QueryRowContext(ctx, query, opt.ActualStart, opt.ActualEnd, string(opt.Status), opt.EntryID)
	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return model.ChronogramEntry{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEntryProgress"), err)
		return model.ChronogramEntry{}, repository.ErrFailedToUpdate
	}
	return entry, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (model.ChronogramEntry, error) {
	var (
		entry model.ChronogramEntry
		deps  pq.StringArray
	)
	err := row.Scan(
		&entry.ID, &entry.VisitID, &entry.TaskName,
		&entry.PlannedStart, &entry.PlannedEnd,
		&entry.ActualStart, &entry.ActualEnd,
		&entry.Status, &deps,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		return model.ChronogramEntry{}, err
	}
	for _, raw := range deps {
		if id, parseErr := uuid.Parse(raw); parseErr == nil {
			entry.Dependencies = append(entry.Dependencies, id)
		}
	}
	return entry, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
