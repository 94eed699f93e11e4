package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/oceanhire/agency/pkg/models"
)

func (r *SQLiteRepo) CreateJob(ctx context.Context, j *models.Job) (int64, error) {
	if j == nil {
		return 0, fmt.Errorf("job is nil")
	}

	ts := now()
	res, err := r.conn.Exec(ctx,
		`INSERT INTO jobs (title, category, location, salary_range, contact, description, requirements, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.Title, j.Category, j.Location, nullable(j.SalaryRange), j.Contact, j.Description, nullable(j.Requirements), j.Status, ts, ts)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT id, title, category, location, salary_range, contact, description, requirements, status, created_at, updated_at
		 FROM jobs WHERE id = ?`, id)

	j, err := scanJob(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return j, nil
}

func (r *SQLiteRepo) ListJobs(ctx context.Context, filter models.JobFilter) ([]models.Job, error) {
	query := `SELECT id, title, category, location, salary_range, contact, description, requirements, status, created_at, updated_at
		 FROM jobs WHERE 1=1`
	args := []any{}

	if filter.Category != "" {
		query += ` AND category = ?`
		args = append(args, filter.Category)
	}
	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, filter.Status)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Job
	for rows.Next() {
		j, err := scanJob(rows.Scan)
		if err != nil {
			return nil, err
		}

		out = append(out, *j)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateJob(ctx context.Context, id int64, patch *models.JobPatch) (*models.Job, error) {
	if patch == nil {
		patch = &models.JobPatch{}
	}

	// nil patch fields pass through as NULL and COALESCE keeps the stored value
	res, err := r.conn.Exec(ctx,
		`UPDATE jobs SET
			title = COALESCE(?, title),
			category = COALESCE(?, category),
			location = COALESCE(?, location),
			salary_range = COALESCE(?, salary_range),
			contact = COALESCE(?, contact),
			description = COALESCE(?, description),
			requirements = COALESCE(?, requirements),
			status = COALESCE(?, status),
			updated_at = ?
		 WHERE id = ?`,
		patch.Title, patch.Category, patch.Location, patch.SalaryRange,
		patch.Contact, patch.Description, patch.Requirements, patch.Status,
		now(), id)
	if err != nil {
		return nil, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	return r.GetJob(ctx, id)
}

func (r *SQLiteRepo) DeleteJob(ctx context.Context, id int64) (bool, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func scanJob(scan func(dest ...any) error) (*models.Job, error) {
	var j models.Job
	var salary, reqs sql.NullString
	if err := scan(&j.ID, &j.Title, &j.Category, &j.Location, &salary, &j.Contact, &j.Description, &reqs, &j.Status, &j.CreatedAt, &j.UpdatedAt); err != nil {
		return nil, err
	}

	if salary.Valid {
		j.SalaryRange = salary.String
	}
	if reqs.Valid {
		j.Requirements = reqs.String
	}

	return &j, nil
}

// nullable maps an empty string to NULL so optional columns stay NULL
// instead of storing "".
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
