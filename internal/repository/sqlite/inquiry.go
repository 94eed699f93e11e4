package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/oceanhire/agency/pkg/models"
)

func (r *SQLiteRepo) CreateInquiry(ctx context.Context, i *models.Inquiry) (int64, error) {
	if i == nil {
		return 0, fmt.Errorf("inquiry is nil")
	}

	status := i.Status
	if status == "" {
		status = models.InquiryStatusNew
	}

	res, err := r.conn.Exec(ctx,
		`INSERT INTO inquiries (full_name, email, phone, job_id, message, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		i.FullName, i.Email, nullable(i.Phone), i.JobID, i.Message, status, now())
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetInquiry(ctx context.Context, id int64) (*models.Inquiry, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT i.id, i.full_name, i.email, i.phone, i.job_id, j.title, i.message, i.status, i.created_at
		 FROM inquiries i
		 LEFT JOIN jobs j ON i.job_id = j.id
		 WHERE i.id = ?`, id)

	i, err := scanInquiry(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return i, nil
}

func (r *SQLiteRepo) ListInquiries(ctx context.Context, status string) ([]models.Inquiry, error) {
	query := `SELECT i.id, i.full_name, i.email, i.phone, i.job_id, j.title, i.message, i.status, i.created_at
		 FROM inquiries i
		 LEFT JOIN jobs j ON i.job_id = j.id`
	args := []any{}

	if status != "" {
		query += ` WHERE i.status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY i.created_at DESC, i.id DESC`

	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Inquiry
	for rows.Next() {
		i, err := scanInquiry(rows.Scan)
		if err != nil {
			return nil, err
		}

		out = append(out, *i)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateInquiryStatus(ctx context.Context, id int64, status string) (*models.Inquiry, error) {
	res, err := r.conn.Exec(ctx, `UPDATE inquiries SET status = ? WHERE id = ?`, status, id)
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

	return r.GetInquiry(ctx, id)
}

func (r *SQLiteRepo) DeleteInquiry(ctx context.Context, id int64) (bool, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM inquiries WHERE id = ?`, id)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func scanInquiry(scan func(dest ...any) error) (*models.Inquiry, error) {
	var i models.Inquiry
	var phone, jobTitle sql.NullString
	var jobID sql.NullInt64
	if err := scan(&i.ID, &i.FullName, &i.Email, &phone, &jobID, &jobTitle, &i.Message, &i.Status, &i.CreatedAt); err != nil {
		return nil, err
	}

	if phone.Valid {
		i.Phone = phone.String
	}
	if jobID.Valid {
		i.JobID = &jobID.Int64
	}
	if jobTitle.Valid {
		i.JobTitle = jobTitle.String
	}

	return &i, nil
}
