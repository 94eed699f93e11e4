package repository

import (
	"context"

	"github.com/oceanhire/agency/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type JobRepo interface {
	CreateJob(ctx context.Context, j *models.Job) (int64, error)
	GetJob(ctx context.Context, id int64) (*models.Job, error)
	ListJobs(ctx context.Context, filter models.JobFilter) ([]models.Job, error)
	// UpdateJob applies the non-nil fields of patch and returns the updated
	// row, or (nil, nil) when no job with that id exists.
	UpdateJob(ctx context.Context, id int64, patch *models.JobPatch) (*models.Job, error)
	// DeleteJob reports whether a row was removed.
	DeleteJob(ctx context.Context, id int64) (bool, error)
}

type InquiryRepo interface {
	CreateInquiry(ctx context.Context, i *models.Inquiry) (int64, error)
	GetInquiry(ctx context.Context, id int64) (*models.Inquiry, error)
	// ListInquiries returns inquiries joined with the referenced job title.
	// An empty status imposes no constraint.
	ListInquiries(ctx context.Context, status string) ([]models.Inquiry, error)
	// UpdateInquiryStatus returns the updated row, or (nil, nil) when no
	// inquiry with that id exists.
	UpdateInquiryStatus(ctx context.Context, id int64, status string) (*models.Inquiry, error)
	DeleteInquiry(ctx context.Context, id int64) (bool, error)
}

type AdminRepo interface {
	CreateAdmin(ctx context.Context, a *models.Admin) (int64, error)
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
}
