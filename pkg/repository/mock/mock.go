package mock

import (
	"context"

	"github.com/oceanhire/agency/pkg/models"
)

// Test helpers and mocks
type Mocks struct {
	JobRepo     *MockJobRepo
	InquiryRepo *MockInquiryRepo
	AdminRepo   *MockAdminRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		JobRepo:     &MockJobRepo{},
		InquiryRepo: &MockInquiryRepo{},
		AdminRepo:   &MockAdminRepo{},
	}
}

type MockJobRepo struct {
	Jobs      []models.Job
	nextID    int64
	CreateErr error
	ListErr   error
}

func (m *MockJobRepo) CreateJob(ctx context.Context, j *models.Job) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.nextID++
	stored := *j
	stored.ID = m.nextID
	stored.CreatedAt = m.nextID // strictly increasing, good enough for ordering
	stored.UpdatedAt = stored.CreatedAt
	m.Jobs = append(m.Jobs, stored)
	return stored.ID, nil
}

func (m *MockJobRepo) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	for i := range m.Jobs {
		if m.Jobs[i].ID == id {
			j := m.Jobs[i]
			return &j, nil
		}
	}
	return nil, nil
}

func (m *MockJobRepo) ListJobs(ctx context.Context, filter models.JobFilter) ([]models.Job, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.Job
	// newest first
	for i := len(m.Jobs) - 1; i >= 0; i-- {
		j := m.Jobs[i]
		if filter.Category != "" && j.Category != filter.Category {
			continue
		}
		if filter.Status != "" && j.Status != filter.Status {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (m *MockJobRepo) UpdateJob(ctx context.Context, id int64, patch *models.JobPatch) (*models.Job, error) {
	for i := range m.Jobs {
		if m.Jobs[i].ID != id {
			continue
		}
		j := &m.Jobs[i]
		if patch != nil {
			apply := func(dst *string, src *string) {
				if src != nil {
					*dst = *src
				}
			}
			apply(&j.Title, patch.Title)
			apply(&j.Category, patch.Category)
			apply(&j.Location, patch.Location)
			apply(&j.SalaryRange, patch.SalaryRange)
			apply(&j.Contact, patch.Contact)
			apply(&j.Description, patch.Description)
			apply(&j.Requirements, patch.Requirements)
			apply(&j.Status, patch.Status)
		}
		j.UpdatedAt++
		out := *j
		return &out, nil
	}
	return nil, nil
}

func (m *MockJobRepo) DeleteJob(ctx context.Context, id int64) (bool, error) {
	for i := range m.Jobs {
		if m.Jobs[i].ID == id {
			m.Jobs = append(m.Jobs[:i], m.Jobs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type MockInquiryRepo struct {
	Inquiries []models.Inquiry
	nextID    int64
	CreateErr error
	ListErr   error
}

func (m *MockInquiryRepo) CreateInquiry(ctx context.Context, i *models.Inquiry) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.nextID++
	stored := *i
	stored.ID = m.nextID
	stored.CreatedAt = m.nextID
	if stored.Status == "" {
		stored.Status = models.InquiryStatusNew
	}
	m.Inquiries = append(m.Inquiries, stored)
	return stored.ID, nil
}

func (m *MockInquiryRepo) GetInquiry(ctx context.Context, id int64) (*models.Inquiry, error) {
	for i := range m.Inquiries {
		if m.Inquiries[i].ID == id {
			out := m.Inquiries[i]
			return &out, nil
		}
	}
	return nil, nil
}

func (m *MockInquiryRepo) ListInquiries(ctx context.Context, status string) ([]models.Inquiry, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.Inquiry
	for i := len(m.Inquiries) - 1; i >= 0; i-- {
		inq := m.Inquiries[i]
		if status != "" && inq.Status != status {
			continue
		}
		out = append(out, inq)
	}
	return out, nil
}

func (m *MockInquiryRepo) UpdateInquiryStatus(ctx context.Context, id int64, status string) (*models.Inquiry, error) {
	for i := range m.Inquiries {
		if m.Inquiries[i].ID == id {
			m.Inquiries[i].Status = status
			out := m.Inquiries[i]
			return &out, nil
		}
	}
	return nil, nil
}

func (m *MockInquiryRepo) DeleteInquiry(ctx context.Context, id int64) (bool, error) {
	for i := range m.Inquiries {
		if m.Inquiries[i].ID == id {
			m.Inquiries = append(m.Inquiries[:i], m.Inquiries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type MockAdminRepo struct {
	Stored    *models.Admin
	GetErr    error
	CreateErr error
}

func (m *MockAdminRepo) CreateAdmin(ctx context.Context, a *models.Admin) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.Stored = &models.Admin{ID: 1, Email: a.Email, PasswordHash: a.PasswordHash}
	return 1, nil
}

func (m *MockAdminRepo) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Stored != nil && m.Stored.Email == email {
		return m.Stored, nil
	}
	return nil, nil
}
