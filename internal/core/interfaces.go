// Package core defines the repository interfaces (ports) that the service
// layer depends on. Concrete implementations live in internal/data.
package core

import (
	"context"
	"time"

	"github.com/mirdanish6594/Rentr/internal/domain/model"
)

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error)
	GetByID(ctx context.Context, id int64) (*model.Job, error)
	// List returns all jobs ordered by id descending. Applicants and
	// invoices are attached by the service layer.
	List(ctx context.Context) ([]*model.Job, error)
	Update(ctx context.Context, id int64, req model.UpdateJobRequest) (*model.Job, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// SetAssignment marks the job Assigned and records the contractor name.
	SetAssignment(ctx context.Context, id int64, contractorName string) (bool, error)
	// SetStatus overwrites the job status. Moving back to Open clears the
	// assignment so assigned_to stays null outside the assigned states.
	SetStatus(ctx context.Context, id int64, status model.JobStatus) (bool, error)
}

// CreateApplicantParams holds the fields for inserting an applicant row.
// The application date is stamped by the repository at insert time.
type CreateApplicantParams struct {
	JobID        int64
	ContractorID int64
	Name         string
	Bid          int64
	Proposal     string
}

// ApplicantRepository defines the interface for applicant data operations.
type ApplicantRepository interface {
	Create(ctx context.Context, params CreateApplicantParams) (*model.Applicant, error)
	ListByJobIDs(ctx context.Context, jobIDs []int64) ([]*model.Applicant, error)
}

// CreateInvoiceParams holds the fields for inserting an invoice row.
// The identifier and date are stamped by the repository at insert time.
type CreateInvoiceParams struct {
	JobID  int64
	Amount int64
	Notes  string
}

// InvoiceRepository defines the interface for invoice data operations.
type InvoiceRepository interface {
	// CreateForJob inserts the invoice and flips the job to Invoiced in a
	// single transaction.
	CreateForJob(ctx context.Context, params CreateInvoiceParams) (*model.Invoice, error)
	GetByJobID(ctx context.Context, jobID int64) (*model.Invoice, error)
	ListByJobIDs(ctx context.Context, jobIDs []int64) ([]*model.Invoice, error)
}

// ContractorRepository defines the interface for contractor profile lookups.
type ContractorRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Contractor, error)
}

// CacheRepository defines the interface for byte-value cache operations.
type CacheRepository interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Get returns nil bytes with nil error on a cache miss.
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) (bool, error)
}
