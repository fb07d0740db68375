package service

import (
	"context"

	"github.com/mirdanish6594/Rentr/internal/core"
	"github.com/mirdanish6594/Rentr/internal/data"
	"github.com/mirdanish6594/Rentr/internal/domain/model"
	apperrors "github.com/mirdanish6594/Rentr/internal/errors"
)

// JobServiceOptions groups dependencies for JobService.
type JobServiceOptions struct {
	Jobs       core.JobRepository
	Applicants core.ApplicantRepository
	Invoices   core.InvoiceRepository
}

// JobService orchestrates the job lifecycle: posting, bidding, assignment,
// status transitions and billing.
type JobService struct {
	jobs       core.JobRepository
	applicants core.ApplicantRepository
	invoices   core.InvoiceRepository
}

// NewJobService constructs a new JobService.
func NewJobService(opts JobServiceOptions) *JobService {
	return &JobService{
		jobs:       opts.Jobs,
		applicants: opts.Applicants,
		invoices:   opts.Invoices,
	}
}

// List returns every job ordered by id descending, with applicants and the
// invoice (if any) attached.
func (s *JobService) List(ctx context.Context) ([]*model.Job, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(jobs))
	byID := make(map[int64]*model.Job, len(jobs))
	for i, job := range jobs {
		ids[i] = job.ID
		job.Applicants = []*model.Applicant{}
		byID[job.ID] = job
	}

	applicants, err := s.applicants.ListByJobIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, a := range applicants {
		if job, ok := byID[a.JobID]; ok {
			job.Applicants = append(job.Applicants, a)
		}
	}

	invoices, err := s.invoices.ListByJobIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, inv := range invoices {
		if job, ok := byID[inv.JobID]; ok {
			job.Invoice = inv
		}
	}

	return jobs, nil
}

// Create posts a new job. Status starts Open with no assignment.
func (s *JobService) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	job, err := s.jobs.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	job.Applicants = []*model.Applicant{}
	return job, nil
}

// Update applies a partial update to a job. Falsy field values are ignored.
func (s *JobService) Update(ctx context.Context, id int64, req model.UpdateJobRequest) (*model.Job, error) {
	job, err := s.jobs.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	job.Applicants = []*model.Applicant{}
	if applicants, listErr := s.applicants.ListByJobIDs(ctx, []int64{job.ID}); listErr == nil {
		job.Applicants = append(job.Applicants, applicants...)
	}
	return job, nil
}

// Delete removes a job and everything hanging off it.
func (s *JobService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.jobs.Delete(ctx, id)
}

// Apply records a bid against a job. There is no caller identity, so the
// applicant carries the placeholder contractor id. Duplicate submissions
// create duplicate rows; the API has no idempotency keys.
func (s *JobService) Apply(ctx context.Context, jobID int64, req *model.ApplyRequest) (*model.Applicant, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}

	return s.applicants.Create(ctx, core.CreateApplicantParams{
		JobID:        jobID,
		ContractorID: model.PlaceholderContractorID,
		Name:         req.ContractorName,
		Bid:          int64(req.Bid),
		Proposal:     req.Proposal,
	})
}

// Assign marks a job Assigned to the named contractor. The name is not
// checked against the job's applicants; owners may assign anyone.
func (s *JobService) Assign(ctx context.Context, jobID int64, req *model.AssignJobRequest) error {
	if err := req.Validate(); err != nil {
		return apperrors.Validation(err.Error())
	}

	ok, err := s.jobs.SetAssignment(ctx, jobID, req.ContractorName)
	if err != nil {
		return err
	}
	if !ok {
		return data.ErrJobNotFound
	}
	return nil
}

// UpdateStatus moves a job to the requested lifecycle state, validating the
// move against the transition table.
func (s *JobService) UpdateStatus(ctx context.Context, jobID int64, req *model.UpdateStatusRequest) error {
	status, err := req.Validate()
	if err != nil {
		return apperrors.Validation(err.Error())
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if !job.Status.CanTransitionTo(status) {
		return apperrors.Validationf("cannot move job from %s to %s", job.Status, status)
	}

	ok, err := s.jobs.SetStatus(ctx, jobID, status)
	if err != nil {
		return err
	}
	if !ok {
		return data.ErrJobNotFound
	}
	return nil
}

// CreateInvoice generates an invoice for a job and flips it to Invoiced.
// The job's prior status is not checked, but a job can only ever carry one
// invoice.
func (s *JobService) CreateInvoice(ctx context.Context, jobID int64, req *model.CreateInvoiceRequest) (*model.Invoice, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}

	return s.invoices.CreateForJob(ctx, core.CreateInvoiceParams{
		JobID:  jobID,
		Amount: req.Amount,
		Notes:  req.Notes,
	})
}

// Pay marks a job Paid. There is no ledger and no gateway; this is a status
// flip. Re-paying a paid job is refused.
func (s *JobService) Pay(ctx context.Context, jobID int64) error {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.Status == model.JobStatusPaid {
		return apperrors.Conflictf("job %d is already paid", jobID)
	}

	ok, err := s.jobs.SetStatus(ctx, jobID, model.JobStatusPaid)
	if err != nil {
		return err
	}
	if !ok {
		return data.ErrJobNotFound
	}
	return nil
}
