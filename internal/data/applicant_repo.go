package data

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/mirdanish6594/Rentr/internal/core"
	"github.com/mirdanish6594/Rentr/internal/data/pgxutil"
	"github.com/mirdanish6594/Rentr/internal/domain/model"
)

// ApplicantRepo provides database operations for applicants.
type ApplicantRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewApplicantRepo creates a new ApplicantRepo with real time provider.
func NewApplicantRepo(db *sql.DB) *ApplicantRepo {
	return &ApplicantRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewApplicantRepoWithTimeProvider creates a new ApplicantRepo with a custom time provider (useful for tests).
func NewApplicantRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ApplicantRepo {
	return &ApplicantRepo{DB: db, timeProvider: tp}
}

const (
	applicantColumns = `id, job_id, contractor_id, name, bid, proposal, date, created_at`

	applicantInsertQuery = `
		INSERT INTO applicants (job_id, contractor_id, name, bid, proposal, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + applicantColumns

	applicantListByJobIDsQuery = `
		SELECT ` + applicantColumns + `
		FROM applicants
		WHERE job_id = ANY($1)
		ORDER BY id`
)

// Create inserts a new applicant row. The application date is stamped at day
// granularity, matching the string-typed wire format.
func (r *ApplicantRepo) Create(ctx context.Context, params core.CreateApplicantParams) (*model.Applicant, error) {
	now := r.timeProvider.Now().UTC()
	var out model.Applicant
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, applicantInsertQuery,
			params.JobID,
			params.ContractorID,
			strings.TrimSpace(params.Name),
			params.Bid,
			params.Proposal,
			now.Format(model.ApplicantDateFormat),
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Applicant])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create applicant: %w", err)
	}
	return &out, nil
}

// ListByJobIDs retrieves all applicants belonging to the given jobs.
func (r *ApplicantRepo) ListByJobIDs(ctx context.Context, jobIDs []int64) ([]*model.Applicant, error) {
	if len(jobIDs) == 0 {
		return nil, nil
	}

	var rowsOut []model.Applicant
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, applicantListByJobIDsQuery, jobIDs)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Applicant])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}

	res := make([]*model.Applicant, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
