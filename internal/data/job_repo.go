package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/mirdanish6594/Rentr/internal/data/pgxutil"
	"github.com/mirdanish6594/Rentr/internal/domain/model"
)

// JobRepo provides database operations for jobs.
type JobRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewJobRepo creates a new JobRepo with real time provider.
func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewJobRepoWithTimeProvider creates a new JobRepo with a custom time provider (useful for tests).
func NewJobRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *JobRepo {
	return &JobRepo{DB: db, timeProvider: tp}
}

// SQL query constants for static queries (no dynamic WHERE/SET clauses).
const (
	jobColumns = `id, title, type, description, budget, status, assigned_to, created_at, updated_at`

	jobGetByIDQuery = `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE id = $1`

	jobListQuery = `
		SELECT ` + jobColumns + `
		FROM jobs
		ORDER BY id DESC`

	jobInsertQuery = `
		INSERT INTO jobs (title, type, description, budget, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING ` + jobColumns
)

// Create inserts a new job. Status starts Open with no assignment.
func (r *JobRepo) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	if req == nil {
		return nil, errors.New("create job request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, jobInsertQuery,
			strings.TrimSpace(req.Title),
			strings.TrimSpace(req.Type),
			req.Description,
			req.Budget,
			model.JobStatusOpen,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[model.Job])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a job by ID.
func (r *JobRepo) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	var job model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, jobGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		job, err = pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[model.Job])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job by ID: %w", err)
	}
	return &job, nil
}

// List retrieves all jobs ordered by id descending (newest first).
func (r *JobRepo) List(ctx context.Context) ([]*model.Job, error) {
	var rowsOut []model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, jobListQuery)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByNameLax[model.Job])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	res := make([]*model.Job, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update applies a partial update to a job. Fields carrying falsy values
// (empty string, zero budget) are skipped, not written.
func (r *JobRepo) Update(ctx context.Context, id int64, req model.UpdateJobRequest) (*model.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(req)
		if setClause == "" {
			// Nothing to apply; return the current row so the caller
			// still gets not-found for a bad id.
			rows, err := conn.Query(ctx, jobGetByIDQuery, id)
			if err != nil {
				return err
			}
			defer rows.Close()
			var e error
			out, e = pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[model.Job])
			return e
		}
		args = append(args, id)
		query := "UPDATE jobs SET " + setClause +
			" WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING " + jobColumns
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[model.Job])
		return e
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return &out, nil
}

// buildUpdateClause builds the SQL SET clause and args for updating a job.
// Only truthy values make it into the clause.
func (r *JobRepo) buildUpdateClause(req model.UpdateJobRequest) (string, []any) {
	setParts := make([]string, 0, 5)
	args := make([]any, 0, 5)
	nextIdx := func() int { return len(args) + 1 }

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		setParts = append(setParts, fmt.Sprintf("title = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Title))
	}
	if req.Type != nil && strings.TrimSpace(*req.Type) != "" {
		setParts = append(setParts, fmt.Sprintf("type = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Type))
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) != "" {
		setParts = append(setParts, fmt.Sprintf("description = $%d", nextIdx()))
		args = append(args, *req.Description)
	}
	if req.Budget != nil && *req.Budget != 0 {
		setParts = append(setParts, fmt.Sprintf("budget = $%d", nextIdx()))
		args = append(args, *req.Budget)
	}

	if len(setParts) == 0 {
		return "", nil
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())
	return strings.Join(setParts, ", "), args
}

// Delete deletes a job by ID. Applicants and the invoice cascade away with it.
func (r *JobRepo) Delete(ctx context.Context, id int64) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete job: %w", err)
	}
	return affected > 0, nil
}

// SetAssignment marks the job Assigned and records the contractor name.
func (r *JobRepo) SetAssignment(ctx context.Context, id int64, contractorName string) (bool, error) {
	return r.exec(ctx,
		`UPDATE jobs SET status = $1, assigned_to = $2, updated_at = $3 WHERE id = $4`,
		model.JobStatusAssigned, strings.TrimSpace(contractorName), r.timeProvider.Now().UTC(), id,
	)
}

// SetStatus overwrites the job status. Moving back to Open clears the
// assignment so assigned_to stays null outside the assigned states.
func (r *JobRepo) SetStatus(ctx context.Context, id int64, status model.JobStatus) (bool, error) {
	if status == model.JobStatusOpen {
		return r.exec(ctx,
			`UPDATE jobs SET status = $1, assigned_to = NULL, updated_at = $2 WHERE id = $3`,
			status, r.timeProvider.Now().UTC(), id,
		)
	}
	return r.exec(ctx,
		`UPDATE jobs SET status = $1, updated_at = $2 WHERE id = $3`,
		status, r.timeProvider.Now().UTC(), id,
	)
}

// exec runs a row-targeted statement and reports whether a row was touched.
func (r *JobRepo) exec(ctx context.Context, query string, args ...any) (bool, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to update job: %w", err)
	}
	return affected > 0, nil
}
