package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mirdanish6594/Rentr/internal/core"
	"github.com/mirdanish6594/Rentr/internal/data/pgxutil"
	"github.com/mirdanish6594/Rentr/internal/domain/model"
)

// InvoiceRepo provides database operations for invoices.
type InvoiceRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewInvoiceRepo creates a new InvoiceRepo with real time provider.
func NewInvoiceRepo(db *sql.DB) *InvoiceRepo {
	return &InvoiceRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewInvoiceRepoWithTimeProvider creates a new InvoiceRepo with a custom time provider (useful for tests).
func NewInvoiceRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *InvoiceRepo {
	return &InvoiceRepo{DB: db, timeProvider: tp}
}

const (
	invoiceColumns = `id, job_id, amount, notes, date, created_at`

	invoiceInsertQuery = `
		INSERT INTO invoices (id, job_id, amount, notes, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + invoiceColumns

	invoiceGetByJobIDQuery = `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE job_id = $1`

	invoiceListByJobIDsQuery = `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE job_id = ANY($1)`
)

// CreateForJob inserts the invoice and flips the job to Invoiced in a single
// transaction. The invoice inherits a collision-safe identifier derived from
// the creation time. The UNIQUE constraint on job_id turns a double-invoice
// race into ErrInvoiceExists.
func (r *InvoiceRepo) CreateForJob(ctx context.Context, params core.CreateInvoiceParams) (*model.Invoice, error) {
	now := r.timeProvider.Now().UTC()
	var out model.Invoice
	err := pgxutil.WithPgxTx(ctx, r.DB, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, invoiceInsertQuery,
			model.NewInvoiceID(now),
			params.JobID,
			params.Amount,
			params.Notes,
			now.Format(time.RFC3339),
			now,
		)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Invoice])
		if err != nil {
			return err
		}

		ct, err := tx.Exec(ctx,
			`UPDATE jobs SET status = $1, updated_at = $2 WHERE id = $3`,
			model.JobStatusInvoiced, now, params.JobID,
		)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			return ErrJobNotFound
		}
		return nil
	})
	if err != nil {
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// GetByJobID retrieves the invoice for a job.
func (r *InvoiceRepo) GetByJobID(ctx context.Context, jobID int64) (*model.Invoice, error) {
	var invoice model.Invoice
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, invoiceGetByJobIDQuery, jobID)
		if err != nil {
			return err
		}
		defer rows.Close()
		invoice, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Invoice])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice by job ID: %w", err)
	}
	return &invoice, nil
}

// ListByJobIDs retrieves the invoices belonging to the given jobs.
func (r *InvoiceRepo) ListByJobIDs(ctx context.Context, jobIDs []int64) ([]*model.Invoice, error) {
	if len(jobIDs) == 0 {
		return nil, nil
	}

	var rowsOut []model.Invoice
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, invoiceListByJobIDsQuery, jobIDs)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Invoice])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	res := make([]*model.Invoice, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

func (r *InvoiceRepo) mapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrJobNotFound) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrInvoiceExists
		case pgerrcode.ForeignKeyViolation:
			return ErrJobNotFound
		}
	}
	return fmt.Errorf("failed to create invoice: %w", err)
}
