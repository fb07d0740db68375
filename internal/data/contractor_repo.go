package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mirdanish6594/Rentr/internal/data/pgxutil"
	"github.com/mirdanish6594/Rentr/internal/domain/model"
)

// ContractorRepo provides database operations for contractor profiles.
type ContractorRepo struct {
	DB *sql.DB
}

// NewContractorRepo creates a new ContractorRepo.
func NewContractorRepo(db *sql.DB) *ContractorRepo {
	return &ContractorRepo{DB: db}
}

const contractorGetByIDQuery = `
	SELECT id, name, company, role, location, rating, reviews, email, phone,
	       bio, completed_jobs, skills, created_at
	FROM contractors
	WHERE id = $1`

// GetByID retrieves a contractor profile by ID.
func (r *ContractorRepo) GetByID(ctx context.Context, id int64) (*model.Contractor, error) {
	var contractor model.Contractor
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, contractorGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		contractor, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Contractor])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrContractorNotFound
		}
		return nil, fmt.Errorf("failed to get contractor by ID: %w", err)
	}
	return &contractor, nil
}
