package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirdanish6594/Rentr/internal/core"
	"github.com/mirdanish6594/Rentr/internal/domain/model"
	"github.com/mirdanish6594/Rentr/internal/testutil"
)

func createTestApplicant(t *testing.T, db *sql.DB, jobID int64, name string) *model.Applicant {
	t.Helper()
	repo := NewApplicantRepo(db)
	applicant, err := repo.Create(context.Background(), core.CreateApplicantParams{
		JobID:        jobID,
		ContractorID: model.PlaceholderContractorID,
		Name:         name,
		Bid:          1200,
		Proposal:     "I can start tomorrow.",
	})
	require.NoError(t, err)
	return applicant
}

func TestApplicantRepo_Create_StampsDate(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		job := createTestJob(t, db, "Bathroom refit")

		repo := NewApplicantRepoWithTimeProvider(db, NewFixedTimeProvider(testutil.TestTime()))
		applicant, err := repo.Create(context.Background(), core.CreateApplicantParams{
			JobID:        job.ID,
			ContractorID: model.PlaceholderContractorID,
			Name:         "Aisha Khan",
			Bid:          950,
			Proposal:     "Ten years of tiling experience.",
		})
		require.NoError(t, err)

		assert.NotZero(t, applicant.ID)
		assert.Equal(t, job.ID, applicant.JobID)
		assert.Equal(t, model.PlaceholderContractorID, applicant.ContractorID)
		assert.Equal(t, "Aisha Khan", applicant.Name)
		assert.Equal(t, int64(950), applicant.Bid)
		assert.Equal(t, "2024-01-01", applicant.Date)
	})
}

func TestApplicantRepo_Create_MissingJob(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewApplicantRepo(db)
		_, err := repo.Create(context.Background(), core.CreateApplicantParams{
			JobID:        999999,
			ContractorID: model.PlaceholderContractorID,
			Name:         "Nobody",
			Bid:          100,
			Proposal:     "x",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create applicant")
	})
}

func TestApplicantRepo_ListByJobIDs(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		first := createTestJob(t, db, "Fence repair")
		second := createTestJob(t, db, "Deck staining")

		createTestApplicant(t, db, first.ID, "Aisha Khan")
		createTestApplicant(t, db, first.ID, "Danish Mir")
		createTestApplicant(t, db, second.ID, "Ravi Patel")

		repo := NewApplicantRepo(db)
		applicants, err := repo.ListByJobIDs(context.Background(), []int64{first.ID})
		require.NoError(t, err)
		require.Len(t, applicants, 2)
		for _, a := range applicants {
			assert.Equal(t, first.ID, a.JobID)
		}

		applicants, err = repo.ListByJobIDs(context.Background(), []int64{first.ID, second.ID})
		require.NoError(t, err)
		assert.Len(t, applicants, 3)
	})
}

func TestApplicantRepo_ListByJobIDs_Empty(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewApplicantRepo(db)
		applicants, err := repo.ListByJobIDs(context.Background(), []int64{})
		require.NoError(t, err)
		assert.Nil(t, applicants)
	})
}
