package data

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirdanish6594/Rentr/internal/domain/model"
	"github.com/mirdanish6594/Rentr/internal/testutil"
)

func createTestJob(t *testing.T, db *sql.DB, title string) *model.Job {
	t.Helper()
	repo := NewJobRepo(db)
	job, err := repo.Create(context.Background(), &model.CreateJobRequest{
		Title:       title,
		Type:        "Plumbing",
		Description: "Test job description",
		Budget:      500,
	})
	require.NoError(t, err)
	return job
}

func TestJobRepo_Create_Defaults(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		job := createTestJob(t, db, "Fix leaking tap")

		assert.NotZero(t, job.ID)
		assert.Equal(t, model.JobStatusOpen, job.Status)
		assert.Nil(t, job.AssignedTo)
		assert.NotZero(t, job.CreatedAt)
		assert.Equal(t, job.CreatedAt, job.UpdatedAt)
	})
}

func TestJobRepo_Create_Invalid(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewJobRepo(db)
		_, err := repo.Create(context.Background(), &model.CreateJobRequest{
			Title: "", Type: "Plumbing", Description: "x", Budget: 10,
		})
		require.Error(t, err)
	})
}

func TestJobRepo_List_NewestFirst(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		first := createTestJob(t, db, "First posted")
		second := createTestJob(t, db, "Second posted")

		repo := NewJobRepo(db)
		jobs, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, jobs, 2)
		assert.Equal(t, second.ID, jobs[0].ID)
		assert.Equal(t, first.ID, jobs[1].ID)
	})
}

func TestJobRepo_GetByID_NotFound(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewJobRepo(db)
		_, err := repo.GetByID(context.Background(), 999999)
		require.ErrorIs(t, err, ErrJobNotFound)
	})
}

func TestJobRepo_Update_SkipsFalsyValues(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		job := createTestJob(t, db, "Original title")
		repo := NewJobRepo(db)

		empty := ""
		zero := int64(0)
		newTitle := "Renovated title"
		updated, err := repo.Update(context.Background(), job.ID, model.UpdateJobRequest{
			Title:       &newTitle,
			Description: &empty,
			Budget:      &zero,
		})
		require.NoError(t, err)

		assert.Equal(t, "Renovated title", updated.Title)
		// Falsy values leave the existing columns untouched.
		assert.Equal(t, job.Description, updated.Description)
		assert.Equal(t, job.Budget, updated.Budget)
	})
}

func TestJobRepo_Update_AllFalsyStillChecksExistence(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewJobRepo(db)

		empty := ""
		_, err := repo.Update(context.Background(), 999999, model.UpdateJobRequest{Title: &empty})
		require.ErrorIs(t, err, ErrJobNotFound)
	})
}

func TestJobRepo_Delete(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		job := createTestJob(t, db, "To be removed")
		repo := NewJobRepo(db)

		deleted, err := repo.Delete(context.Background(), job.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(context.Background(), job.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestJobRepo_Delete_CascadesApplicantsAndInvoice(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		job := createTestJob(t, db, "Cascade target")
		createTestApplicant(t, db, job.ID, "Aisha Khan")

		invoiceRepo := NewInvoiceRepo(db)
		_, err := invoiceRepo.CreateForJob(context.Background(), invoiceParams(job.ID, 500))
		require.NoError(t, err)

		jobRepo := NewJobRepo(db)
		deleted, err := jobRepo.Delete(context.Background(), job.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		applicants, err := NewApplicantRepo(db).ListByJobIDs(context.Background(), []int64{job.ID})
		require.NoError(t, err)
		assert.Empty(t, applicants)

		_, err = invoiceRepo.GetByJobID(context.Background(), job.ID)
		require.ErrorIs(t, err, ErrInvoiceNotFound)
	})
}

func TestJobRepo_SetAssignment(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		job := createTestJob(t, db, "Needs a pro")
		repo := NewJobRepo(db)

		ok, err := repo.SetAssignment(context.Background(), job.ID, "Danish Mir")
		require.NoError(t, err)
		require.True(t, ok)

		got, err := repo.GetByID(context.Background(), job.ID)
		require.NoError(t, err)
		assert.Equal(t, model.JobStatusAssigned, got.Status)
		require.NotNil(t, got.AssignedTo)
		assert.Equal(t, "Danish Mir", *got.AssignedTo)

		ok, err = repo.SetAssignment(context.Background(), 999999, "Danish Mir")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestJobRepo_SetStatus_ReopenClearsAssignment(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		job := createTestJob(t, db, "Assigned then reopened")
		repo := NewJobRepo(db)

		ok, err := repo.SetAssignment(context.Background(), job.ID, "Aisha Khan")
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = repo.SetStatus(context.Background(), job.ID, model.JobStatusOpen)
		require.NoError(t, err)
		require.True(t, ok)

		got, err := repo.GetByID(context.Background(), job.ID)
		require.NoError(t, err)
		assert.Equal(t, model.JobStatusOpen, got.Status)
		assert.Nil(t, got.AssignedTo)
	})
}

func TestJobRepo_UpdateStampsUpdatedAt(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		tp := NewFixedTimeProvider(testutil.TestTime())
		repo := NewJobRepoWithTimeProvider(db, tp)

		job, err := repo.Create(context.Background(), &model.CreateJobRequest{
			Title: "Clockwork", Type: "Electrical", Description: "x", Budget: 100,
		})
		require.NoError(t, err)

		tp.AddTime(2 * time.Hour)
		budget := int64(250)
		updated, err := repo.Update(context.Background(), job.ID, model.UpdateJobRequest{Budget: &budget})
		require.NoError(t, err)

		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
		assert.Equal(t, int64(250), updated.Budget)
	})
}
