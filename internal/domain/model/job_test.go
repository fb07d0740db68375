package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobStatus_Valid(t *testing.T) {
	for _, s := range []JobStatus{
		JobStatusOpen, JobStatusAssigned, JobStatusInProgress,
		JobStatusCompleted, JobStatusInvoiced, JobStatusPaid,
	} {
		assert.True(t, s.Valid(), "expected %s to be valid", s)
	}
	assert.False(t, JobStatus("Pending").Valid())
	assert.False(t, JobStatus("").Valid())
}

func TestJobStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from JobStatus
		to   JobStatus
		want bool
	}{
		{"open to assigned", JobStatusOpen, JobStatusAssigned, true},
		{"open to paid skips lifecycle", JobStatusOpen, JobStatusPaid, false},
		{"assigned to in progress", JobStatusAssigned, JobStatusInProgress, true},
		{"assigned back to open", JobStatusAssigned, JobStatusOpen, true},
		{"in progress to completed", JobStatusInProgress, JobStatusCompleted, true},
		{"in progress back to assigned", JobStatusInProgress, JobStatusAssigned, true},
		{"completed to invoiced", JobStatusCompleted, JobStatusInvoiced, true},
		{"completed back to in progress", JobStatusCompleted, JobStatusInProgress, true},
		{"invoiced to paid", JobStatusInvoiced, JobStatusPaid, true},
		{"invoiced back to completed", JobStatusInvoiced, JobStatusCompleted, false},
		{"paid is terminal", JobStatusPaid, JobStatusOpen, false},
		{"no self transition", JobStatusOpen, JobStatusOpen, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestParseJobStatus(t *testing.T) {
	status, ok := ParseJobStatus("assigned")
	require.True(t, ok)
	assert.Equal(t, JobStatusAssigned, status)

	status, ok = ParseJobStatus("  InProgress ")
	require.True(t, ok)
	assert.Equal(t, JobStatusInProgress, status)

	_, ok = ParseJobStatus("shipped")
	assert.False(t, ok)

	_, ok = ParseJobStatus("")
	assert.False(t, ok)
}

func TestCreateJobRequest_Validate(t *testing.T) {
	valid := CreateJobRequest{
		Title:       "Fix leaking kitchen tap",
		Type:        "Plumbing",
		Description: "Tap drips constantly, needs a new washer or cartridge.",
		Budget:      150,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(r *CreateJobRequest)
		wantErr string
	}{
		{"missing title", func(r *CreateJobRequest) { r.Title = "  " }, "title is required"},
		{"missing type", func(r *CreateJobRequest) { r.Type = "" }, "type is required"},
		{"missing description", func(r *CreateJobRequest) { r.Description = "" }, "description is required"},
		{"negative budget", func(r *CreateJobRequest) { r.Budget = -1 }, "budget cannot be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("zero budget allowed", func(t *testing.T) {
		req := valid
		req.Budget = 0
		assert.NoError(t, req.Validate())
	})

	t.Run("over-long title", func(t *testing.T) {
		req := valid
		long := make([]rune, 256)
		for i := range long {
			long[i] = 'x'
		}
		req.Title = string(long)
		require.Error(t, req.Validate())
	})
}

func TestUpdateJobRequest_HasUpdates(t *testing.T) {
	empty := ""
	zero := int64(0)
	title := "New title"
	budget := int64(900)

	assert.False(t, (&UpdateJobRequest{}).HasUpdates())
	// Falsy values do not count as updates.
	assert.False(t, (&UpdateJobRequest{Title: &empty, Budget: &zero}).HasUpdates())
	assert.True(t, (&UpdateJobRequest{Title: &title}).HasUpdates())
	assert.True(t, (&UpdateJobRequest{Budget: &budget}).HasUpdates())
}

func TestUpdateStatusRequest_Validate(t *testing.T) {
	status, err := (&UpdateStatusRequest{Status: "paid"}).Validate()
	require.NoError(t, err)
	assert.Equal(t, JobStatusPaid, status)

	_, err = (&UpdateStatusRequest{Status: "Cancelled"}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestAssignJobRequest_Validate(t *testing.T) {
	require.NoError(t, (&AssignJobRequest{ContractorName: "Aisha Khan"}).Validate())
	require.Error(t, (&AssignJobRequest{ContractorName: "   "}).Validate())
}
