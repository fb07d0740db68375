//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxJobTitleLen = 255
	maxJobTypeLen  = 100
)

// JobStatus is the lifecycle state of a job.
type JobStatus string

const (
	JobStatusOpen       JobStatus = "Open"
	JobStatusAssigned   JobStatus = "Assigned"
	JobStatusInProgress JobStatus = "InProgress"
	JobStatusCompleted  JobStatus = "Completed"
	JobStatusInvoiced   JobStatus = "Invoiced"
	JobStatusPaid       JobStatus = "Paid"
)

// jobStatusTransitions is the closed transition table for the generic status
// endpoint. Forward moves follow the billing lifecycle; a limited set of
// backward moves lets an owner unwind an assignment or reopen work.
var jobStatusTransitions = map[JobStatus][]JobStatus{
	JobStatusOpen:       {JobStatusAssigned},
	JobStatusAssigned:   {JobStatusInProgress, JobStatusOpen},
	JobStatusInProgress: {JobStatusCompleted, JobStatusAssigned},
	JobStatusCompleted:  {JobStatusInvoiced, JobStatusInProgress},
	JobStatusInvoiced:   {JobStatusPaid},
	JobStatusPaid:       {},
}

// Valid reports whether the status is a known lifecycle state.
func (s JobStatus) Valid() bool {
	_, ok := jobStatusTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is a legal lifecycle move.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, allowed := range jobStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseJobStatus normalizes a status string (case-insensitively) to its
// canonical form and reports whether it is a known state.
func ParseJobStatus(value string) (JobStatus, bool) {
	trimmed := strings.TrimSpace(value)
	for status := range jobStatusTransitions {
		if strings.EqualFold(trimmed, string(status)) {
			return status, true
		}
	}
	return "", false
}

// Job is a unit of work posted by a client for contractors to bid on.
// Applicants and Invoice are assembled by the service layer, not scanned
// from the jobs table.
type Job struct {
	ID          int64        `json:"id"          db:"id"`
	Title       string       `json:"title"       db:"title"`
	Type        string       `json:"type"        db:"type"`
	Description string       `json:"description" db:"description"`
	Budget      int64        `json:"budget"      db:"budget"`
	Status      JobStatus    `json:"status"      db:"status"`
	AssignedTo  *string      `json:"assigned_to" db:"assigned_to"`
	CreatedAt   time.Time    `json:"created_at"  db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"  db:"updated_at"`
	Applicants  []*Applicant `json:"applicants"  db:"-"`
	Invoice     *Invoice     `json:"invoice"     db:"-"`
}

// CreateJobRequest represents parameters to create a Job.
type CreateJobRequest struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Budget      int64  `json:"budget"`
}

// Validate validates CreateJobRequest.
func (r *CreateJobRequest) Validate() error {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return errors.New("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(title) > maxJobTitleLen {
		return errors.New("title cannot exceed 255 characters")
	}
	if strings.TrimSpace(r.Type) == "" {
		return errors.New("type is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Type) > maxJobTypeLen {
		return errors.New("type cannot exceed 100 characters")
	}
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("description is required and cannot be empty")
	}
	if r.Budget < 0 {
		return errors.New("budget cannot be negative")
	}
	return nil
}

// UpdateJobRequest represents parameters to partially update a Job.
//
// A field is only applied when it carries a truthy value: an explicit empty
// string or zero budget is ignored rather than written. This mirrors the
// long-standing API behavior that clients depend on; callers cannot clear a
// field through this endpoint.
type UpdateJobRequest struct {
	Title       *string `json:"title,omitempty"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
	Budget      *int64  `json:"budget,omitempty"`
}

// HasUpdates reports whether any field carries a value that would be applied.
func (r *UpdateJobRequest) HasUpdates() bool {
	if r.Title != nil && strings.TrimSpace(*r.Title) != "" {
		return true
	}
	if r.Type != nil && strings.TrimSpace(*r.Type) != "" {
		return true
	}
	if r.Description != nil && strings.TrimSpace(*r.Description) != "" {
		return true
	}
	if r.Budget != nil && *r.Budget != 0 {
		return true
	}
	return false
}

// Validate validates UpdateJobRequest. Falsy values are not an error, they
// are simply skipped; the request only fails on over-long values.
func (r *UpdateJobRequest) Validate() error {
	if r.Title != nil && utf8.RuneCountInString(*r.Title) > maxJobTitleLen {
		return errors.New("title cannot exceed 255 characters")
	}
	if r.Type != nil && utf8.RuneCountInString(*r.Type) > maxJobTypeLen {
		return errors.New("type cannot exceed 100 characters")
	}
	if r.Budget != nil && *r.Budget < 0 {
		return errors.New("budget cannot be negative")
	}
	return nil
}

// AssignJobRequest represents parameters to assign a contractor to a Job.
type AssignJobRequest struct {
	ContractorName string `json:"contractorName"`
}

// Validate validates AssignJobRequest.
func (r *AssignJobRequest) Validate() error {
	if strings.TrimSpace(r.ContractorName) == "" {
		return errors.New("contractorName is required and cannot be empty")
	}
	return nil
}

// UpdateStatusRequest represents parameters to move a Job through its lifecycle.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Validate parses the requested status against the known lifecycle states and
// returns the canonical form.
func (r *UpdateStatusRequest) Validate() (JobStatus, error) {
	status, ok := ParseJobStatus(r.Status)
	if !ok {
		return "", errors.New("status must be one of Open, Assigned, InProgress, Completed, Invoiced, Paid")
	}
	return status, nil
}
