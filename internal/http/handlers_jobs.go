// Package httpx provides HTTP handlers and utilities for the Rentr marketplace API.
package httpx

import (
	"errors"
	"net/http"

	"github.com/mirdanish6594/Rentr/internal/data"
	"github.com/mirdanish6594/Rentr/internal/domain/model"
	apperrors "github.com/mirdanish6594/Rentr/internal/errors"
	"github.com/mirdanish6594/Rentr/internal/service"
)

// JobHandlers provides HTTP handlers for job-related operations.
type JobHandlers struct {
	Svc *service.JobService
}

// ListJobs handles HTTP requests to list all jobs with nested applicants and invoices.
func (h *JobHandlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Svc.List(r.Context())
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}
	WriteJSON(w, http.StatusOK, jobs)
}

// CreateJob handles HTTP requests to post a new job.
func (h *JobHandlers) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req model.CreateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		if apperrors.IsValidation(err) || isValidationError(err) {
			WriteError(w, ErrorParams{Code: http.StatusUnprocessableEntity, ErrCode: "validation_failed", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusCreated, job)
}

// UpdateJob handles HTTP requests to partially update a job.
func (h *JobHandlers) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDPath(w, r)
	if !ok {
		return
	}

	var req model.UpdateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		h.writeJobError(w, err, "update_failed")
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// DeleteJob handles HTTP requests to delete a job and everything hanging off it.
func (h *JobHandlers) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDPath(w, r)
	if !ok {
		return
	}

	deleted, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "delete_failed", Err: err})
		return
	}
	if !deleted {
		WriteError(
			w,
			ErrorParams{Code: http.StatusNotFound, ErrCode: "job_not_found", Err: data.ErrJobNotFound},
		)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Apply handles HTTP requests to submit a bid against a job.
func (h *JobHandlers) Apply(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDPath(w, r)
	if !ok {
		return
	}

	var req model.ApplyRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	applicant, err := h.Svc.Apply(r.Context(), id, &req)
	if err != nil {
		h.writeJobError(w, err, "apply_failed")
		return
	}
	WriteJSON(w, http.StatusCreated, applicant)
}

// Assign handles HTTP requests to assign a contractor to a job.
func (h *JobHandlers) Assign(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDPath(w, r)
	if !ok {
		return
	}

	var req model.AssignJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.Assign(r.Context(), id, &req); err != nil {
		h.writeJobError(w, err, "assign_failed")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// UpdateStatus handles HTTP requests to move a job through its lifecycle.
func (h *JobHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDPath(w, r)
	if !ok {
		return
	}

	var req model.UpdateStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.UpdateStatus(r.Context(), id, &req); err != nil {
		h.writeJobError(w, err, "status_failed")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// CreateInvoice handles HTTP requests to invoice a job.
func (h *JobHandlers) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDPath(w, r)
	if !ok {
		return
	}

	var req model.CreateInvoiceRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if _, err := h.Svc.CreateInvoice(r.Context(), id, &req); err != nil {
		h.writeJobError(w, err, "invoice_failed")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Pay handles HTTP requests to mark a job paid.
func (h *JobHandlers) Pay(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDPath(w, r)
	if !ok {
		return
	}

	if err := h.Svc.Pay(r.Context(), id); err != nil {
		h.writeJobError(w, err, "pay_failed")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// writeJobError maps service and data layer errors to HTTP responses.
// fallbackCode names the operation for otherwise-unclassified failures.
func (h *JobHandlers) writeJobError(w http.ResponseWriter, err error, fallbackCode string) {
	switch {
	case errors.Is(err, data.ErrJobNotFound):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "job_not_found", Err: err})
	case errors.Is(err, data.ErrInvoiceExists):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "invoice_exists", Err: err})
	case errors.Is(err, data.ErrInvoiceNotFound):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "invoice_not_found", Err: err})
	case apperrors.IsNotFound(err):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: err})
	case apperrors.IsConflict(err):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "conflict", Err: err})
	case apperrors.IsValidation(err) || isValidationError(err):
		WriteError(w, ErrorParams{Code: http.StatusUnprocessableEntity, ErrCode: "validation_failed", Err: err})
	case apperrors.IsForeignKey(err):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "job_not_found", Err: err})
	default:
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: fallbackCode, Err: err})
	}
}
