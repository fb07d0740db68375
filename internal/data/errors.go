package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// ErrJobNotFound is returned when a job is not found.
	ErrJobNotFound = errors.New("job not found")

	// ErrInvoiceNotFound is returned when a job has no invoice.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrInvoiceExists is returned when attempting to invoice a job that already has an invoice.
	ErrInvoiceExists = errors.New("job already has an invoice")

	// ErrContractorNotFound is returned when a contractor profile is not found.
	ErrContractorNotFound = errors.New("contractor not found")
)
