package model

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Invoice is a billing record generated once a Job is marked invoiced.
type Invoice struct {
	ID        string    `json:"id"         db:"id"`
	JobID     int64     `json:"job_id"     db:"job_id"`
	Amount    int64     `json:"amount"     db:"amount"`
	Notes     string    `json:"notes"      db:"notes"`
	Date      string    `json:"date"       db:"date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateInvoiceRequest represents parameters to invoice a Job.
type CreateInvoiceRequest struct {
	Amount int64  `json:"amount"`
	Notes  string `json:"notes,omitempty"`
}

// Validate validates CreateInvoiceRequest.
func (r *CreateInvoiceRequest) Validate() error {
	if r.Amount <= 0 {
		return errors.New("amount must be greater than zero")
	}
	return nil
}

// NewInvoiceID builds an invoice identifier from the creation time plus a
// random suffix. The suffix keeps two invoices created within the same
// second from colliding.
func NewInvoiceID(now time.Time) string {
	u := uuid.New()
	return fmt.Sprintf("INV-%d-%s", now.Unix(), hex.EncodeToString(u[:4]))
}
