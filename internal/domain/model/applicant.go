package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PlaceholderContractorID is recorded on applicants until contractor accounts
// carry real identity. The apply endpoint has no caller identity to resolve.
const PlaceholderContractorID int64 = 101

// Applicant is a bid submitted by a contractor against a Job.
type Applicant struct {
	ID           int64     `json:"id"            db:"id"`
	JobID        int64     `json:"job_id"        db:"job_id"`
	ContractorID int64     `json:"contractor_id" db:"contractor_id"`
	Name         string    `json:"name"          db:"name"`
	Bid          int64     `json:"bid"           db:"bid"`
	Proposal     string    `json:"proposal"      db:"proposal"`
	Date         string    `json:"date"          db:"date"`
	CreatedAt    time.Time `json:"created_at"    db:"created_at"`
}

// Bid is an integer amount that accepts both JSON number and JSON string
// encodings ("450" and 450 are equivalent on the wire). A value that cannot
// be coerced to an integer fails decoding, which surfaces to the caller as a
// client error rather than a server error.
type Bid int64

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bid) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("bid: %w", err)
		}
		raw = strings.TrimSpace(s)
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("bid must be an integer, got %q", raw)
	}
	*b = Bid(n)
	return nil
}

// ApplyRequest represents parameters to apply for a Job.
type ApplyRequest struct {
	Bid            Bid    `json:"bid"`
	Proposal       string `json:"proposal"`
	ContractorName string `json:"contractorName"`
}

// Validate validates ApplyRequest.
func (r *ApplyRequest) Validate() error {
	if strings.TrimSpace(r.ContractorName) == "" {
		return errors.New("contractorName is required and cannot be empty")
	}
	if r.Bid < 0 {
		return errors.New("bid cannot be negative")
	}
	return nil
}

// ApplicantDateFormat is the day-granularity layout stored on applicants.
// The column stays string-typed for wire compatibility with existing clients.
const ApplicantDateFormat = "2006-01-02"
