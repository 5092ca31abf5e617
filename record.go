package spendtrack

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is a single expense entry.
//
// ID is assigned at creation and immutable thereafter. Description, Amount,
// Category and Date have been through the validation engine before a Record
// exists: a stored Record is always well formed.
type Record struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      Amount    `json:"amount"`
	Category    string    `json:"category"`
	Date        Date      `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Fields carries the user-editable fields of a record, as raw strings, before
// validation.
type Fields struct {
	Description string
	Amount      string
	Category    string
	Date        string
}

// fields returns the record's user-editable fields in their string form.
func (r Record) fields() Fields {
	return Fields{
		Description: r.Description,
		Amount:      r.Amount.String(),
		Category:    r.Category,
		Date:        r.Date.String(),
	}
}

// Patch is a partial update of a record. Nil members leave the corresponding
// field untouched.
type Patch struct {
	Description *string
	Amount      *string
	Category    *string
	Date        *string
}

// apply merges the patch onto f and returns the result.
func (p Patch) apply(f Fields) Fields {
	if p.Description != nil {
		f.Description = *p.Description
	}
	if p.Amount != nil {
		f.Amount = *p.Amount
	}
	if p.Category != nil {
		f.Category = *p.Category
	}
	if p.Date != nil {
		f.Date = *p.Date
	}
	return f
}

// newID generates a record id unique with overwhelming probability: a
// millisecond timestamp plus a random UUID suffix.
func newID(now time.Time) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("rec_%d_%s", now.UnixMilli(), suffix)
}
