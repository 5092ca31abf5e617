package spendtrack

import (
	"encoding/json"
	"io"
	"time"
)

// Export writes the full tracker state (records and settings) as indented
// JSON, the same shape as the persisted document so an export can be imported
// back verbatim.
func (r *Repository) Export(w io.Writer) error {
	r.mu.Lock()
	doc := document{Transactions: r.records, Settings: r.settings}
	r.mu.Unlock()
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// importEntry mirrors the Record JSON shape with everything optional, so a
// backup written by another tool can be probed field by field.
type importEntry struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Amount      *Amount    `json:"amount"`
	Category    string     `json:"category"`
	Date        Date       `json:"date"`
	CreatedAt   *time.Time `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

// Import replaces the whole record list with the transactions of an exported
// document. The top-level "transactions" value must be a JSON array, anything
// else is an *ImportError. Individual entries are screened rather than
// trusted: an entry missing its id, description or amount is dropped, the
// rest of the file still imports. Settings in the file, when present and
// valid, replace the current ones.
func (r *Repository) Import(reader io.Reader) (imported, dropped int, err error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return 0, 0, &ImportError{Reason: "unreadable input", Err: err}
	}

	var probe struct {
		Transactions json.RawMessage `json:"transactions"`
		Settings     *Settings       `json:"settings"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return 0, 0, &ImportError{Reason: "not a JSON document", Err: err}
	}
	if len(probe.Transactions) == 0 {
		return 0, 0, &ImportError{Reason: "missing transactions list"}
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(probe.Transactions, &entries); err != nil {
		return 0, 0, &ImportError{Reason: "transactions is not a list", Err: err}
	}

	records := make([]Record, 0, len(entries))
	for _, raw := range entries {
		var e importEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			dropped++
			continue
		}
		if e.ID == "" || e.Description == "" || e.Amount == nil {
			dropped++
			continue
		}
		rec := Record{
			ID:          e.ID,
			Description: e.Description,
			Amount:      *e.Amount,
			Category:    e.Category,
			Date:        e.Date,
		}
		if e.CreatedAt != nil {
			rec.CreatedAt = *e.CreatedAt
		}
		if e.UpdatedAt != nil {
			rec.UpdatedAt = *e.UpdatedAt
		}
		records = append(records, rec)
	}

	if probe.Settings != nil {
		s := probe.Settings.withDefaults()
		if s.Validate() == nil {
			if err := r.UpdateSettings(s); err != nil {
				return 0, dropped, err
			}
		}
	}
	if err := r.ReplaceAll(records); err != nil {
		return len(records), dropped, err
	}
	return len(records), dropped, nil
}
