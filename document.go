package spendtrack

import (
	"encoding/json"
	"fmt"
)

// document is the persisted shape of the whole tracker state, the single blob
// written to the key-value store and produced by export.
type document struct {
	Transactions []Record `json:"transactions"`
	Settings     Settings `json:"settings"`
}

// encodeDocument renders the document as indented JSON, the same form for the
// store blob and for export so the two stay trivially diffable.
func encodeDocument(doc document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("could not encode document: %w", err)
	}
	return append(data, '\n'), nil
}

// decodeDocument parses a persisted document and fills defaulted settings.
// Records that fail to decode are dropped one by one rather than failing the
// whole document; a blob that is not a JSON object at all is an error.
func decodeDocument(data []byte) (document, error) {
	var raw struct {
		Transactions []json.RawMessage `json:"transactions"`
		Settings     Settings          `json:"settings"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return document{}, fmt.Errorf("could not decode document: %w", err)
	}
	doc := document{Settings: raw.Settings.withDefaults()}
	for _, line := range raw.Transactions {
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		doc.Transactions = append(doc.Transactions, rec)
	}
	return doc, nil
}
