package spendtrack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(ctx context.Context, client *http.Client, addr string, data interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return fmt.Errorf("cannot create http request %q: %w", addr, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

// seedEntry is one starter record as served by a seed endpoint. Seeds carry
// no ids or timestamps, those are assigned locally.
type seedEntry struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"`
}

// FetchSeed downloads starter records from a seed endpoint. The payload may
// be a bare JSON array of entries or an object wrapping the array under
// "transactions"; anything else is an error.
func FetchSeed(ctx context.Context, client *http.Client, addr string) ([]Fields, error) {
	var jobj any
	if err := jwget(ctx, client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error fetching seed %q: %w", addr, err)
	}

	list, ok := jobj.([]any)
	if !ok {
		jval, err := jsonpath.Get("$.transactions", jobj)
		if err != nil {
			return nil, fmt.Errorf("seed %q has no transactions list: %w", addr, err)
		}
		if list, ok = jval.([]any); !ok {
			return nil, fmt.Errorf("seed %q: transactions is not a list", addr)
		}
	}

	// Round-trip each entry through JSON so the tolerant per-field decoding
	// applies whatever shape the endpoint serves.
	fields := make([]Fields, 0, len(list))
	for _, item := range list {
		raw, err := json.Marshal(item)
		if err != nil {
			continue
		}
		var e seedEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			continue
		}
		fields = append(fields, Fields{
			Description: e.Description,
			Amount:      e.Amount,
			Category:    e.Category,
			Date:        e.Date,
		})
	}
	return fields, nil
}

// SeedIfEmpty fetches starter records and adds the valid ones, but only when
// the repository holds no records yet. It returns the number of records
// added. Entries that fail validation are skipped silently, a first run
// should never be blocked by a bad seed.
func (r *Repository) SeedIfEmpty(ctx context.Context, client *http.Client, addr string) (int, error) {
	if r.Count() > 0 {
		return 0, nil
	}
	fields, err := FetchSeed(ctx, client, addr)
	if err != nil {
		return 0, err
	}
	added := 0
	for _, f := range fields {
		if _, err := r.Add(f); err == nil {
			added++
		}
	}
	return added, nil
}

// SeedAsync runs SeedIfEmpty on its own goroutine with a deadline and swallows
// the outcome. Startup seeding is best effort: an unreachable endpoint must
// not delay or fail anything.
func (r *Repository) SeedAsync(addr string, timeout time.Duration) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		_, _ = r.SeedIfEmpty(ctx, http.DefaultClient, addr)
	}()
}
