package spendtrack

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/agnivade/levenshtein"
)

// Store keys. The whole tracker state (records and settings) lives under one
// blob; display preferences are a separate blob so wiping data keeps them.
const (
	documentKey    = "spendtrack"
	preferencesKey = "preferences"
)

// EventKind tags a repository change notification.
type EventKind int

const (
	EventAdded EventKind = iota
	EventUpdated
	EventDeleted
	EventReplaced
	EventSettings
)

// Event describes one repository mutation, delivered to subscribers after the
// in-memory state has changed. Record is set for single-record events only.
type Event struct {
	Kind   EventKind
	Record *Record
}

// Repository holds the record list and settings in memory and writes every
// mutation through to its Store. Methods are safe for concurrent use.
type Repository struct {
	mu       sync.Mutex
	store    Store
	records  []Record
	settings Settings
	prefs    Preferences
	subs     map[int]func(Event)
	nextSub  int

	// now is the clock, replaceable in tests.
	now func() time.Time
}

// Open loads the repository state from the store. A missing or unreadable
// document starts empty with default settings.
func Open(store Store) (*Repository, error) {
	r := &Repository{
		store:    store,
		settings: DefaultSettings(),
		prefs:    DefaultPreferences(),
		subs:     make(map[int]func(Event)),
		now:      time.Now,
	}
	if data, ok, err := store.Get(documentKey); err != nil {
		return nil, err
	} else if ok {
		doc, err := decodeDocument(data)
		if err != nil {
			return nil, err
		}
		r.records = doc.Transactions
		r.settings = doc.Settings
	}
	if data, ok, err := store.Get(preferencesKey); err != nil {
		return nil, err
	} else if ok {
		// A corrupt preferences blob is not worth failing startup over.
		prefs := DefaultPreferences()
		if json.Unmarshal(data, &prefs) == nil {
			r.prefs = prefs
		}
	}
	return r, nil
}

// Today returns the repository clock's current day, the reference day for
// date validation and the trend window.
func (r *Repository) Today() Date {
	t := r.now()
	return NewDate(t.Year(), t.Month(), t.Day())
}

// List returns a copy of the records, newest first.
func (r *Repository) List() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Get returns the record with the given id, or ErrNotFound.
func (r *Repository) Get(id string) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return Record{}, ErrNotFound
}

// Add validates the fields, creates a record and prepends it to the list so
// the newest entry comes first. A *ValidationError return means nothing was
// stored; a *PersistenceError means the record is in memory but the
// write-through failed.
func (r *Repository) Add(f Fields) (Record, error) {
	f, verr := ValidateRecord(f, r.Today())
	if verr != nil {
		return Record{}, verr
	}
	r.mu.Lock()
	now := r.now()
	rec := Record{
		ID:          newID(now),
		Description: f.Description,
		Amount:      MustParseAmount(f.Amount),
		Category:    f.Category,
		Date:        MustParseDate(f.Date),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.records = append([]Record{rec}, r.records...)
	err := r.persist()
	r.mu.Unlock()
	r.notify(Event{Kind: EventAdded, Record: &rec})
	return rec, err
}

// Update applies a patch to the record with the given id. Unset patch fields
// keep their current value; the merged result is validated as a whole, so a
// partial edit cannot leave an invalid record behind. UpdatedAt moves to now,
// CreatedAt and the record's position in the list do not change.
func (r *Repository) Update(id string, p Patch) (Record, error) {
	r.mu.Lock()
	i := r.index(id)
	if i < 0 {
		r.mu.Unlock()
		return Record{}, ErrNotFound
	}
	merged := p.apply(r.records[i].fields())
	r.mu.Unlock()

	merged, verr := ValidateRecord(merged, r.Today())
	if verr != nil {
		return Record{}, verr
	}

	r.mu.Lock()
	// Re-resolve: the record may have moved while validation ran unlocked.
	if i = r.index(id); i < 0 {
		r.mu.Unlock()
		return Record{}, ErrNotFound
	}
	rec := r.records[i]
	rec.Description = merged.Description
	rec.Amount = MustParseAmount(merged.Amount)
	rec.Category = merged.Category
	rec.Date = MustParseDate(merged.Date)
	rec.UpdatedAt = r.now()
	r.records[i] = rec
	err := r.persist()
	r.mu.Unlock()
	r.notify(Event{Kind: EventUpdated, Record: &rec})
	return rec, err
}

// Delete removes the record with the given id and reports whether one was
// removed. Deleting an unknown id is a no-op: no write, no event.
func (r *Repository) Delete(id string) (bool, error) {
	r.mu.Lock()
	i := r.index(id)
	if i < 0 {
		r.mu.Unlock()
		return false, nil
	}
	rec := r.records[i]
	r.records = append(r.records[:i], r.records[i+1:]...)
	err := r.persist()
	r.mu.Unlock()
	r.notify(Event{Kind: EventDeleted, Record: &rec})
	return true, err
}

// ReplaceAll swaps the whole record list, the import path. The records are
// stored as given, newest-first ordering is the caller's concern.
func (r *Repository) ReplaceAll(records []Record) error {
	r.mu.Lock()
	r.records = make([]Record, len(records))
	copy(r.records, records)
	err := r.persist()
	r.mu.Unlock()
	r.notify(Event{Kind: EventReplaced})
	return err
}

// Count returns the number of records.
func (r *Repository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Settings returns the current settings.
func (r *Repository) Settings() Settings {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.settings
}

// UpdateSettings validates and stores new settings.
func (r *Repository) UpdateSettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	r.settings = s.withDefaults()
	err := r.persist()
	r.mu.Unlock()
	r.notify(Event{Kind: EventSettings})
	return err
}

// Preferences returns the current display preferences.
func (r *Repository) Preferences() Preferences {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.prefs
}

// UpdatePreferences stores new display preferences under their own key.
func (r *Repository) UpdatePreferences(p Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prefs = p
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if err := r.store.Set(preferencesKey, append(data, '\n')); err != nil {
		return &PersistenceError{Op: "preferences", Err: err}
	}
	return nil
}

// Reset wipes all records and restores default settings. Preferences are kept.
func (r *Repository) Reset() error {
	r.mu.Lock()
	r.records = nil
	r.settings = DefaultSettings()
	err := r.persist()
	r.mu.Unlock()
	r.notify(Event{Kind: EventReplaced})
	return err
}

// Stats computes the dashboard aggregates for the current state.
func (r *Repository) Stats() Stats {
	r.mu.Lock()
	records, settings := r.records, r.settings
	r.mu.Unlock()
	return ComputeStats(records, settings, r.Today())
}

// FindSimilar returns stored records whose description is within maxDistance
// edits of the given one, closest first. It backs the "did you mean" hint when
// adding an entry that looks like a duplicate.
func (r *Repository) FindSimilar(description string, maxDistance int) []Record {
	needle := strings.ToLower(strings.TrimSpace(description))
	if needle == "" {
		return nil
	}
	type scored struct {
		rec  Record
		dist int
	}
	r.mu.Lock()
	var hits []scored
	for _, rec := range r.records {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(rec.Description))
		if d <= maxDistance {
			hits = append(hits, scored{rec, d})
		}
	}
	r.mu.Unlock()
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })
	out := make([]Record, len(hits))
	for i, h := range hits {
		out[i] = h.rec
	}
	return out
}

// Subscribe registers a callback invoked after every mutation and returns the
// function that cancels it. Callbacks run on the mutating goroutine and must
// not call back into the repository's mutating methods.
func (r *Repository) Subscribe(fn func(Event)) (cancel func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subs, id)
	}
}

func (r *Repository) notify(e Event) {
	r.mu.Lock()
	fns := make([]func(Event), 0, len(r.subs))
	for _, fn := range r.subs {
		fns = append(fns, fn)
	}
	r.mu.Unlock()
	for _, fn := range fns {
		fn(e)
	}
}

// index returns the position of id in the record list, or -1. Callers hold mu.
func (r *Repository) index(id string) int {
	for i, rec := range r.records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

// persist writes the document through to the store. Callers hold mu. A failed
// write is reported as a *PersistenceError but the in-memory state stands.
func (r *Repository) persist() error {
	data, err := encodeDocument(document{Transactions: r.records, Settings: r.settings})
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}
	if err := r.store.Set(documentKey, data); err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}
	return nil
}
