package spendtrack

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestRepository(t *testing.T) (*Repository, *MemStore) {
	t.Helper()
	store := NewMemStore()
	repo, err := Open(store)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	repo.now = fixedClock(NewDate(2026, time.August, 27))
	return repo, store
}

func TestRepositoryAdd(t *testing.T) {
	repo, store := newTestRepository(t)

	first, err := repo.Add(Fields{Description: "Morning coffee", Amount: "3.5", Category: "Food", Date: "2026-08-27"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !strings.HasPrefix(first.ID, "rec_") {
		t.Errorf("ID = %q, want a rec_ prefix", first.ID)
	}
	if first.Amount.String() != "3.50" {
		t.Errorf("Amount = %s, want the normalized 3.50", first.Amount)
	}
	if first.CreatedAt.IsZero() || first.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}

	second, err := repo.Add(Fields{Description: "Train", Amount: "12", Category: "Transport", Date: "2026-08-27"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	// Newest first.
	records := repo.List()
	if len(records) != 2 || records[0].ID != second.ID || records[1].ID != first.ID {
		t.Errorf("List() order = %v, want newest first", ids(records))
	}

	// Write-through: a fresh repository over the same store sees both.
	reloaded, err := Open(store)
	if err != nil {
		t.Fatalf("Open() after add error = %v", err)
	}
	if reloaded.Count() != 2 {
		t.Errorf("reloaded Count() = %d, want 2", reloaded.Count())
	}
}

func TestRepositoryAddInvalid(t *testing.T) {
	repo, _ := newTestRepository(t)
	_, err := repo.Add(Fields{Description: " bad ", Amount: "x", Category: "Food", Date: "2026-08-27"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Add() error = %v, want a *ValidationError", err)
	}
	if repo.Count() != 0 {
		t.Error("an invalid record was stored")
	}
}

func TestRepositoryUpdate(t *testing.T) {
	repo, _ := newTestRepository(t)
	created, err := repo.Add(Fields{Description: "Lunch", Amount: "10", Category: "Food", Date: "2026-08-26"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	repo.now = fixedClock(NewDate(2026, time.August, 28))

	amount := "12.5"
	updated, err := repo.Update(created.ID, Patch{Amount: &amount})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	// Only the patched field and UpdatedAt change.
	if updated.Amount.String() != "12.50" {
		t.Errorf("Amount = %s, want 12.50", updated.Amount)
	}
	if updated.Description != created.Description || updated.Category != created.Category || updated.Date != created.Date {
		t.Error("unpatched fields changed")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("CreatedAt changed on update")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("UpdatedAt did not move forward")
	}
}

func TestRepositoryUpdateInvalidLeavesRecord(t *testing.T) {
	repo, _ := newTestRepository(t)
	created, _ := repo.Add(Fields{Description: "Lunch", Amount: "10", Category: "Food", Date: "2026-08-26"})

	bad := "not-a-number"
	_, err := repo.Update(created.ID, Patch{Amount: &bad})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Update() error = %v, want a *ValidationError", err)
	}
	got, _ := repo.Get(created.ID)
	if got.Amount.String() != "10.00" {
		t.Errorf("record changed despite the failed update: %s", got.Amount)
	}
}

func TestRepositoryUpdateUnknown(t *testing.T) {
	repo, _ := newTestRepository(t)
	amount := "1"
	if _, err := repo.Update("nope", Patch{Amount: &amount}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestRepositoryDelete(t *testing.T) {
	repo, store := newTestRepository(t)
	created, _ := repo.Add(Fields{Description: "Lunch", Amount: "10", Category: "Food", Date: "2026-08-26"})

	removed, err := repo.Delete(created.ID)
	if err != nil || !removed {
		t.Fatalf("Delete() = (%v, %v), want (true, nil)", removed, err)
	}
	if repo.Count() != 0 {
		t.Error("record still present after delete")
	}

	// Unknown id: no error, no write.
	writes := len(store.m)
	removed, err = repo.Delete("nope")
	if err != nil || removed {
		t.Errorf("Delete(unknown) = (%v, %v), want (false, nil)", removed, err)
	}
	if len(store.m) != writes {
		t.Error("deleting an unknown id touched the store")
	}
}

// A failed write keeps the in-memory change and reports a *PersistenceError.
func TestRepositoryPersistenceFailure(t *testing.T) {
	repo, store := newTestRepository(t)
	store.FailWrites = true

	created, err := repo.Add(Fields{Description: "Lunch", Amount: "10", Category: "Food", Date: "2026-08-26"})
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("Add() error = %v, want a *PersistenceError", err)
	}
	if _, err := repo.Get(created.ID); err != nil {
		t.Error("record missing from memory after a failed write")
	}
}

func TestRepositoryGet(t *testing.T) {
	repo, _ := newTestRepository(t)
	created, _ := repo.Add(Fields{Description: "Lunch", Amount: "10", Category: "Food", Date: "2026-08-26"})

	got, err := repo.Get(created.ID)
	if err != nil || got.ID != created.ID {
		t.Errorf("Get() = (%v, %v), want the created record", got.ID, err)
	}
	if _, err := repo.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestRepositorySettings(t *testing.T) {
	repo, store := newTestRepository(t)

	if got := repo.Settings(); got.Currency != "USD" {
		t.Errorf("default Currency = %q, want USD", got.Currency)
	}

	settings := repo.Settings()
	settings.BudgetCap = MustParseAmount("500.00")
	settings.Currency = "EUR"
	if err := repo.UpdateSettings(settings); err != nil {
		t.Fatalf("UpdateSettings() error = %v", err)
	}

	reloaded, _ := Open(store)
	if got := reloaded.Settings(); got.Currency != "EUR" || got.BudgetCap.String() != "500.00" {
		t.Errorf("reloaded settings = %+v", got)
	}

	settings.Currency = "ZZZ"
	if err := repo.UpdateSettings(settings); err == nil {
		t.Error("UpdateSettings() accepted an unknown currency")
	}
}

func TestRepositoryPreferences(t *testing.T) {
	repo, store := newTestRepository(t)
	prefs := repo.Preferences()
	if !prefs.ConfirmDelete {
		t.Error("ConfirmDelete should default to true")
	}

	prefs.Theme = "dark"
	prefs.ConfirmDelete = false
	if err := repo.UpdatePreferences(prefs); err != nil {
		t.Fatalf("UpdatePreferences() error = %v", err)
	}

	reloaded, _ := Open(store)
	if got := reloaded.Preferences(); got.Theme != "dark" || got.ConfirmDelete {
		t.Errorf("reloaded preferences = %+v", got)
	}
}

func TestRepositoryReset(t *testing.T) {
	repo, _ := newTestRepository(t)
	repo.Add(Fields{Description: "Lunch", Amount: "10", Category: "Food", Date: "2026-08-26"})
	settings := repo.Settings()
	settings.Currency = "EUR"
	repo.UpdateSettings(settings)
	prefs := repo.Preferences()
	prefs.Theme = "dark"
	repo.UpdatePreferences(prefs)

	if err := repo.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if repo.Count() != 0 {
		t.Error("records survived the reset")
	}
	if repo.Settings().Currency != "USD" {
		t.Error("settings not restored to defaults")
	}
	if repo.Preferences().Theme != "dark" {
		t.Error("preferences should survive a reset")
	}
}

func TestRepositorySubscribe(t *testing.T) {
	repo, _ := newTestRepository(t)
	var events []EventKind
	cancel := repo.Subscribe(func(e Event) { events = append(events, e.Kind) })

	created, _ := repo.Add(Fields{Description: "Lunch", Amount: "10", Category: "Food", Date: "2026-08-26"})
	amount := "11"
	repo.Update(created.ID, Patch{Amount: &amount})
	repo.Delete(created.ID)

	want := []EventKind{EventAdded, EventUpdated, EventDeleted}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, kind := range want {
		if events[i] != kind {
			t.Errorf("events[%d] = %v, want %v", i, events[i], kind)
		}
	}

	cancel()
	repo.Add(Fields{Description: "More", Amount: "1", Category: "Food", Date: "2026-08-26"})
	if len(events) != len(want) {
		t.Error("events delivered after cancel")
	}
}

func TestRepositoryFindSimilar(t *testing.T) {
	repo, _ := newTestRepository(t)
	repo.Add(Fields{Description: "Morning coffee", Amount: "3.50", Category: "Food", Date: "2026-08-27"})
	repo.Add(Fields{Description: "Train ticket", Amount: "12.00", Category: "Transport", Date: "2026-08-27"})

	got := repo.FindSimilar("morning coffee", 3)
	if len(got) != 1 || got[0].Description != "Morning coffee" {
		t.Errorf("FindSimilar() = %v, want the coffee entry", got)
	}
	if got := repo.FindSimilar("mornin coffee", 3); len(got) != 1 {
		t.Errorf("FindSimilar with one edit = %d hits, want 1", len(got))
	}
	if got := repo.FindSimilar("something else entirely", 3); len(got) != 0 {
		t.Errorf("FindSimilar(unrelated) = %d hits, want 0", len(got))
	}
	if got := repo.FindSimilar("  ", 3); got != nil {
		t.Error("FindSimilar(blank) should be nil")
	}
}
