package spendtrack

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/Rhymond/go-money"
)

// Settings is the user configuration persisted alongside the records.
// A zero BudgetCap means no cap is set.
type Settings struct {
	BudgetCap  Amount   `json:"budgetCap"`
	Currency   string   `json:"currency"`
	Categories []string `json:"categories"`
}

// DefaultSettings returns the settings of a fresh document.
func DefaultSettings() Settings {
	return Settings{
		Currency:   "USD",
		Categories: []string{"Food", "Books", "Transport", "Entertainment", "Fees", "Other"},
	}
}

// Validate checks the settings for consistency: a known ISO currency code and
// a non-negative budget cap.
func (s Settings) Validate() error {
	if s.BudgetCap.IsNegative() {
		return fmt.Errorf("budget cap cannot be negative: %s", s.BudgetCap)
	}
	if s.Currency != "" && money.GetCurrency(s.Currency) == nil {
		return fmt.Errorf("unknown currency code %q", s.Currency)
	}
	return nil
}

// withDefaults fills the zero members from the default settings.
func (s Settings) withDefaults() Settings {
	def := DefaultSettings()
	if s.Currency == "" {
		s.Currency = def.Currency
	}
	if len(s.Categories) == 0 {
		s.Categories = slices.Clone(def.Categories)
	}
	return s
}

// UnmarshalJSON reads the canonical keys and the legacy spellings found in
// older documents (spendingLimit for budgetCap, mainCurrency/baseCurrency for
// currency). Canonical keys win when both are present.
func (s *Settings) UnmarshalJSON(b []byte) error {
	var raw struct {
		BudgetCap     *Amount  `json:"budgetCap"`
		SpendingLimit *Amount  `json:"spendingLimit"`
		Currency      string   `json:"currency"`
		MainCurrency  string   `json:"mainCurrency"`
		BaseCurrency  string   `json:"baseCurrency"`
		Categories    []string `json:"categories"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch {
	case raw.BudgetCap != nil:
		s.BudgetCap = *raw.BudgetCap
	case raw.SpendingLimit != nil:
		s.BudgetCap = *raw.SpendingLimit
	}
	switch {
	case raw.Currency != "":
		s.Currency = raw.Currency
	case raw.MainCurrency != "":
		s.Currency = raw.MainCurrency
	case raw.BaseCurrency != "":
		s.Currency = raw.BaseCurrency
	}
	s.Categories = raw.Categories
	return nil
}

// Preferences hold presentation choices. They never influence the record
// pipeline and are persisted under their own key.
type Preferences struct {
	Theme         string `json:"theme"`
	TextSize      string `json:"textSize"`
	DateStyle     string `json:"dateStyle"`
	MoneyStyle    string `json:"moneyStyle"`
	AutoSave      bool   `json:"autoSave"`
	ShowGraphs    bool   `json:"showGraphs"`
	ConfirmDelete bool   `json:"confirmDelete"`
}

// DefaultPreferences returns the presentation defaults of a fresh install.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:         "default",
		TextSize:      "medium",
		DateStyle:     "yyyy-mm-dd",
		MoneyStyle:    "symbol",
		AutoSave:      true,
		ShowGraphs:    true,
		ConfirmDelete: true,
	}
}
