package spendtrack

import (
	"encoding/json"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		err      bool
	}{
		{"0", "0.00", false},
		{"12", "12.00", false},
		{"12.5", "12.50", false},
		{"12.50", "12.50", false},
		{"0.99", "0.99", false},
		{"12.555", "", true}, // too many decimals
		{"012", "", true},    // leading zero
		{"-5", "", true},     // negative
		{".5", "", true},
		{"12.", "", true},
		{"abc", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseAmount(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got.String() != tt.expected {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAmountArithmetic(t *testing.T) {
	a := MustParseAmount("10.00")
	b := MustParseAmount("15.50")
	if got := a.Add(b).String(); got != "25.50" {
		t.Errorf("Add = %s, want 25.50", got)
	}
	if got := a.Sub(b).String(); got != "-5.50" {
		t.Errorf("Sub = %s, want -5.50", got)
	}
	if !a.LessThan(b) || b.LessThan(a) {
		t.Error("LessThan is inconsistent")
	}
	if a.Cmp(b) != -1 || b.Cmp(a) != 1 || a.Cmp(a) != 0 {
		t.Error("Cmp is inconsistent")
	}
}

func TestAmountSignedString(t *testing.T) {
	tests := []struct {
		amount   Amount
		expected string
	}{
		{A(12.5), "+12.50"},
		{A(0), "-"},
		{A(10.0).Sub(A(15.5)), "-5.50"},
	}
	for _, tt := range tests {
		if got := tt.amount.SignedString(); got != tt.expected {
			t.Errorf("SignedString() = %s, want %s", got, tt.expected)
		}
	}
}

func TestAmountJSON(t *testing.T) {
	data, err := json.Marshal(A(12.5))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"12.50"` {
		t.Errorf("Marshal() = %s, want %q", data, `"12.50"`)
	}

	// Older documents stored amounts as bare numbers.
	var legacy Amount
	if err := json.Unmarshal([]byte(`3.456`), &legacy); err != nil {
		t.Fatalf("Unmarshal(3.456) error = %v", err)
	}
	if legacy.String() != "3.46" {
		t.Errorf("Unmarshal(3.456) = %s, want 3.46", legacy)
	}

	var back Amount
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !back.Equal(A(12.5)) {
		t.Errorf("round trip = %s, want 12.50", back)
	}
}

func TestAmountFormatIn(t *testing.T) {
	a := MustParseAmount("1234.50")
	if got := a.FormatIn("USD"); got != "$1,234.50" {
		t.Errorf("FormatIn(USD) = %s, want $1,234.50", got)
	}
	if got := a.FormatIn("NOPE"); got != "1234.50" {
		t.Errorf("FormatIn(NOPE) = %s, want plain 1234.50", got)
	}
}
