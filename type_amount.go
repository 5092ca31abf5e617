package spendtrack

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// amountPattern accepts a non-negative number with at most two fractional
// digits and no superfluous leading zero on the integer part.
var amountPattern = regexp.MustCompile(`^(0|[1-9]\d*)(\.\d{1,2})?$`)

// Amount is a monetary value with fixed two-decimal precision.
//
// User input is parsed by [ParseAmount] and is never negative; derived values
// (a budget remainder for instance) may be. An Amount is persisted as its
// two-decimal string form to avoid floating-point drift.
type Amount struct {
	value decimal.Decimal
}

// A builds an Amount from a float. Values are rounded to two decimals.
func A[T float32 | float64 | int | int32 | int64](value T) Amount {
	return Amount{value: decimal.NewFromFloat(float64(value)).Round(2)}
}

// ParseAmount parses a user-supplied amount string.
//
// The accepted shape is the one of the validation engine: an optional integer
// part with no leading zero (except "0" itself) and an optional fraction of
// one or two digits. "12.5" parses to 12.50.
func ParseAmount(s string) (Amount, error) {
	if !amountPattern.MatchString(s) {
		return Amount{}, fmt.Errorf("invalid amount %q: want a non-negative number with up to 2 decimal places", s)
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{value: v.Round(2)}, nil
}

// MustParseAmount is like [ParseAmount] but panics on invalid input. Use only
// on strings that already passed validation.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the canonical two-decimal form, e.g. "12.50".
func (a Amount) String() string { return a.value.StringFixed(2) }

func (a Amount) IsZero() bool     { return a.value.IsZero() }
func (a Amount) IsNegative() bool { return a.value.IsNegative() }

func (a Amount) Equal(b Amount) bool       { return a.value.Equal(b.value) }
func (a Amount) LessThan(b Amount) bool    { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool { return a.value.GreaterThan(b.value) }

// Cmp compares two amounts numerically: -1, 0 or +1.
func (a Amount) Cmp(b Amount) int { return a.value.Cmp(b.value) }

// binary operators.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }

// SignedString returns the two-decimal form with an explicit sign, "-" for zero.
func (a Amount) SignedString() string {
	if a.value.IsZero() {
		return "-"
	}
	if a.value.IsPositive() {
		return "+" + a.String()
	}
	return a.String()
}

// Deprecated: AsFloat should not be used for computation, only for plotting.
func (a Amount) AsFloat() float64 { return a.value.InexactFloat64() }

// FormatIn renders the amount in the given ISO currency, using the currency's
// own display conventions ("$12.50", "12,50 €", ...). Unknown codes fall back
// to the plain two-decimal form.
func (a Amount) FormatIn(currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return a.String()
	}
	shifted := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(shifted.IntPart())
}

// MarshalJSON persists the amount as its fixed two-decimal string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts both the canonical string form and a bare JSON
// number. Older documents persisted amounts as numbers; they are rounded to
// two decimals on read.
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", string(b), err)
	}
	a.value = v.Round(2)
	return nil
}

var _ json.Marshaler = (*Amount)(nil)
var _ json.Unmarshaler = (*Amount)(nil)
