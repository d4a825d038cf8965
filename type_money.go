package stockmon

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a single currency. The dashboard only
// displays values computed upstream, so Money is a formatting type: exact
// decimal storage, locale-style output through go-money.
type Money struct {
	value decimal.Decimal // major unit value
	cur   string
}

// M builds a Money from a float and an ISO currency code.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// MD builds a Money from an exact decimal value.
func MD(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the never-nil go-money currency.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the value with its currency symbol and grouping, e.g.
// "$1,234,567.89".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString formats like String but with an explicit sign; zero renders as
// "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string      { return m.cur }
func (m Money) IsZero() bool          { return m.value.IsZero() }
func (m Money) IsPositive() bool      { return m.value.IsPositive() }
func (m Money) IsNegative() bool      { return m.value.IsNegative() }
func (m Money) AsFloat() float64      { return m.value.InexactFloat64() }
func (m Money) Equal(n Money) bool    { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) Add(n Money) Money     { return Money{value: m.value.Add(n.value), cur: m.cur} }
func (m Money) Sub(n Money) Money     { return Money{value: m.value.Sub(n.value), cur: m.cur} }
