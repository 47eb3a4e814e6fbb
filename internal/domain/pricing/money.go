package pricing

import (
	"fmt"
	"strings"
)

const DefaultCurrency = "aud"

// Money is an amount in integer minor units (cents) with a lower-case ISO currency code.
type Money struct {
	amountMinor int64
	currency    string
}

func NewMoney(amountMinor int64, currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{amountMinor: amountMinor, currency: strings.ToLower(currency)}
}

func (m Money) AmountMinor() int64 {
	return m.amountMinor
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) String() string {
	return FormatMinor(m.amountMinor) + " " + strings.ToUpper(m.currency)
}

// FormatMinor renders minor units as a dollar string, e.g. 12345 -> "$123.45".
func FormatMinor(amountMinor int64) string {
	sign := ""
	if amountMinor < 0 {
		sign = "-"
		amountMinor = -amountMinor
	}
	return fmt.Sprintf("%s$%d.%02d", sign, amountMinor/100, amountMinor%100)
}
