package output

import (
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats amount in the given ISO currency, e.g. "$1,234.57".
// Unknown or empty codes fall back to a plain two-decimal number with the code appended.
func FormatCurrency(amount decimal.Decimal, currency string) string {
	if currency == "" {
		currency = "USD"
	}
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.StringFixed(2) + " " + currency
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// FormatPercentage formats a percentage value with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

func intToString(i int) string { return strconv.Itoa(i) }
