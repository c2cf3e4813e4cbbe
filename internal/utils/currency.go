package utils

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency is used whenever a request does not name one
const DefaultCurrency = "EUR"

var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency renders an amount in cents as a currency string,
// e.g. FormatCurrency(1999, "EUR") -> "EUR 19.99". Unknown currency codes
// fall back to "<code> <amount>" with two decimals.
func FormatCurrency(cents int64, code string) string {
	if code == "" {
		code = DefaultCurrency
	}
	amount := float64(cents) / 100

	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %.2f", code, amount)
	}
	return currencyPrinter.Sprint(currency.Symbol(unit.Amount(amount)))
}
