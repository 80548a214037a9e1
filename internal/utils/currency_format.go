package utils

import (
	"math"

	"github.com/SscSPs/display_helpers/internal/core/domain"
	"github.com/go-playground/locales"
	"github.com/go-playground/locales/currency"
	"github.com/go-playground/locales/en"
	"github.com/shopspring/decimal"
)

// CurrencyNaN is what FormatCurrency renders for input that cannot be coerced to a number.
const CurrencyNaN = "$NaN"

const (
	currencyInfinity         = "$∞"
	currencyNegativeInfinity = "-$∞"
)

// es-US and en-US share the USD convention ("$", "," grouping, "." decimal).
// The base en data maps USD to "$"; en_US and es_US do not.
var currencyTranslator locales.Translator = en.New()

// Decimal magnitudes past which an amount overflows a float64 or rounds to zero cents.
const (
	maxAmountMagnitude = 309
	minAmountMagnitude = -3
)

// FormatWithCurrencyPrecision formats an amount with the correct precision for a given currency
// Example: amount 12.3456 with USD (precision 2) returns "12.35"
// Example: amount 12.3456 with JPY (precision 0) returns "12"
func FormatWithCurrencyPrecision(amount decimal.Decimal, cur domain.Currency) string {
	return amount.Round(int32(cur.Precision)).String()
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}

// FormatDecimalCurrency renders a decimal amount as US dollars, e.g. "$1,234.50".
// Negative amounts that round to zero keep their sign ("-$0.00").
func FormatDecimalCurrency(amount decimal.Decimal) string {
	negative := amount.Sign() < 0
	rounded := decimal.Zero
	if !amount.IsZero() {
		mag := magnitude(amount)
		if mag > maxAmountMagnitude {
			if negative {
				return currencyNegativeInfinity
			}
			return currencyInfinity
		}
		if mag > minAmountMagnitude {
			rounded = amount.Round(int32(domain.USD.Precision))
		}
	}

	f, _ := rounded.Float64()
	switch {
	case math.IsInf(f, 1):
		return currencyInfinity
	case math.IsInf(f, -1):
		return currencyNegativeInfinity
	}
	formatted := currencyTranslator.FmtCurrency(f, uint64(domain.USD.Precision), currency.USD)
	if negative && rounded.IsZero() {
		return "-" + formatted
	}
	return formatted
}

// magnitude returns m such that 10^(m-1) <= |d| < 10^m for a non-zero d.
func magnitude(d decimal.Decimal) int64 {
	return int64(d.Exponent()) + int64(len(d.Abs().Coefficient().String()))
}

// FormatCurrency coerces amount to a number and renders it as US dollars with
// grouping and exactly two fraction digits. Input that is not a number yields
// CurrencyNaN instead of an error.
func FormatCurrency(amount any) string {
	n := coerceNumber(amount)
	switch {
	case n.nan:
		return CurrencyNaN
	case n.inf > 0:
		return currencyInfinity
	case n.inf < 0:
		return currencyNegativeInfinity
	case n.negZero:
		return "-" + FormatDecimalCurrency(decimal.Zero)
	}
	return FormatDecimalCurrency(n.value)
}
