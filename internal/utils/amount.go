package utils

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// number is the result of coercing an arbitrary value the way a browser's Number() does.
type number struct {
	value   decimal.Decimal
	inf     int // +1 or -1 for infinities
	nan     bool
	negZero bool
}

var notANumber = number{nan: true}

var decimalLiteral = regexp.MustCompile(`^([+-]?)(\d*)(?:\.(\d*))?(?:[eE]([+-]?\d+))?$`)

// ParseAmount coerces v to a decimal. The boolean is false when v is not a
// finite number.
func ParseAmount(v any) (decimal.Decimal, bool) {
	n := coerceNumber(v)
	if n.nan || n.inf != 0 {
		return decimal.Zero, false
	}
	return n.value, true
}

func coerceNumber(v any) number {
	switch x := v.(type) {
	case nil:
		return number{value: decimal.Zero}
	case decimal.Decimal:
		return number{value: x}
	case *decimal.Decimal:
		if x == nil {
			return number{value: decimal.Zero}
		}
		return number{value: *x}
	case float64:
		return fromFloat(x)
	case float32:
		return fromFloat(float64(x))
	case json.Number:
		return parseNumberString(string(x))
	case string:
		return parseNumberString(x)
	case []byte:
		return parseNumberString(string(x))
	case bool:
		if x {
			return number{value: decimal.NewFromInt(1)}
		}
		return number{value: decimal.Zero}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{value: decimal.NewFromInt(rv.Int())}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{value: fromUint64(rv.Uint())}
	case reflect.Pointer:
		if rv.IsNil() {
			return number{value: decimal.Zero}
		}
		return coerceNumber(rv.Elem().Interface())
	}
	return notANumber
}

func fromFloat(f float64) number {
	switch {
	case math.IsNaN(f):
		return notANumber
	case math.IsInf(f, 1):
		return number{inf: 1}
	case math.IsInf(f, -1):
		return number{inf: -1}
	case f == 0:
		return number{value: decimal.Zero, negZero: math.Signbit(f)}
	}
	return number{value: decimal.NewFromFloat(f)}
}

func fromUint64(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}

func parseNumberString(s string) number {
	s = strings.TrimSpace(s)
	if s == "" {
		return number{value: decimal.Zero}
	}

	switch s {
	case "Infinity", "+Infinity":
		return number{inf: 1}
	case "-Infinity":
		return number{inf: -1}
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			u, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return notANumber
			}
			return number{value: fromUint64(u)}
		}
	}

	m := decimalLiteral.FindStringSubmatch(s)
	if m == nil || (m[2] == "" && m[3] == "") {
		return notANumber
	}
	sign, whole, frac, exp := m[1], m[2], m[3], m[4]
	if whole == "" {
		whole = "0"
	}
	if frac == "" {
		frac = "0"
	}
	literal := whole + "." + frac
	if sign == "-" {
		literal = "-" + literal
	}
	if exp != "" {
		literal += "e" + strings.TrimPrefix(exp, "+")
	}

	// Going through float64 bounds the exponent: overflow becomes an infinity
	// and underflow a (signed) zero, as Number() does.
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return notANumber
	}
	return fromFloat(f)
}
