package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/es_ES"
)

// InvalidDate is what FormatDate renders for input that is not a date.
const InvalidDate = "Invalid Date"

// Largest distance from the epoch a browser Date accepts, in milliseconds.
const maxDateMillis = 8.64e15

var dateTranslator locales.Translator = es_ES.New()

// Layouts carrying their own offset.
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.UnixDate,
	time.RubyDate,
}

// Layouts read in UTC, as ISO-8601 date-only forms are.
var utcLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
}

// Layouts read in the formatter's location.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	time.ANSIC,
}

// DateFormatter renders dates in the Spanish long form, e.g. "05 de marzo de 2024".
type DateFormatter struct {
	// Location is the zone dates are rendered in and zone-less inputs are
	// read in. Nil means UTC.
	Location *time.Location
}

var defaultDateFormatter = DateFormatter{}

// NewDateFormatter returns a formatter rendering in loc.
func NewDateFormatter(loc *time.Location) *DateFormatter {
	return &DateFormatter{Location: loc}
}

func (f DateFormatter) location() *time.Location {
	if f.Location == nil {
		return time.UTC
	}
	return f.Location
}

// Format renders v, or InvalidDate when v is not a date.
func (f DateFormatter) Format(v any) string {
	t, ok := f.Parse(v)
	if !ok {
		return InvalidDate
	}
	t = t.In(f.location())
	return fmt.Sprintf("%02d de %s de %d", t.Day(), dateTranslator.MonthWide(t.Month()), t.Year())
}

// Parse converts v to a time. Numbers are milliseconds since the Unix epoch
// and booleans count as 0 or 1 ms; nil is the epoch itself. A zero time.Time is treated as unset.
func (f DateFormatter) Parse(v any) (time.Time, bool) {
	switch x := v.(type) {
	case nil:
		return time.UnixMilli(0), true
	case time.Time:
		return x, !x.IsZero()
	case *time.Time:
		if x == nil {
			return time.UnixMilli(0), true
		}
		return *x, !x.IsZero()
	case json.Number:
		return f.parseString(string(x))
	case string:
		return f.parseString(x)
	case []byte:
		return f.parseString(string(x))
	case bool:
		if x {
			return time.UnixMilli(1).UTC(), true
		}
		return time.UnixMilli(0).UTC(), true
	case float64:
		return fromMillisFloat(x)
	case float32:
		return fromMillisFloat(float64(x))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromMillisFloat(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromMillisFloat(float64(rv.Uint()))
	case reflect.Pointer:
		if rv.IsNil() {
			return time.UnixMilli(0), true
		}
		return f.Parse(rv.Elem().Interface())
	}
	return time.Time{}, false
}

func (f DateFormatter) parseString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if len(s) != 4 && isMillis(s) {
		ms, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return time.Time{}, false
		}
		return fromMillisFloat(ms)
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range utcLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, f.location()); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func isMillis(s string) bool {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func fromMillisFloat(ms float64) (time.Time, bool) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxDateMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)).UTC(), true
}

// FormatDate renders v in UTC as e.g. "05 de marzo de 2024", or InvalidDate
// when v cannot be read as a date.
func FormatDate(v any) string {
	return defaultDateFormatter.Format(v)
}

// ParseDate converts v to a time the same way FormatDate does.
func ParseDate(v any) (time.Time, bool) {
	return defaultDateFormatter.Parse(v)
}
