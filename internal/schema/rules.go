package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var validate = validator.New()

// stripAccents removes combining marks so Brazilian-locale input like
// "Amárelo" still matches the canonical enum member.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// String trims the value and enforces length bounds in runes.
func String(min, max int) Check {
	return func(v any, _ time.Time) (any, string) {
		s, ok := v.(string)
		if !ok {
			return v, "must be text"
		}
		s = strings.TrimSpace(s)
		n := len([]rune(s))
		if n < min {
			return v, fmt.Sprintf("must have at least %d character(s)", min)
		}
		if n > max {
			return v, fmt.Sprintf("must have at most %d characters", max)
		}
		return s, ""
	}
}

// StringLen trims the value and enforces an exact rune length.
func StringLen(length int) Check {
	return func(v any, _ time.Time) (any, string) {
		s, ok := v.(string)
		if !ok {
			return v, "must be text"
		}
		s = strings.TrimSpace(s)
		if len([]rune(s)) != length {
			return v, fmt.Sprintf("must have exactly %d characters", length)
		}
		return s, ""
	}
}

// Contains requires substr somewhere in the (already trimmed) value.
func Contains(substr, message string) Check {
	return func(v any, _ time.Time) (any, string) {
		s, ok := v.(string)
		if !ok {
			return v, "must be text"
		}
		if !strings.Contains(s, substr) {
			return v, message
		}
		return s, ""
	}
}

// Enum upper-cases the value, strips diacritics and tests membership
// in the allowed set. The normalized value is the canonical member.
func Enum(values ...string) Check {
	allowed := make(map[string]struct{}, len(values))
	for _, val := range values {
		allowed[val] = struct{}{}
	}
	list := strings.Join(values, ", ")
	return func(v any, _ time.Time) (any, string) {
		s, ok := v.(string)
		if !ok {
			return v, "must be text"
		}
		folded, _, err := transform.String(stripAccents, strings.ToUpper(strings.TrimSpace(s)))
		if err != nil {
			return v, "must be one of: " + list
		}
		if _, ok := allowed[folded]; !ok {
			return v, "must be one of: " + list
		}
		return folded, ""
	}
}

// Number coerces a numeric value or numeric-looking text to float64.
func Number() Check {
	return func(v any, _ time.Time) (any, string) {
		switch n := v.(type) {
		case float64:
			return n, ""
		case float32:
			return float64(n), ""
		case int:
			return float64(n), ""
		case int64:
			return float64(n), ""
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
			if err != nil {
				return v, "must be a number"
			}
			return f, ""
		default:
			return v, "must be a number"
		}
	}
}

// Integer requires a whole number, normalizing to int. Must run after
// Number. Re-validating an already-normalized int succeeds.
func Integer() Check {
	return func(v any, _ time.Time) (any, string) {
		switch n := v.(type) {
		case int:
			return n, ""
		case float64:
			if n != math.Trunc(n) {
				return v, "must be an integer"
			}
			return int(n), ""
		default:
			return v, "must be an integer"
		}
	}
}

// MinInt rejects integers below min.
func MinInt(min int) Check {
	return func(v any, _ time.Time) (any, string) {
		n, ok := v.(int)
		if !ok {
			return v, "must be an integer"
		}
		if n < min {
			return v, fmt.Sprintf("must be at least %d", min)
		}
		return n, ""
	}
}

// MaxIntFn rejects integers above a bound computed from now, e.g. the
// current calendar year.
func MaxIntFn(maxFn func(time.Time) int) Check {
	return func(v any, now time.Time) (any, string) {
		n, ok := v.(int)
		if !ok {
			return v, "must be an integer"
		}
		if max := maxFn(now); n > max {
			return v, fmt.Sprintf("must be at most %d", max)
		}
		return n, ""
	}
}

// MinNumber rejects numbers below min.
func MinNumber(min float64) Check {
	return func(v any, _ time.Time) (any, string) {
		n, ok := v.(float64)
		if !ok {
			return v, "must be a number"
		}
		if n < min {
			return v, fmt.Sprintf("must be at least %s", strconv.FormatFloat(min, 'f', -1, 64))
		}
		return n, ""
	}
}

// MaxNumber rejects numbers above max.
func MaxNumber(max float64) Check {
	return func(v any, _ time.Time) (any, string) {
		n, ok := v.(float64)
		if !ok {
			return v, "must be a number"
		}
		if n > max {
			return v, fmt.Sprintf("must be at most %s", strconv.FormatFloat(max, 'f', -1, 64))
		}
		return n, ""
	}
}

// Bool requires a native boolean.
func Bool() Check {
	return func(v any, _ time.Time) (any, string) {
		b, ok := v.(bool)
		if !ok {
			return v, "must be true or false"
		}
		return b, ""
	}
}

const dateOnly = "2006-01-02"

// Date coerces RFC3339 or date-only text, or a native time.Time, to a
// UTC time value. Coercion failure is a type error, distinct from the
// window errors produced by DateBetween.
func Date() Check {
	return func(v any, _ time.Time) (any, string) {
		switch d := v.(type) {
		case time.Time:
			return d.UTC(), ""
		case string:
			s := strings.TrimSpace(d)
			if t, err := time.Parse(time.RFC3339, s); err == nil {
				return t.UTC(), ""
			}
			if t, err := time.Parse(dateOnly, s); err == nil {
				return t.UTC(), ""
			}
			return v, "must be a valid date"
		default:
			return v, "must be a valid date"
		}
	}
}

// DateBetween enforces an inclusive window whose bounds are computed
// from now, so fixed constants and age-style windows share one rule.
func DateBetween(minFn, maxFn func(time.Time) time.Time, minMsg, maxMsg string) Check {
	return func(v any, now time.Time) (any, string) {
		d, ok := v.(time.Time)
		if !ok {
			return v, "must be a valid date"
		}
		if d.Before(minFn(now)) {
			return v, minMsg
		}
		if d.After(maxFn(now)) {
			return v, maxMsg
		}
		return d, ""
	}
}

// Masked canonicalizes input produced by a masked form widget: every
// occurrence of the placeholder is stripped, then the result must have
// the exact masked length. A partially filled mask therefore comes out
// short and fails the length check rather than slipping through.
func Masked(placeholder string, length int) Check {
	return func(v any, _ time.Time) (any, string) {
		s, ok := v.(string)
		if !ok {
			return v, "must be text"
		}
		s = strings.ReplaceAll(strings.TrimSpace(s), placeholder, "")
		if len([]rune(s)) != length {
			return v, fmt.Sprintf("must have exactly %d characters", length)
		}
		return s, ""
	}
}

// CPF runs the modulus-11 check-digit validation over a formatted
// Brazilian CPF ("000.000.000-00"). Length is checked by the Masked
// rule before this one; the message here is the checksum failure.
func CPF() Check {
	return func(v any, _ time.Time) (any, string) {
		s, ok := v.(string)
		if !ok {
			return v, "must be text"
		}
		if !cpfValid(s) {
			return v, "is not a valid CPF"
		}
		return s, ""
	}
}

// Email validates the address format.
func Email() Check {
	return func(v any, _ time.Time) (any, string) {
		s, ok := v.(string)
		if !ok {
			return v, "must be text"
		}
		s = strings.TrimSpace(s)
		if err := validate.Var(s, "required,email"); err != nil {
			return v, "must be a valid email address"
		}
		return s, ""
	}
}
