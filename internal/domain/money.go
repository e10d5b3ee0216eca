package domain

import (
	"strings"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Money is a free-text monetary entry. Users type whatever they like
// ("18,000", "$500", "abc") and the value is only interpreted when the
// estimate runs; anything unparsable counts as zero.
type Money string

// Decimal returns the parsed value, or zero when the entry is empty or
// malformed.
func (m Money) Decimal() decimal.Decimal {
	return ParseAmount(string(m))
}

// Days interprets the entry as a whole-day count, truncating any
// fractional part. Used for the work-from-home field.
func (m Money) Days() int64 {
	return ParseAmount(string(m)).IntPart()
}

// IsZero reports whether the entry is blank. An explicit "0" is not
// blank; the distinction matters for the missing-credit rules, which
// fire on fields the user never filled in.
func (m Money) IsZero() bool {
	return strings.TrimSpace(string(m)) == ""
}

// UnmarshalJSON accepts both JSON strings and raw numbers so API
// callers can post either form.
func (m *Money) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = Money(s)
		return nil
	}
	if string(data) == "null" {
		*m = ""
		return nil
	}
	*m = Money(data)
	return nil
}

// ParseAmount coerces a user-entered amount to a decimal. Currency
// symbols, thousands separators and surrounding whitespace are
// tolerated; anything else yields zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
