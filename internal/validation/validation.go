package validation

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Violations maps a form field to an error code; handlers translate the
// codes for the request's language at render time.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators

func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

// Quantity parses a strictly positive integer order quantity.
func Quantity(field, raw string, v Violations) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		v[field] = "invalid_quantity"
		return 0
	}
	return n
}

// Price parses a non-negative amount rounded to cents. A comma decimal
// separator is accepted, the forms are filled in French.
func Price(field, raw string, v Violations) decimal.Decimal {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if s == "" {
		v[field] = "required"
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		v[field] = "required"
		return decimal.Zero
	}
	return d.Round(2)
}
