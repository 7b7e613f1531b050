// Package price holds the arithmetic of the bulk price change tool.
package price

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type ChangeType string

const (
	Increase ChangeType = "increase"
	Decrease ChangeType = "decrease"
	Exact    ChangeType = "exact"
)

// ParseChangeType accepts the values posted by the bulk change form.
func ParseChangeType(s string) (ChangeType, bool) {
	switch ChangeType(strings.ToLower(strings.TrimSpace(s))) {
	case Increase:
		return Increase, true
	case Decrease:
		return Decrease, true
	case Exact:
		return Exact, true
	default:
		return "", false
	}
}

type Field string

const (
	Regular Field = "regular"
	Sale    Field = "sale"
)

// Fields is the order in which fields are always updated.
var Fields = []Field{Regular, Sale}

func ParseField(s string) (Field, bool) {
	switch Field(strings.ToLower(strings.TrimSpace(s))) {
	case Regular:
		return Regular, true
	case Sale:
		return Sale, true
	default:
		return "", false
	}
}

func (f Field) Label() string {
	switch f {
	case Regular:
		return "Regular price"
	case Sale:
		return "Sale price"
	default:
		return string(f)
	}
}

// Calculate returns the new price. Decrease never goes below zero, Exact
// ignores current, round is applied to the result of the operation.
func Calculate(current decimal.Decimal, t ChangeType, amount decimal.Decimal, round bool) decimal.Decimal {
	var result decimal.Decimal

	switch t {
	case Increase:
		result = current.Add(amount)
	case Decrease:
		result = current.Sub(amount)
		if result.IsNegative() {
			result = decimal.Zero
		}
	case Exact:
		result = amount
	default:
		panic(fmt.Sprintf("price: unknown change type %q", string(t)))
	}

	if round {
		result = result.Round(0)
	}
	return result
}

// Parse coerces a price stored by the platform. Empty and malformed values
// read as zero.
func Parse(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Format renders a price the way it is written back to the platform.
func Format(d decimal.Decimal) string {
	return d.String()
}

// Display renders a price for the change report.
func Display(currency string, d decimal.Decimal) string {
	return currency + d.StringFixed(2)
}
