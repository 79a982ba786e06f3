// Package models defines the tabular data structures shared by the reader,
// the normalization pipeline and the writers.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the type tag of a cell value.
type Kind int

const (
	// KindMissing marks an empty cell.
	KindMissing Kind = iota
	// KindString is a text cell.
	KindString
	// KindNumber is a numeric cell.
	KindNumber
	// KindDate is a calendar date or timestamp cell.
	KindDate
)

// DateLayout is the layout used when a date value is rendered as text.
const DateLayout = "2006-01-02"

// Value represents a single typed cell value.
type Value struct {
	// Kind tells which of the fields below is set.
	Kind Kind
	// Str is the text of a KindString value.
	Str string
	// Num is the number of a KindNumber value.
	Num decimal.Decimal
	// Time is the instant of a KindDate value.
	Time time.Time
}

// Missing returns an empty cell value.
func Missing() Value {
	return Value{}
}

// String returns a text cell value.
func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Number returns a numeric cell value.
func Number(d decimal.Decimal) Value {
	return Value{Kind: KindNumber, Num: d}
}

// Float returns a numeric cell value from a float64.
func Float(f float64) Value {
	return Number(decimal.NewFromFloat(f))
}

// Date returns a date cell value.
func Date(t time.Time) Value {
	return Value{Kind: KindDate, Time: t}
}

// IsMissing reports whether the cell is empty.
func (v Value) IsMissing() bool {
	return v.Kind == KindMissing
}

// IsZero reports whether the cell holds the number zero.
// Text and dates are never zero.
func (v Value) IsZero() bool {
	return v.Kind == KindNumber && v.Num.IsZero()
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindString:
		return v.Str == o.Str
	case KindNumber:
		return v.Num.Equal(o.Num)
	case KindDate:
		return v.Time.Equal(o.Time)
	}
	return true
}

// Text renders the value the way it would appear in a plain-text cell.
func (v Value) Text() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num.String()
	case KindDate:
		if h, m, s := v.Time.Clock(); h == 0 && m == 0 && s == 0 {
			return v.Time.Format(DateLayout)
		}
		return v.Time.Format(time.RFC3339)
	}
	return ""
}

// Interface returns the value as a plain Go value suitable for spreadsheet
// writers: nil, string, float64 or time.Time.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num.InexactFloat64()
	case KindDate:
		return v.Time
	}
	return nil
}

// FromInterface converts a decoded configuration scalar (string, integer,
// float or time.Time) into a Value. Nil becomes Missing.
func FromInterface(x interface{}) (Value, bool) {
	switch t := x.(type) {
	case nil:
		return Missing(), true
	case Value:
		return t, true
	case string:
		return String(t), true
	case int:
		return Number(decimal.NewFromInt(int64(t))), true
	case int64:
		return Number(decimal.NewFromInt(t)), true
	case float64:
		return Number(decimal.NewFromFloat(t)), true
	case decimal.Decimal:
		return Number(t), true
	case time.Time:
		return Date(t), true
	}
	return Value{}, false
}
